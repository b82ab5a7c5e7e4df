package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/metagen/internal/config"
	"github.com/JonMunkholm/metagen/internal/core"
	"github.com/JonMunkholm/metagen/internal/logging"
	"github.com/spf13/cobra"
)

// reportError logs err and prints a one-line summary to w. Errors without a
// known code keep their own text, since the generic message says nothing.
func reportError(w io.Writer, err error) {
	ue := core.NewUserError(err)
	slog.Error("run failed", "error", ue.Technical, "code", ue.User.Code)

	if core.IsUserFacing(err) {
		fmt.Fprintln(w, core.FormatUserError(err))
		return
	}
	fmt.Fprintf(w, "%v (Code: %s). %s\n", err, ue.User.Code, ue.User.Action)
}

// flags holds command-line overrides for config values.
type flags struct {
	input     string
	schema    string
	delimiter string
	sheet     string
	outputDir string
	fileMode  string
	logLevel  string
	logFormat string
	limit     int
}

// app is the resolved state shared by every subcommand.
type app struct {
	cfg    *config.Config
	schema core.Schema
	input  string
	opts   core.ReaderOptions
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	a := &app{}

	root := &cobra.Command{
		Use:   "metagen [input]",
		Short: "Generate token metadata files from a CSV or XLSX table",
		Long: `metagen reads a table of collectible items and writes one JSON
metadata document per row, named 1, 2, 3, ... in row order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, f, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.input, "input", "i", "", "Input table (default: the schema's default file)")
	pf.StringVarP(&f.schema, "schema", "s", "", "Input schema: final or product (default: final)")
	pf.StringVarP(&f.delimiter, "delimiter", "d", "", "CSV field separator (default: ,)")
	pf.StringVar(&f.sheet, "sheet", "", "Worksheet to read from .xlsx inputs (default: active sheet)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", "", "Log format: text or json")

	generate := &cobra.Command{
		Use:   "generate [input]",
		Short: "Write one metadata file per row (default command)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd)
		},
	}
	for _, c := range []*cobra.Command{root, generate} {
		c.Flags().StringVarP(&f.outputDir, "output", "o", "", "Directory for generated files (default: .)")
		c.Flags().StringVar(&f.fileMode, "file-mode", "", "Octal permission of generated files (default: 0644)")
	}

	preview := &cobra.Command{
		Use:   "preview [input]",
		Short: "Print the documents for the first rows without writing files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.preview(cmd)
		},
	}
	preview.Flags().IntVarP(&f.limit, "limit", "n", core.DefaultPreviewLimit, "Number of rows to preview (default: METAGEN_PREVIEW_LIMIT or 3)")

	count := &cobra.Command{
		Use:   "count [input]",
		Short: "Print the number of data rows in the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := core.CountRows(a.input, a.schema, a.opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	schemasCmd := &cobra.Command{
		Use:   "schemas",
		Short: "Print the built-in input schemas as YAML",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := core.MarshalSchemasYAML(core.All())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	root.AddCommand(generate, preview, count, schemasCmd)
	return root
}

// setup loads configuration, applies flag overrides and resolves the
// schema and input path.
func (a *app) setup(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	override := func(name string, dst *string, val string) {
		if cmd.Flags().Changed(name) {
			*dst = val
		}
	}
	override("input", &cfg.Input.Path, f.input)
	override("schema", &cfg.Input.Schema, f.schema)
	override("delimiter", &cfg.Input.Delimiter, f.delimiter)
	override("sheet", &cfg.Input.Sheet, f.sheet)
	override("output", &cfg.Output.Dir, f.outputDir)
	override("file-mode", &cfg.Output.FileMode, f.fileMode)
	override("log-level", &cfg.Logging.Level, f.logLevel)
	override("log-format", &cfg.Logging.Format, f.logFormat)
	if cmd.Flags().Changed("limit") {
		cfg.Preview.Limit = f.limit
	}
	if len(args) == 1 {
		cfg.Input.Path = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	schema, err := core.Lookup(cfg.Input.Schema)
	if err != nil {
		return err
	}

	delim, _ := cfg.Input.DelimiterRune()
	a.cfg = cfg
	a.schema = schema
	a.input = cfg.Input.Path
	if a.input == "" {
		a.input = schema.Info.DefaultInput
	}
	a.opts = core.ReaderOptions{Delimiter: delim, Sheet: cfg.Input.Sheet}
	return nil
}

func (a *app) generate(cmd *cobra.Command) error {
	mode, _ := a.cfg.Output.Mode()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, runID := logging.NewRunContext(ctx)
	slog.Debug("run started", "run_id", runID)

	p := &core.Pipeline{
		Schema:     a.schema,
		InputPath:  a.input,
		Reader:     a.opts,
		Writer:     core.NewDocumentWriter(a.cfg.Output.Dir, mode),
		OnProgress: progressLogger(logging.FromContext(ctx)),
	}
	_, err := p.Run(ctx)
	return err
}

// progressLogger reports run milestones at debug level.
func progressLogger(log *slog.Logger) core.ProgressCallback {
	return func(p core.RunProgress) {
		log.Debug("run progress",
			"phase", p.Phase,
			"row", p.CurrentRow,
			"total", p.TotalRows,
			"percent", p.Percent(),
		)
	}
}

func (a *app) preview(cmd *cobra.Command) error {
	resp, err := core.Preview(a.input, a.schema, a.opts, a.cfg.Preview.Limit)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
