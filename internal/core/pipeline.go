package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/JonMunkholm/metagen/internal/logging"
)

// Pipeline converts every row of one input table into a metadata file.
// Rows are handled strictly in order; the first failure stops the run and
// files already written are left in place.
type Pipeline struct {
	Schema     Schema
	InputPath  string
	Reader     ReaderOptions
	Writer     *DocumentWriter
	OnProgress ProgressCallback // Optional
}

func (p *Pipeline) notify(progress RunProgress) {
	if p.OnProgress != nil {
		p.OnProgress(progress)
	}
}

// Run executes the pipeline. The input is read twice: once to count rows
// for the total reported up front, then again to generate files.
func (p *Pipeline) Run(ctx context.Context) (RunResult, error) {
	start := time.Now()
	log := logging.WithFields(ctx,
		"input", p.InputPath,
		"schema", p.Schema.Info.Key,
		"output_dir", p.Writer.Dir,
	)

	result := RunResult{
		InputPath: p.InputPath,
		OutputDir: p.Writer.Dir,
		Schema:    p.Schema.Info.Key,
	}

	fail := func(err error) (RunResult, error) {
		result.Duration = time.Since(start)
		phase := PhaseFailed
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			phase = PhaseCancelled
		}
		p.notify(RunProgress{
			Phase:      phase,
			TotalRows:  result.TotalRows,
			CurrentRow: result.Generated,
			Error:      err.Error(),
		})
		log.Error("metadata generation failed",
			"generated", result.Generated,
			"error", err,
		)
		return result, err
	}

	log.Info("starting CSV parsing and metadata generation")
	p.notify(RunProgress{Phase: PhaseStarting})

	p.notify(RunProgress{Phase: PhaseCounting})
	total, err := CountRows(p.InputPath, p.Schema, p.Reader)
	if err != nil {
		return fail(err)
	}
	result.TotalRows = total
	log.Info("found records in input", "total", total)

	if err := p.Writer.Prepare(); err != nil {
		return fail(err)
	}

	table, err := OpenTable(p.InputPath, p.Schema, p.Reader)
	if err != nil {
		return fail(err)
	}
	defer table.Close()

	count := 1
	for {
		if err := ctx.Err(); err != nil {
			return fail(fmt.Errorf("run cancelled before row %d: %w", count, err))
		}

		row, err := table.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fail(err)
		}

		doc := Transform(p.Schema, row)
		name, err := p.Writer.Write(count, doc)
		if err != nil {
			return fail(err)
		}

		log.Info("generated metadata file", "file", name)
		log.Debug("input progress", "row", row.Index, "line", row.Line, "percent", table.Progress())

		result.Generated = count
		p.notify(RunProgress{
			Phase:      PhaseWriting,
			TotalRows:  total,
			CurrentRow: count,
			FileName:   name,
		})
		count++
	}

	result.Generated = count - 1
	result.Duration = time.Since(start)
	p.notify(RunProgress{
		Phase:      PhaseComplete,
		TotalRows:  total,
		CurrentRow: result.Generated,
	})
	log.Info("successfully generated metadata files",
		"generated", result.Generated,
		"duration_ms", result.Duration.Milliseconds(),
	)

	return result, nil
}
