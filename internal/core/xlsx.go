package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxSource reads one worksheet of a workbook. Completely empty rows are
// skipped, the same way encoding/csv skips blank lines.
type xlsxSource struct {
	f    *excelize.File
	rows *excelize.Rows
	line int
}

func openXLSX(path, sheet string) (*xlsxSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}

	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		f.Close()
		return nil, &ParseError{Row: 0, Err: fmt.Errorf("sheet %q not found in workbook (sheets: %s)",
			sheet, strings.Join(f.GetSheetList(), ", "))}
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		f.Close()
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	return &xlsxSource{f: f, rows: rows}, nil
}

func (x *xlsxSource) next() ([]string, int, error) {
	for x.rows.Next() {
		x.line++
		cols, err := x.rows.Columns()
		if err != nil {
			return nil, x.line, err
		}
		if isBlankRow(cols) {
			continue
		}
		return cols, x.line, nil
	}
	if err := x.rows.Error(); err != nil {
		return nil, x.line, err
	}
	return nil, x.line, io.EOF
}

// Workbook rows drop trailing empty cells, so short rows are padded.
func (x *xlsxSource) padShort() bool { return true }

func (x *xlsxSource) Close() error {
	rowsErr := x.rows.Close()
	if err := x.f.Close(); err != nil {
		return err
	}
	return rowsErr
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
