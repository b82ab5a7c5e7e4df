package core

import (
	"errors"
	"io"
)

// DefaultPreviewLimit is the number of documents previewed when no limit is given.
const DefaultPreviewLimit = 3

// DocumentPreview is one transformed row, shown without writing a file.
type DocumentPreview struct {
	Row      int      `json:"row"`
	Line     int      `json:"line"`
	FileName string   `json:"fileName"`
	Document Metadata `json:"document"`
}

// PreviewResponse is the read-only result of transforming the first rows
// of a table.
type PreviewResponse struct {
	Schema    string            `json:"schema"`
	TotalRows int               `json:"totalRows"`
	Documents []DocumentPreview `json:"documents"`
}

// Preview transforms up to limit rows of the table and reports the file
// names a real run would use. Nothing is written. The first row that
// fails to parse aborts the preview, as it would abort a run.
func Preview(path string, s Schema, opts ReaderOptions, limit int) (*PreviewResponse, error) {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}

	total, err := CountRows(path, s, opts)
	if err != nil {
		return nil, err
	}

	table, err := OpenTable(path, s, opts)
	if err != nil {
		return nil, err
	}
	defer table.Close()

	resp := &PreviewResponse{
		Schema:    s.Info.Key,
		TotalRows: total,
		Documents: []DocumentPreview{},
	}
	writer := NewDocumentWriter(".", 0)

	for len(resp.Documents) < limit {
		row, err := table.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		id := len(resp.Documents) + 1
		resp.Documents = append(resp.Documents, DocumentPreview{
			Row:      row.Index,
			Line:     row.Line,
			FileName: writer.Path(id),
			Document: Transform(s, row),
		})
	}

	return resp, nil
}
