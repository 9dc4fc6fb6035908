// Package importer reads uploaded tabular files, maps user-chosen columns
// onto the canonical transaction fields and inserts the rows one by one.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chitieu-app/chitieu/internal/common"
	"github.com/xuri/excelize/v2"
)

// Table is a fully-materialized tabular dataset: a header row plus data
// rows. Files are read entirely into memory before any mapping happens.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ReadFile materializes a file into a Table, dispatching on extension.
func ReadFile(path string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(r)
	case ".xlsx":
		return readXLSX(r)
	case ".ofx", ".qfx":
		return readOFX(r)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFile, filepath.Ext(path))
	}
}

func readCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; coercion rejects them later

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, common.ErrEmptyFile
	}

	return &Table{Columns: records[0], Rows: records[1:]}, nil
}

func readXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.ErrEmptyFile
	}

	// Only the first sheet is imported, matching the upload widget.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, common.ErrEmptyFile
	}

	return &Table{Columns: rows[0], Rows: rows[1:]}, nil
}

// ColumnIndex returns the position of a named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(name)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", common.ErrColumnNotMapped, name)
}

// ToCSV serializes the table back to CSV text, the shape the AI bridge
// consumes.
func (t *Table) ToCSV() (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(t.Columns); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return sb.String(), nil
}
