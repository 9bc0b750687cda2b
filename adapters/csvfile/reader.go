// Package csvfile reads delimited text files into datasets.
package csvfile

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"rwescore/domain/core"
	"rwescore/domain/tabular"
	"rwescore/internal/errors"
	"rwescore/ports"
)

var _ ports.DatasetReader = (*Reader)(nil)

// Reader loads CSV files into tabular datasets. The first record is the
// header; empty fields become null cells so downstream scoring treats them
// as missing values rather than empty strings.
type Reader struct {
	// Comma overrides the field delimiter when non-zero.
	Comma rune
}

// NewReader creates a CSV reader with the standard comma delimiter.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the file at path into a dataset.
func (r *Reader) Read(path string) (tabular.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return tabular.Dataset{}, core.NewReadError(path, core.ErrFileNotFound)
		}
		return tabular.Dataset{}, errors.ReadError(path, err)
	}
	defer f.Close()

	return r.ReadFrom(f, path)
}

// ReadFrom parses CSV content from an open stream. The path argument is
// used only for error context.
func (r *Reader) ReadFrom(src io.Reader, path string) (tabular.Dataset, error) {
	cr := csv.NewReader(src)
	cr.TrimLeadingSpace = true
	// Rows with trailing empty fields are common in hand-edited exports.
	cr.FieldsPerRecord = -1
	if r.Comma != 0 {
		cr.Comma = r.Comma
	}

	header, err := cr.Read()
	if err == io.EOF {
		return tabular.Dataset{}, core.NewReadError(path, core.ErrEmptyInput)
	}
	if err != nil {
		return tabular.Dataset{}, errors.ReadError(path, err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}
	if allEmpty(columns) {
		return tabular.Dataset{}, core.NewReadError(path, core.ErrMissingHeader)
	}

	var rows []tabular.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return tabular.Dataset{}, errors.ReadError(path, err)
		}
		rows = append(rows, rowFromRecord(columns, record))
	}

	return tabular.New(rows), nil
}

func rowFromRecord(columns []string, record []string) tabular.Row {
	row := make(tabular.Row, len(columns))
	for i, col := range columns {
		if col == "" {
			continue
		}
		if i >= len(record) {
			row[col] = nil
			continue
		}
		value := strings.TrimSpace(record[i])
		if value == "" {
			row[col] = nil
		} else {
			row[col] = value
		}
	}
	return row
}

func allEmpty(columns []string) bool {
	for _, c := range columns {
		if c != "" {
			return false
		}
	}
	return true
}
