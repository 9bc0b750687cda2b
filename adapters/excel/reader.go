// Package excel reads spreadsheet workbooks into datasets.
package excel

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"rwescore/domain/core"
	"rwescore/domain/tabular"
	"rwescore/internal/errors"
	"rwescore/ports"
)

var _ ports.DatasetReader = (*Reader)(nil)

// Reader loads xlsx workbooks into tabular datasets. The first row of the
// selected sheet is the header; blank cells become nulls.
type Reader struct {
	// Sheet names the worksheet to read. Empty means the first sheet.
	Sheet string
}

// NewReader creates a workbook reader over the first sheet.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the workbook at path into a dataset.
func (r *Reader) Read(path string) (tabular.Dataset, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".xlsx" && ext != ".xlsm" {
		return tabular.Dataset{}, core.NewReadError(path, core.ErrUnsupportedFormat)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return tabular.Dataset{}, core.NewReadError(path, core.ErrFileNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return tabular.Dataset{}, errors.ReadError(path, err)
	}
	defer f.Close()

	sheet := r.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return tabular.Dataset{}, errors.ReadError(path, err)
	}
	if len(raw) == 0 {
		return tabular.Dataset{}, core.NewReadError(path, core.ErrEmptyInput)
	}

	columns := make([]string, len(raw[0]))
	blank := true
	for i, name := range raw[0] {
		columns[i] = strings.TrimSpace(name)
		if columns[i] != "" {
			blank = false
		}
	}
	if blank {
		return tabular.Dataset{}, core.NewReadError(path, core.ErrMissingHeader)
	}

	rows := make([]tabular.Row, 0, len(raw)-1)
	for _, record := range raw[1:] {
		rows = append(rows, rowFromCells(columns, record))
	}

	return tabular.New(rows), nil
}

// rowFromCells maps one sheet row onto the header. GetRows trims trailing
// empty cells, so short records are padded with nulls.
func rowFromCells(columns []string, record []string) tabular.Row {
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
