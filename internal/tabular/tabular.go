// Package tabular reads and writes the row-oriented files memcurve uses for
// catalogs and ledgers: CSV, TSV and XLSX workbooks.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for file extensions with no reader.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format identifies a tabular file encoding.
type Format int

const (
	CSV Format = iota + 1
	TSV
	XLSX
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case TSV:
		return "tsv"
	case XLSX:
		return "xlsx"
	}
	return "unknown"
}

// FormatOf picks a format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return CSV, nil
	case ".tsv", ".tab":
		return TSV, nil
	case ".xlsx", ".xlsm":
		return XLSX, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Read returns every row of the file. For workbooks the named sheet is read
// when present, otherwise the first sheet. A missing file surfaces as an
// error matching os.ErrNotExist.
func Read(path, sheet string) ([][]string, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == XLSX {
		return readXLSX(path, sheet)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readDelimited(f, format)
}

func readDelimited(r io.Reader, format Format) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if format == TSV {
		cr.Comma = '\t'
		cr.LazyQuotes = true
	}
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}
	// Spreadsheet exports often start with a UTF-8 byte order mark.
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	name := sheets[0]
	for _, s := range sheets {
		if sheet != "" && s == sheet {
			name = s
			break
		}
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	return rows, nil
}

// Write replaces the file with rows. The write goes to a temporary file in
// the same directory which is then renamed over the target.
func Write(path, sheet string, rows [][]any) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if format == XLSX {
		err = writeXLSX(tmp, sheet, rows)
	} else {
		err = writeDelimited(tmp, format, rows)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("atomic rename %s: %w", path, err)
	}
	return nil
}

func writeDelimited(w io.Writer, format Format, rows [][]any) error {
	cw := csv.NewWriter(w)
	if format == TSV {
		cw.Comma = '\t'
	}
	for _, row := range rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = fmt.Sprint(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, sheet string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		vals := row
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}
