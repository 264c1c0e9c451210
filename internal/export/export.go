// Package export writes records as CSV or XLSX tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	domrec "github.com/kailas-cloud/folio/internal/domain/record"
)

const sheet = "Records"

var header = []string{"id", "kind", "title", "description", "tags", "category", "date", "views", "href"}

// Format is an output table format.
type Format string

const (
	// CSV is comma-separated values.
	CSV Format = "csv"
	// XLSX is an Excel workbook.
	XLSX Format = "xlsx"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return XLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// WriteFile writes records to path in the format its extension names.
func WriteFile(path string, records []domrec.Record) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, format, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Write writes records to w in format.
func Write(w io.Writer, format Format, records []domrec.Record) error {
	switch format {
	case CSV:
		return WriteCSV(w, records)
	case XLSX:
		return WriteXLSX(w, records)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteCSV writes a header row and one row per record. Tags are joined with "|".
func WriteCSV(w io.Writer, records []domrec.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range records {
		if err := cw.Write(row(&records[i])); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a single-sheet workbook through a stream writer.
func WriteXLSX(w io.Writer, records []domrec.Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}

	if err := sw.SetRow("A1", cells(header)); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}
	for i := range records {
		values := cells(row(&records[i]))
		values[7] = records[i].Views()
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell address: %w", err)
		}
		if err := sw.SetRow(addr, values); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush xlsx: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func row(r *domrec.Record) []string {
	return []string{
		r.ID(), string(r.Kind()), r.Title(), r.Description(),
		strings.Join(r.Tags(), "|"), r.Category(), r.Date(),
		strconv.Itoa(r.Views()), r.Href(),
	}
}

func cells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
