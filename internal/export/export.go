package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"rollcall/internal/models"
)

// SheetName is the single worksheet of the spreadsheet export.
const SheetName = "attendees"

// CSV renders the roster as a delimited table, header row first, values as
// stored. Deterministic for a given input.
func CSV(rows []models.Attendee) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(models.AttendeeColumns); err != nil {
		return nil, fmt.Errorf("writing export header: %w", err)
	}
	for _, a := range rows {
		if err := w.Write(a.Row()); err != nil {
			return nil, fmt.Errorf("writing export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing export: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX renders the roster as a spreadsheet container with a single sheet,
// same rows and column order as CSV.
func XLSX(rows []models.Attendee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	if err := setRow(f, 1, models.AttendeeColumns); err != nil {
		return nil, err
	}
	for i, a := range rows {
		if err := setRow(f, i+2, a.Row()); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", row, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}
