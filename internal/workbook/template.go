package workbook

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Template returns a sample XLSX workbook with the four sheets and
// example rows that organizers can download, edit, and re-upload.
func Template() ([]byte, error) {
	sheets := []struct {
		name string
		rows [][]any
	}{
		{"Days", [][]any{
			{"Day Name", "Date (YYYY-MM-DD)"},
			{"Day 1", "2026-02-11"},
			{"Day 2", "2026-02-12"},
		}},
		{"Agenda Slots", [][]any{
			{"Day Name", "Slot Title", "Start Time (HH:mm)", "End Time (HH:mm)", "Presenter Name", "Show Presenter (TRUE/FALSE)"},
			{"Day 1", "Opening Ceremony", "09:00", "10:00", "John Doe", "TRUE"},
			{"Day 1", "Keynote Speech", "10:00", "11:00", "Jane Smith", "TRUE"},
			{"Day 2", "Workshop A", "14:00", "16:00", "Alice Brown", "FALSE"},
		}},
		{"Experts", [][]any{
			{"Name", "Title", "Bio", "LinkedIn URL"},
			{"Jane Doe", "CEO @ Startup", "Entrepreneur and tech enthusiast", "https://linkedin.com/in/janedoe"},
			{"Robert Smith", "Product Manager", "PM with 10 years of experience", "https://linkedin.com/in/robertsmith"},
		}},
		{"Companies", [][]any{
			{"Company Name", "Founder", "Location", "Industry"},
			{"Tech Innovators", "Alice Brown", "Cairo", "Software"},
			{"Green Energy", "Bob Wilson", "Alexandria", "Renewable Energy"},
		}},
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// The workbook starts with one default sheet; rename it.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return nil, fmt.Errorf("create sheet %q: %w", sheet.name, err)
			}
		}
		for r, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				return nil, fmt.Errorf("write row in %q: %w", sheet.name, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize template: %w", err)
	}
	return buf.Bytes(), nil
}
