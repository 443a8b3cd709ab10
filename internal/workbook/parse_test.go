package workbook

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook creates an in-memory XLSX file from sheet name -> rows.
// Sheet order follows the order slice.
func buildWorkbook(t *testing.T, order []string, sheets map[string][][]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("create sheet %q: %v", name, err)
			}
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("write row: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("serialize workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func minimalSheets() (order []string, sheets map[string][][]any) {
	order = []string{"Days", "Agenda Slots"}
	sheets = map[string][][]any{
		"Days": {
			{"Day Name", "Date (YYYY-MM-DD)"},
			{"Day 1", "2026-02-11"},
		},
		"Agenda Slots": {
			{"Day Name", "Slot Title", "Start Time (HH:mm)", "End Time (HH:mm)", "Presenter Name", "Show Presenter (TRUE/FALSE)"},
			{"Day 1", "Opening", "09:00", "10:00", "John Doe", "TRUE"},
		},
	}
	return order, sheets
}

func TestParse_FullWorkbook(t *testing.T) {
	order := []string{"Days", "Agenda Slots", "Experts", "Companies"}
	sheets := map[string][][]any{
		"Days": {
			{"Day Name", "Date (YYYY-MM-DD)"},
			{"Day 1", "2026-02-11"},
			{"Day 2", "2026-02-12"},
		},
		"Agenda Slots": {
			{"Day Name", "Slot Title", "Start Time (HH:mm)", "End Time (HH:mm)", "Presenter Name", "Show Presenter (TRUE/FALSE)"},
			{"Day 1", "Opening", "09:00", "10:00", "John Doe", "TRUE"},
			{"Day 2", "Workshop", "14:00", "16:00", "Alice Brown", "FALSE"},
		},
		"Experts": {
			{"Name", "Title", "Bio", "LinkedIn URL"},
			{"Jane Doe", "CEO", "Bio text", "https://linkedin.com/in/janedoe"},
		},
		"Companies": {
			{"Company Name", "Founder", "Governorate", "Industry"},
			{"Tech Innovators", "Alice Brown", "Cairo", "Software"},
		},
	}

	data, err := Parse(buildWorkbook(t, order, sheets))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(data.Days) != 2 {
		t.Fatalf("len(Days) = %d, want 2", len(data.Days))
	}
	if data.Days[0].DayName != "Day 1" || data.Days[0].DayDate != "2026-02-11" {
		t.Errorf("Days[0] = %+v", data.Days[0])
	}

	if len(data.Slots) != 2 {
		t.Fatalf("len(Slots) = %d, want 2", len(data.Slots))
	}
	if !data.Slots[0].ShowPresenter {
		t.Error("Slots[0].ShowPresenter = false, want true")
	}
	if data.Slots[1].ShowPresenter {
		t.Error("Slots[1].ShowPresenter = true, want false")
	}

	if len(data.Experts) != 1 || data.Experts[0].Name != "Jane Doe" {
		t.Errorf("Experts = %+v", data.Experts)
	}

	// "Governorate" is a synonym for the location column.
	if len(data.Companies) != 1 || data.Companies[0].Location != "Cairo" {
		t.Errorf("Companies = %+v", data.Companies)
	}
}

func TestParse_SheetLookupInsensitive(t *testing.T) {
	order := []string{" days ", "SLOTS"}
	sheets := map[string][][]any{
		" days ": {
			{"Day Name", "Date"},
			{"Day 1", "2026-02-11"},
		},
		"SLOTS": {
			{"Day Name", "Slot Title", "Start Time", "End Time"},
			{"Day 1", "Opening", "09:00", "10:00"},
		},
	}

	data, err := Parse(buildWorkbook(t, order, sheets))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(data.Days) != 1 || len(data.Slots) != 1 {
		t.Errorf("Days = %d, Slots = %d, want 1 and 1", len(data.Days), len(data.Slots))
	}
}

func TestParse_MissingDaysSheet(t *testing.T) {
	order := []string{"Agenda Slots"}
	sheets := map[string][][]any{
		"Agenda Slots": {
			{"Day Name", "Slot Title", "Start Time", "End Time"},
		},
	}

	_, err := Parse(buildWorkbook(t, order, sheets))

	var msErr *MissingSheetError
	if !errors.As(err, &msErr) {
		t.Fatalf("Parse() error = %v, want MissingSheetError", err)
	}
	if msErr.Sheet != "Days" {
		t.Errorf("Sheet = %q, want %q", msErr.Sheet, "Days")
	}
	if len(msErr.Found) != 1 || msErr.Found[0] != "Agenda Slots" {
		t.Errorf("Found = %v, want [Agenda Slots]", msErr.Found)
	}
}

func TestParse_MissingColumns(t *testing.T) {
	order := []string{"Days", "Agenda Slots"}
	sheets := map[string][][]any{
		"Days": {
			{"Day Name", "Date"},
			{"Day 1", "2026-02-11"},
		},
		"Agenda Slots": {
			// No Start Time column.
			{"Day Name", "Slot Title", "End Time"},
			{"Day 1", "Opening", "10:00"},
		},
	}

	_, err := Parse(buildWorkbook(t, order, sheets))

	var mcErr *MissingColumnsError
	if !errors.As(err, &mcErr) {
		t.Fatalf("Parse() error = %v, want MissingColumnsError", err)
	}
	if mcErr.Sheet != "Agenda Slots" {
		t.Errorf("Sheet = %q, want %q", mcErr.Sheet, "Agenda Slots")
	}
	found := false
	for _, col := range mcErr.Missing {
		if col == "Start Time" {
			found = true
		}
	}
	if !found {
		t.Errorf("Missing = %v, want to include %q", mcErr.Missing, "Start Time")
	}
}

func TestParse_OptionalSheetsAbsent(t *testing.T) {
	order, sheets := minimalSheets()

	data, err := Parse(buildWorkbook(t, order, sheets))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(data.Experts) != 0 {
		t.Errorf("len(Experts) = %d, want 0", len(data.Experts))
	}
	if len(data.Companies) != 0 {
		t.Errorf("len(Companies) = %d, want 0", len(data.Companies))
	}
}

func TestParse_OptionalSheetStillValidated(t *testing.T) {
	order, sheets := minimalSheets()
	order = append(order, "Experts")
	sheets["Experts"] = [][]any{
		{"Title", "Bio"}, // no Name column
	}

	_, err := Parse(buildWorkbook(t, order, sheets))

	var mcErr *MissingColumnsError
	if !errors.As(err, &mcErr) {
		t.Fatalf("Parse() error = %v, want MissingColumnsError", err)
	}
	if mcErr.Sheet != "Experts" {
		t.Errorf("Sheet = %q, want %q", mcErr.Sheet, "Experts")
	}
}

func TestParse_DropsRowsMissingKeys(t *testing.T) {
	order, sheets := minimalSheets()
	sheets["Days"] = append(sheets["Days"],
		[]any{"Day 2", ""},    // missing date
		[]any{"", "2026-02-13"}, // missing name
	)
	sheets["Agenda Slots"] = append(sheets["Agenda Slots"],
		[]any{"Day 1", "", "11:00", "12:00", "", ""}, // missing title
	)

	data, err := Parse(buildWorkbook(t, order, sheets))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(data.Days) != 1 {
		t.Errorf("len(Days) = %d, want 1", len(data.Days))
	}
	if len(data.Slots) != 1 {
		t.Errorf("len(Slots) = %d, want 1", len(data.Slots))
	}
}

func TestParse_ShowPresenterSpellings(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"TRUE", true},
		{"true", true},
		{"False", false},
		{"FALSE", false},
		{"no", false},  // anything not spelled "true" hides
		{"x", false},
		{"", true}, // absent defaults to true
	}

	for _, tt := range tests {
		order, sheets := minimalSheets()
		sheets["Agenda Slots"][1][5] = tt.value

		data, err := Parse(buildWorkbook(t, order, sheets))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if got := data.Slots[0].ShowPresenter; got != tt.want {
			t.Errorf("ShowPresenter(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestParse_NotAWorkbook(t *testing.T) {
	_, err := Parse(strings.NewReader("definitely not an xlsx file"))
	if err == nil {
		t.Fatal("Parse() succeeded on garbage input, want error")
	}
}

func TestTemplate_RoundTrips(t *testing.T) {
	raw, err := Template()
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}

	data, err := Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse(Template()) error = %v", err)
	}

	if len(data.Days) != 2 {
		t.Errorf("len(Days) = %d, want 2", len(data.Days))
	}
	if len(data.Slots) != 3 {
		t.Errorf("len(Slots) = %d, want 3", len(data.Slots))
	}
	if len(data.Experts) != 2 {
		t.Errorf("len(Experts) = %d, want 2", len(data.Experts))
	}
	if len(data.Companies) != 2 {
		t.Errorf("len(Companies) = %d, want 2", len(data.Companies))
	}
}
