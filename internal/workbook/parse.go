// Package workbook parses XLSX agenda workbooks into the structured
// day/slot/expert/company rows consumed by the reconciliation engine.
//
// Matching is forgiving by design, because the files come from
// non-technical organizers editing a shared template:
//   - sheet lookup is case- and whitespace-insensitive
//   - column headers accept a small set of synonyms per field
//   - rows missing their natural key are silently dropped
//
// Validation is all-or-nothing: every required sheet and column is
// checked before any row is converted, so a malformed file never yields
// partial data.
package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names and their accepted alternates.
var (
	daysSheetNames      = []string{"Days"}
	slotsSheetNames     = []string{"Agenda Slots", "Slots", "Agenda"}
	expertsSheetNames   = []string{"Experts"}
	companiesSheetNames = []string{"Companies", "Startups"}
)

// Required columns per sheet, by canonical name.
var (
	daysRequiredColumns  = []string{"Day Name", "Date"}
	slotsRequiredColumns = []string{"Day Name", "Slot Title", "Start Time", "End Time"}
	expertsRequiredColumns   = []string{"Name"}
	companiesRequiredColumns = []string{"Company Name"}
)

// Column synonyms, canonical name -> accepted header spellings. Headers
// are normalized (lowercased, whitespace stripped) before comparison, so
// "Date (YYYY-MM-DD)" matches the "Date" prefix entry explicitly.
var columnSynonyms = map[string][]string{
	"Day Name":       {"Day Name", "Name", "Day"},
	"Date":           {"Date (YYYY-MM-DD)", "Date"},
	"Slot Title":     {"Slot Title", "Title"},
	"Start Time":     {"Start Time (HH:mm)", "Start Time", "Start"},
	"End Time":       {"End Time (HH:mm)", "End Time", "End"},
	"Presenter Name": {"Presenter Name", "Presenter"},
	"Show Presenter": {"Show Presenter (TRUE/FALSE)", "Show Presenter"},
	"Name":           {"Name", "Full Name"},
	"Title":          {"Title"},
	"Bio":            {"Bio"},
	"LinkedIn URL":   {"LinkedIn URL", "LinkedIn"},
	"Company Name":   {"Company Name", "Name", "Startup Name"},
	"Founder":        {"Founder", "CEO"},
	"Location":       {"Governorate", "Location", "City"},
	"Industry":       {"Industry", "Sector"},
}

// Parse reads an XLSX workbook and returns the structured agenda data.
// "Days" and "Agenda Slots" sheets are mandatory; "Experts" and
// "Companies" are optional and yield empty sequences when absent.
func Parse(r io.Reader) (*model.AgendaData, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return parseFile(f)
}

func parseFile(f *excelize.File) (*model.AgendaData, error) {
	sheetNames := f.GetSheetList()

	daysSheet := findSheet(sheetNames, daysSheetNames)
	if daysSheet == "" {
		return nil, &MissingSheetError{Sheet: "Days", Found: sheetNames}
	}
	slotsSheet := findSheet(sheetNames, slotsSheetNames)
	if slotsSheet == "" {
		return nil, &MissingSheetError{Sheet: "Agenda Slots", Found: sheetNames}
	}
	expertsSheet := findSheet(sheetNames, expertsSheetNames)
	companiesSheet := findSheet(sheetNames, companiesSheetNames)

	// Validate every sheet before converting any row: a file that fails
	// here must not produce partial data.
	daysRows, err := readSheet(f, daysSheet, "Days", daysRequiredColumns)
	if err != nil {
		return nil, err
	}
	slotsRows, err := readSheet(f, slotsSheet, "Agenda Slots", slotsRequiredColumns)
	if err != nil {
		return nil, err
	}
	var expertsRows, companiesRows []record
	if expertsSheet != "" {
		if expertsRows, err = readSheet(f, expertsSheet, "Experts", expertsRequiredColumns); err != nil {
			return nil, err
		}
	}
	if companiesSheet != "" {
		if companiesRows, err = readSheet(f, companiesSheet, "Companies", companiesRequiredColumns); err != nil {
			return nil, err
		}
	}

	data := &model.AgendaData{
		Days:      []model.DayRow{},
		Slots:     []model.SlotRow{},
		Experts:   []model.ExpertRow{},
		Companies: []model.CompanyRow{},
	}

	for _, row := range daysRows {
		d := model.DayRow{
			DayName: row.get("Day Name"),
			DayDate: row.get("Date"),
		}
		if d.DayName == "" || d.DayDate == "" {
			continue
		}
		data.Days = append(data.Days, d)
	}

	for _, row := range slotsRows {
		s := model.SlotRow{
			DayName:       row.get("Day Name"),
			SlotTitle:     row.get("Slot Title"),
			StartTime:     row.get("Start Time"),
			EndTime:       row.get("End Time"),
			PresenterName: row.get("Presenter Name"),
			ShowPresenter: parseShowPresenter(row.get("Show Presenter")),
		}
		if s.DayName == "" || s.SlotTitle == "" {
			continue
		}
		data.Slots = append(data.Slots, s)
	}

	for _, row := range expertsRows {
		e := model.ExpertRow{
			Name:        row.get("Name"),
			Title:       row.get("Title"),
			Bio:         row.get("Bio"),
			LinkedInURL: row.get("LinkedIn URL"),
		}
		if e.Name == "" {
			continue
		}
		data.Experts = append(data.Experts, e)
	}

	for _, row := range companiesRows {
		c := model.CompanyRow{
			Name:     row.get("Company Name"),
			Founder:  row.get("Founder"),
			Location: row.get("Location"),
			Industry: row.get("Industry"),
		}
		if c.Name == "" {
			continue
		}
		data.Companies = append(data.Companies, c)
	}

	return data, nil
}

// record maps canonical column names to cell values for one sheet row.
type record map[string]string

func (r record) get(canonical string) string {
	return strings.TrimSpace(r[canonical])
}

// readSheet validates the header of one sheet and converts its rows to
// records keyed by canonical column name.
func readSheet(f *excelize.File, sheet, canonicalName string, required []string) ([]record, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &MissingColumnsError{Sheet: canonicalName, Missing: required}
	}

	header := rows[0]

	// Column index per canonical name, via the synonym table.
	colIdx := make(map[string]int)
	for canonical, synonyms := range columnSynonyms {
		for _, syn := range synonyms {
			if idx := findColumn(header, syn); idx >= 0 {
				if _, taken := colIdx[canonical]; !taken {
					colIdx[canonical] = idx
				}
				break
			}
		}
	}

	var missing []string
	for _, req := range required {
		if _, ok := colIdx[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Sheet: canonicalName, Missing: missing, Found: header}
	}

	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record, len(colIdx))
		empty := true
		for canonical, idx := range colIdx {
			if idx < len(row) {
				rec[canonical] = row[idx]
				if strings.TrimSpace(row[idx]) != "" {
					empty = false
				}
			}
		}
		if empty {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// normalizeName lowercases and strips all whitespace for sheet and
// column comparisons.
func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// findSheet returns the actual sheet name matching any of the candidates
// case/whitespace-insensitively, or "".
func findSheet(available, candidates []string) string {
	for _, want := range candidates {
		norm := normalizeName(want)
		for _, name := range available {
			if normalizeName(name) == norm {
				return name
			}
		}
	}
	return ""
}

// findColumn returns the index of the header cell matching name, or -1.
func findColumn(header []string, name string) int {
	norm := normalizeName(name)
	for i, cell := range header {
		if normalizeName(cell) == norm {
			return i
		}
	}
	return -1
}

// parseShowPresenter treats an empty cell as true; any other value must
// spell "true" (case-insensitive) to count as true.
func parseShowPresenter(s string) bool {
	v := strings.TrimSpace(s)
	if v == "" {
		return true
	}
	return strings.EqualFold(v, "true")
}
