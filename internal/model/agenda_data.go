package model

// agenda_data.go defines the shapes exchanged between the workbook
// parser and the reconciliation engine. Rows are plain field structs in
// sheet order; the parser guarantees that every row carries its natural
// matching key (day name, slot title, or name).

// AgendaData is the parsed content of one import workbook.
type AgendaData struct {
	Days      []DayRow     `json:"days"`
	Slots     []SlotRow    `json:"slots"`
	Experts   []ExpertRow  `json:"experts"`
	Companies []CompanyRow `json:"companies"`
}

// DayRow is one row of the "Days" sheet.
type DayRow struct {
	DayName string `json:"day_name"`
	DayDate string `json:"day_date"`
}

// SlotRow is one row of the "Agenda Slots" sheet. DayName references a
// row of the Days sheet by name.
type SlotRow struct {
	DayName       string `json:"day_name"`
	SlotTitle     string `json:"slot_title"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	PresenterName string `json:"presenter_name"`
	ShowPresenter bool   `json:"show_presenter"`
}

// ExpertRow is one row of the optional "Experts" sheet.
type ExpertRow struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Bio         string `json:"bio"`
	LinkedInURL string `json:"linkedin_url"`
}

// CompanyRow is one row of the optional "Companies" sheet.
type CompanyRow struct {
	Name     string `json:"name"`
	Founder  string `json:"founder"`
	Location string `json:"location"`
	Industry string `json:"industry"`
}

// EntityChanges counts the outcome of one reconciliation stage.
type EntityChanges struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// ReconciliationReport is the per-entity change summary returned by a
// reconciliation run.
type ReconciliationReport struct {
	Days      EntityChanges `json:"days"`
	Slots     EntityChanges `json:"slots"`
	Experts   EntityChanges `json:"experts"`
	Companies EntityChanges `json:"companies"`
}
