// Package model defines the domain types shared by the store, the
// reconciliation engine, and the HTTP layer.
//
// JSON tags mirror the column names of the backing tables so that API
// payloads, spreadsheet imports, and stored rows all speak the same
// vocabulary (event_id, day_name, slot_title, ...).
package model

import "time"

// Event is the root of ownership: it owns days, experts, and companies
// directly (via event_id) and agenda slots indirectly (via days).
type Event struct {
	EventID            string    `json:"event_id"`
	EventName          string    `json:"event_name"`
	HeaderImageURL     string    `json:"header_image_url"`
	BackgroundImageURL string    `json:"background_image_url"`
	FooterImageURL     string    `json:"footer_image_url"`
	HeaderHeight       string    `json:"header_height"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// Day is one calendar day of an event's agenda.
//
// DayName is the natural key used when reconciling spreadsheet imports;
// it should be unique within an event, though the schema does not
// enforce that. DayNumber is an advisory ordering hint assigned as
// "current day count + 1" at creation time.
type Day struct {
	DayID     string `json:"day_id"`
	EventID   string `json:"event_id"`
	DayNumber int    `json:"day_number"`
	DayName   string `json:"day_name"`
	DayDate   string `json:"day_date"` // calendar date, YYYY-MM-DD
}

// Slot is a single agenda entry within a day. (DayID, SlotTitle) is the
// natural key for reconciliation. Times are stored at HH:MM granularity.
type Slot struct {
	SlotID        string `json:"slot_id"`
	DayID         string `json:"day_id"`
	SlotTitle     string `json:"slot_title"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	PresenterName string `json:"presenter_name"`
	ShowPresenter bool   `json:"show_presenter"`
	SortOrder     int    `json:"sort_order"`
}

// DefaultSortOrder is assigned to manually created slots that do not
// specify an explicit position; it sorts them after reconciled slots.
const DefaultSortOrder = 999

// Expert is a directory entry for a speaker or mentor. Name is the
// natural key within an event.
type Expert struct {
	ExpertID    string            `json:"expert_id"`
	EventID     string            `json:"event_id"`
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Company     string            `json:"company"`
	Bio         string            `json:"bio"`
	LinkedInURL string            `json:"linkedin_url"`
	PhotoURL    string            `json:"photo_url"`
	Extra       map[string]string `json:"extra,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Company is a directory entry for a startup or exhibitor. Name is the
// natural key within an event.
type Company struct {
	CompanyID string            `json:"company_id"`
	EventID   string            `json:"event_id"`
	Name      string            `json:"name"`
	Founder   string            `json:"founder"`
	Location  string            `json:"location"`
	Industry  string            `json:"industry"`
	LogoURL   string            `json:"logo_url"`
	Extra     map[string]string `json:"extra,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// FullAgenda is the composed public view of one event: the event itself,
// its days with nested slots, and both directories.
type FullAgenda struct {
	Event     Event       `json:"event"`
	Days      []AgendaDay `json:"days"`
	Experts   []Expert    `json:"experts"`
	Companies []Company   `json:"companies"`
}

// AgendaDay is a day with its slots nested for display.
type AgendaDay struct {
	Day
	Slots []Slot `json:"slots"`
}

// SubmissionStatus is the review state of a registration submission.
// Transitions are pending -> approved or pending -> rejected; both
// terminal states are final.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// EntityType distinguishes the two registration portals.
type EntityType string

const (
	EntityExpert  EntityType = "expert"
	EntityCompany EntityType = "company"
)

// Valid reports whether the entity type is one of the known values.
func (t EntityType) Valid() bool {
	return t == EntityExpert || t == EntityCompany
}

// ExpertSubmission is a pending expert registration awaiting review.
// AdditionalData carries values for custom form fields configured by the
// organizer; on approval it is copied into the expert's Extra map.
type ExpertSubmission struct {
	SubmissionID    string            `json:"submission_id"`
	EventID         string            `json:"event_id"`
	Name            string            `json:"name"`
	Title           string            `json:"title"`
	Company         string            `json:"company"`
	Bio             string            `json:"bio"`
	LinkedInURL     string            `json:"linkedin_url"`
	PhotoURL        string            `json:"photo_url"`
	AdditionalData  map[string]string `json:"additional_data,omitempty"`
	Status          SubmissionStatus  `json:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	SubmittedAt     time.Time         `json:"submitted_at"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
}

// CompanySubmission is a pending company registration awaiting review.
type CompanySubmission struct {
	SubmissionID    string            `json:"submission_id"`
	EventID         string            `json:"event_id"`
	Name            string            `json:"name"`
	Founder         string            `json:"founder"`
	Location        string            `json:"location"`
	Industry        string            `json:"industry"`
	LogoURL         string            `json:"logo_url"`
	AdditionalData  map[string]string `json:"additional_data,omitempty"`
	Status          SubmissionStatus  `json:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	SubmittedAt     time.Time         `json:"submitted_at"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
}

// FormField describes one input of a public registration form. The
// ordered list of fields per (event, entity type) governs both the form
// rendered to registrants and which keys land in AdditionalData.
type FormField struct {
	FieldID         string         `json:"field_id"`
	EventID         string         `json:"event_id"`
	EntityType      EntityType     `json:"entity_type"`
	FieldName       string         `json:"field_name"`
	FieldLabel      string         `json:"field_label"`
	FieldType       string         `json:"field_type"`
	IsRequired      bool           `json:"is_required"`
	DisplayOrder    int            `json:"display_order"`
	Placeholder     string         `json:"placeholder,omitempty"`
	HelpText        string         `json:"help_text,omitempty"`
	ShowInCard      bool           `json:"show_in_card"`
	FieldOptions    []string       `json:"field_options,omitempty"`
	ValidationRules map[string]any `json:"validation_rules,omitempty"`
}

// FieldTypes lists the input types a form field may declare.
var FieldTypes = []string{
	"text", "email", "url", "tel", "number",
	"textarea", "select", "multiselect", "file", "date",
}

// ValidFieldType reports whether t is a known form field type.
func ValidFieldType(t string) bool {
	for _, ft := range FieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}
