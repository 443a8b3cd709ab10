package model

// requests.go defines the request payloads accepted by the HTTP API.
// Validation tags are enforced by internal/validate before any payload
// reaches the service layer.

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	EventName          string `json:"event_name" validate:"required,min=1,max=200"`
	HeaderImageURL     string `json:"header_image_url" validate:"omitempty,url"`
	BackgroundImageURL string `json:"background_image_url" validate:"omitempty,url"`
	FooterImageURL     string `json:"footer_image_url" validate:"omitempty,url"`
	HeaderHeight       string `json:"header_height" validate:"omitempty,max=20"`
}

// UpdateEventRequest carries the mutable event fields. Nil pointers
// leave the stored value untouched.
type UpdateEventRequest struct {
	EventName          *string `json:"event_name" validate:"omitempty,min=1,max=200"`
	HeaderImageURL     *string `json:"header_image_url" validate:"omitempty,url"`
	BackgroundImageURL *string `json:"background_image_url" validate:"omitempty,url"`
	FooterImageURL     *string `json:"footer_image_url" validate:"omitempty,url"`
	HeaderHeight       *string `json:"header_height" validate:"omitempty,max=20"`
	Status             *string `json:"status" validate:"omitempty,max=50"`
}

// CreateDayRequest is the payload for adding a day to an event's agenda.
type CreateDayRequest struct {
	DayName string `json:"day_name" validate:"required,min=1,max=200"`
	DayDate string `json:"day_date" validate:"required,datetime=2006-01-02"`
}

// UpdateDayRequest carries the mutable day fields.
type UpdateDayRequest struct {
	DayName *string `json:"day_name" validate:"omitempty,min=1,max=200"`
	DayDate *string `json:"day_date" validate:"omitempty,datetime=2006-01-02"`
}

// CreateSlotRequest is the payload for adding a slot to a day.
// ShowPresenter defaults to "presenter name present" when omitted.
type CreateSlotRequest struct {
	SlotTitle     string `json:"slot_title" validate:"required,min=1,max=300"`
	StartTime     string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime       string `json:"end_time" validate:"required,datetime=15:04"`
	PresenterName string `json:"presenter_name" validate:"omitempty,max=200"`
	ShowPresenter *bool  `json:"show_presenter"`
	SortOrder     *int   `json:"sort_order" validate:"omitempty,min=0"`
}

// UpdateSlotRequest carries the mutable slot fields.
type UpdateSlotRequest struct {
	SlotTitle     *string `json:"slot_title" validate:"omitempty,min=1,max=300"`
	StartTime     *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime       *string `json:"end_time" validate:"omitempty,datetime=15:04"`
	PresenterName *string `json:"presenter_name" validate:"omitempty,max=200"`
	ShowPresenter *bool   `json:"show_presenter"`
	SortOrder     *int    `json:"sort_order" validate:"omitempty,min=0"`
}

// ExpertRequest is the payload for creating or replacing a directory
// expert through the admin API.
type ExpertRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Title       string `json:"title" validate:"omitempty,max=200"`
	Company     string `json:"company" validate:"omitempty,max=200"`
	Bio         string `json:"bio" validate:"omitempty,max=2000"`
	LinkedInURL string `json:"linkedin_url" validate:"omitempty,url"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
}

// CompanyRequest is the payload for creating or replacing a directory
// company through the admin API.
type CompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Founder  string `json:"founder" validate:"omitempty,max=200"`
	Location string `json:"location" validate:"omitempty,max=200"`
	Industry string `json:"industry" validate:"omitempty,max=200"`
	LogoURL  string `json:"logo_url" validate:"omitempty,url"`
}

// SubmitExpertRequest is the public registration payload for experts.
// AdditionalData carries values for the organizer-configured custom
// fields; required custom fields are enforced by the service against
// the event's form configuration.
type SubmitExpertRequest struct {
	Name           string            `json:"name" validate:"required,min=1,max=200"`
	Title          string            `json:"title" validate:"omitempty,max=200"`
	Company        string            `json:"company" validate:"omitempty,max=200"`
	Bio            string            `json:"bio" validate:"omitempty,max=2000"`
	LinkedInURL    string            `json:"linkedin_url" validate:"omitempty,url"`
	PhotoURL       string            `json:"photo_url" validate:"omitempty,url"`
	AdditionalData map[string]string `json:"additional_data"`
}

// SubmitCompanyRequest is the public registration payload for companies.
type SubmitCompanyRequest struct {
	Name           string            `json:"name" validate:"required,min=1,max=200"`
	Founder        string            `json:"founder" validate:"omitempty,max=200"`
	Location       string            `json:"location" validate:"omitempty,max=200"`
	Industry       string            `json:"industry" validate:"omitempty,max=200"`
	LogoURL        string            `json:"logo_url" validate:"omitempty,url"`
	AdditionalData map[string]string `json:"additional_data"`
}

// ImportSheetRequest is the payload for importing agenda data from a
// publicly shared Google Sheet.
type ImportSheetRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// RejectSubmissionRequest carries the optional rejection reason.
type RejectSubmissionRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=1000"`
}

// SaveFormConfigRequest replaces the form field configuration for one
// (event, entity type) pair.
type SaveFormConfigRequest struct {
	Fields []FormFieldRequest `json:"fields" validate:"required,min=1,max=50,dive"`
}

// FormFieldRequest describes one field of a submission form.
type FormFieldRequest struct {
	FieldName       string         `json:"field_name" validate:"required,min=1,max=100"`
	FieldLabel      string         `json:"field_label" validate:"required,min=1,max=200"`
	FieldType       string         `json:"field_type" validate:"required,oneof=text email url tel number textarea select multiselect file date"`
	IsRequired      bool           `json:"is_required"`
	DisplayOrder    int            `json:"display_order" validate:"min=0"`
	Placeholder     string         `json:"placeholder" validate:"omitempty,max=200"`
	HelpText        string         `json:"help_text" validate:"omitempty,max=500"`
	ShowInCard      bool           `json:"show_in_card"`
	FieldOptions    []string       `json:"field_options" validate:"omitempty,max=50"`
	ValidationRules map[string]any `json:"validation_rules"`
}

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
