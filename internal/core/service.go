package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/eventdesk/agendahub/internal/logging"
	"github.com/eventdesk/agendahub/internal/model"
	"github.com/eventdesk/agendahub/internal/workbook"
)

// Store is the full persistence surface the service needs. It embeds
// the narrow per-engine interfaces and adds the plain CRUD calls the
// HTTP layer reaches through the service. *store.Store satisfies it.
type Store interface {
	AgendaStore
	CascadeStore
	ReviewStore

	CreateEvent(ctx context.Context, req model.CreateEventRequest) (model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req model.UpdateEventRequest) (model.Event, error)

	UpdateDay(ctx context.Context, dayID string, req model.UpdateDayRequest) (model.Day, error)

	ListSlots(ctx context.Context, dayID string) ([]model.Slot, error)
	GetSlot(ctx context.Context, slotID string) (model.Slot, error)
	UpdateSlot(ctx context.Context, slotID string, req model.UpdateSlotRequest) (model.Slot, error)
	DeleteSlot(ctx context.Context, slotID string) error

	GetExpert(ctx context.Context, expertID string) (model.Expert, error)
	UpdateExpert(ctx context.Context, expertID string, req model.ExpertRequest) (model.Expert, error)
	DeleteExpert(ctx context.Context, expertID string) error

	GetCompany(ctx context.Context, companyID string) (model.Company, error)
	UpdateCompany(ctx context.Context, companyID string, req model.CompanyRequest) (model.Company, error)
	DeleteCompany(ctx context.Context, companyID string) error

	InsertExpertSubmission(ctx context.Context, sub model.ExpertSubmission) (model.ExpertSubmission, error)
	ListExpertSubmissions(ctx context.Context, eventID string, status model.SubmissionStatus) ([]model.ExpertSubmission, error)
	InsertCompanySubmission(ctx context.Context, sub model.CompanySubmission) (model.CompanySubmission, error)
	ListCompanySubmissions(ctx context.Context, eventID string, status model.SubmissionStatus) ([]model.CompanySubmission, error)

	ListFormFields(ctx context.Context, eventID string, entityType model.EntityType) ([]model.FormField, error)
	ReplaceFormFields(ctx context.Context, eventID string, entityType model.EntityType, fields []model.FormField) ([]model.FormField, error)
}

// SheetFetcher downloads and parses a shared Google Sheet.
type SheetFetcher interface {
	FetchGoogleSheet(ctx context.Context, sheetURL string) (*model.AgendaData, error)
}

// Service is the facade the HTTP layer talks to. It composes the
// reconciler, cascader, and reviewer with the store and enforces the
// cross-record rules single CRUD calls cannot: day numbering, slot
// defaults, submission form validation, and import concurrency.
type Service struct {
	store      Store
	reconciler *Reconciler
	cascader   *Cascader
	reviewer   *Reviewer
	limiter    *ImportLimiter
	fetcher    SheetFetcher
}

// NewService wires a Service from its parts. fetcher may be nil when
// Google Sheets import is disabled; calling ImportGoogleSheet then
// fails.
func NewService(st Store, limiter *ImportLimiter, fetcher SheetFetcher) *Service {
	return &Service{
		store:      st,
		reconciler: NewReconciler(st),
		cascader:   NewCascader(st),
		reviewer:   NewReviewer(st),
		limiter:    limiter,
		fetcher:    fetcher,
	}
}

// Limiter exposes the import limiter for shutdown draining.
func (s *Service) Limiter() *ImportLimiter { return s.limiter }

// --- Events ---

func (s *Service) CreateEvent(ctx context.Context, req model.CreateEventRequest) (model.Event, error) {
	return s.store.CreateEvent(ctx, req)
}

func (s *Service) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.store.ListEvents(ctx)
}

func (s *Service) GetEvent(ctx context.Context, eventID string) (model.Event, error) {
	return s.store.GetEvent(ctx, eventID)
}

func (s *Service) UpdateEvent(ctx context.Context, eventID string, req model.UpdateEventRequest) (model.Event, error) {
	return s.store.UpdateEvent(ctx, eventID, req)
}

// DeleteEvent cascades through days and slots before removing the event.
func (s *Service) DeleteEvent(ctx context.Context, eventID string) error {
	return s.cascader.DeleteEvent(ctx, eventID)
}

// FullAgenda composes the public view of one event: days with nested
// slots plus both directories. Slots for all days are fetched in one
// query and grouped in memory.
func (s *Service) FullAgenda(ctx context.Context, eventID string) (*model.FullAgenda, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	days, err := s.store.ListDays(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}

	dayIDs := make([]string, len(days))
	for i, d := range days {
		dayIDs[i] = d.DayID
	}
	slots, err := s.store.ListSlotsByDays(ctx, dayIDs)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	slotsByDay := make(map[string][]model.Slot)
	for _, sl := range slots {
		slotsByDay[sl.DayID] = append(slotsByDay[sl.DayID], sl)
	}

	agendaDays := make([]model.AgendaDay, len(days))
	for i, d := range days {
		agendaDays[i] = model.AgendaDay{Day: d, Slots: slotsByDay[d.DayID]}
	}

	experts, err := s.store.ListExperts(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list experts: %w", err)
	}
	companies, err := s.store.ListCompanies(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	return &model.FullAgenda{
		Event:     event,
		Days:      agendaDays,
		Experts:   experts,
		Companies: companies,
	}, nil
}

// --- Days ---

func (s *Service) ListDays(ctx context.Context, eventID string) ([]model.Day, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.store.ListDays(ctx, eventID)
}

// CreateDay adds a day to the event, numbered after the existing days.
func (s *Service) CreateDay(ctx context.Context, eventID string, req model.CreateDayRequest) (model.Day, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return model.Day{}, err
	}
	days, err := s.store.ListDays(ctx, eventID)
	if err != nil {
		return model.Day{}, fmt.Errorf("list days: %w", err)
	}

	return s.store.InsertDay(ctx, model.Day{
		EventID:   eventID,
		DayNumber: len(days) + 1,
		DayName:   req.DayName,
		DayDate:   req.DayDate,
	})
}

func (s *Service) UpdateDay(ctx context.Context, dayID string, req model.UpdateDayRequest) (model.Day, error) {
	return s.store.UpdateDay(ctx, dayID, req)
}

// DeleteDay cascades through the day's slots before removing it.
func (s *Service) DeleteDay(ctx context.Context, dayID string) error {
	return s.cascader.DeleteDay(ctx, dayID)
}

// --- Slots ---

func (s *Service) ListSlots(ctx context.Context, dayID string) ([]model.Slot, error) {
	if _, err := s.store.GetDay(ctx, dayID); err != nil {
		return nil, err
	}
	return s.store.ListSlots(ctx, dayID)
}

// CreateSlot adds a slot to a day. When omitted, ShowPresenter defaults
// to whether a presenter name was given, and SortOrder to
// DefaultSortOrder, placing manual slots after imported ones.
func (s *Service) CreateSlot(ctx context.Context, dayID string, req model.CreateSlotRequest) (model.Slot, error) {
	if _, err := s.store.GetDay(ctx, dayID); err != nil {
		return model.Slot{}, err
	}

	showPresenter := req.PresenterName != ""
	if req.ShowPresenter != nil {
		showPresenter = *req.ShowPresenter
	}
	sortOrder := model.DefaultSortOrder
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	return s.store.InsertSlot(ctx, model.Slot{
		DayID:         dayID,
		SlotTitle:     req.SlotTitle,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		PresenterName: req.PresenterName,
		ShowPresenter: showPresenter,
		SortOrder:     sortOrder,
	})
}

func (s *Service) GetSlot(ctx context.Context, slotID string) (model.Slot, error) {
	return s.store.GetSlot(ctx, slotID)
}

func (s *Service) UpdateSlot(ctx context.Context, slotID string, req model.UpdateSlotRequest) (model.Slot, error) {
	return s.store.UpdateSlot(ctx, slotID, req)
}

func (s *Service) DeleteSlot(ctx context.Context, slotID string) error {
	return s.store.DeleteSlot(ctx, slotID)
}

// --- Directories ---

func (s *Service) ListExperts(ctx context.Context, eventID string) ([]model.Expert, error) {
	return s.store.ListExperts(ctx, eventID)
}

func (s *Service) CreateExpert(ctx context.Context, eventID string, req model.ExpertRequest) (model.Expert, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return model.Expert{}, err
	}
	return s.store.InsertExpert(ctx, model.Expert{
		EventID:     eventID,
		Name:        req.Name,
		Title:       req.Title,
		Company:     req.Company,
		Bio:         req.Bio,
		LinkedInURL: req.LinkedInURL,
		PhotoURL:    req.PhotoURL,
	})
}

func (s *Service) GetExpert(ctx context.Context, expertID string) (model.Expert, error) {
	return s.store.GetExpert(ctx, expertID)
}

func (s *Service) UpdateExpert(ctx context.Context, expertID string, req model.ExpertRequest) (model.Expert, error) {
	return s.store.UpdateExpert(ctx, expertID, req)
}

func (s *Service) DeleteExpert(ctx context.Context, expertID string) error {
	return s.store.DeleteExpert(ctx, expertID)
}

func (s *Service) ListCompanies(ctx context.Context, eventID string) ([]model.Company, error) {
	return s.store.ListCompanies(ctx, eventID)
}

func (s *Service) CreateCompany(ctx context.Context, eventID string, req model.CompanyRequest) (model.Company, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return model.Company{}, err
	}
	return s.store.InsertCompany(ctx, model.Company{
		EventID:  eventID,
		Name:     req.Name,
		Founder:  req.Founder,
		Location: req.Location,
		Industry: req.Industry,
		LogoURL:  req.LogoURL,
	})
}

func (s *Service) GetCompany(ctx context.Context, companyID string) (model.Company, error) {
	return s.store.GetCompany(ctx, companyID)
}

func (s *Service) UpdateCompany(ctx context.Context, companyID string, req model.CompanyRequest) (model.Company, error) {
	return s.store.UpdateCompany(ctx, companyID, req)
}

func (s *Service) DeleteCompany(ctx context.Context, companyID string) error {
	return s.store.DeleteCompany(ctx, companyID)
}

// --- Imports ---

// ImportWorkbook parses an uploaded XLSX workbook and reconciles it
// into the event's agenda. Returns ErrTooManyImports when the limiter
// cannot grant a slot in time.
func (s *Service) ImportWorkbook(ctx context.Context, eventID string, r io.Reader) (*model.ReconciliationReport, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := workbook.Parse(r)
	if err != nil {
		return nil, err
	}

	report, err := s.reconciler.Reconcile(ctx, eventID, data)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("workbook import completed",
		"event_id", eventID, "duration", time.Since(start))
	return report, nil
}

// ImportGoogleSheet downloads a publicly shared Google Sheet and
// reconciles it into the event's agenda.
func (s *Service) ImportGoogleSheet(ctx context.Context, eventID, sheetURL string) (*model.ReconciliationReport, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("google sheet import is not configured")
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	data, err := s.fetcher.FetchGoogleSheet(ctx, sheetURL)
	if err != nil {
		return nil, err
	}

	return s.reconciler.Reconcile(ctx, eventID, data)
}

// --- Submissions ---

// SubmitExpert records a public expert registration as pending review.
// Required custom fields from the event's form configuration must be
// present in AdditionalData.
func (s *Service) SubmitExpert(ctx context.Context, eventID string, req model.SubmitExpertRequest) (model.ExpertSubmission, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return model.ExpertSubmission{}, err
	}
	builtin := map[string]string{
		"expert_name": req.Name,
		"photo_url":   req.PhotoURL,
		"title":       req.Title,
		"company":     req.Company,
		"bio":         req.Bio,
	}
	if err := s.checkRequiredFields(ctx, eventID, model.EntityExpert, builtin, req.AdditionalData); err != nil {
		return model.ExpertSubmission{}, err
	}

	return s.store.InsertExpertSubmission(ctx, model.ExpertSubmission{
		EventID:        eventID,
		Name:           req.Name,
		Title:          req.Title,
		Company:        req.Company,
		Bio:            req.Bio,
		LinkedInURL:    req.LinkedInURL,
		PhotoURL:       req.PhotoURL,
		AdditionalData: req.AdditionalData,
	})
}

// SubmitCompany records a public company registration as pending review.
func (s *Service) SubmitCompany(ctx context.Context, eventID string, req model.SubmitCompanyRequest) (model.CompanySubmission, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return model.CompanySubmission{}, err
	}
	builtin := map[string]string{
		"startup_name": req.Name,
		"logo_url":     req.LogoURL,
		"industry":     req.Industry,
		"location":     req.Location,
	}
	if err := s.checkRequiredFields(ctx, eventID, model.EntityCompany, builtin, req.AdditionalData); err != nil {
		return model.CompanySubmission{}, err
	}

	return s.store.InsertCompanySubmission(ctx, model.CompanySubmission{
		EventID:        eventID,
		Name:           req.Name,
		Founder:        req.Founder,
		Location:       req.Location,
		Industry:       req.Industry,
		LogoURL:        req.LogoURL,
		AdditionalData: req.AdditionalData,
	})
}

// MissingFieldError reports a required form field absent from a
// submission.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// checkRequiredFields validates a submission against the event's form
// configuration. Built-in field names resolve from the typed payload;
// everything else from the custom data map.
func (s *Service) checkRequiredFields(ctx context.Context, eventID string, entityType model.EntityType, builtin, data map[string]string) error {
	fields, err := s.FormFields(ctx, eventID, entityType)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if !f.IsRequired {
			continue
		}
		value, ok := builtin[f.FieldName]
		if !ok {
			value = data[f.FieldName]
		}
		if value == "" {
			return &MissingFieldError{Field: f.FieldName}
		}
	}
	return nil
}

func (s *Service) ListExpertSubmissions(ctx context.Context, eventID string, status model.SubmissionStatus) ([]model.ExpertSubmission, error) {
	return s.store.ListExpertSubmissions(ctx, eventID, status)
}

func (s *Service) ListCompanySubmissions(ctx context.Context, eventID string, status model.SubmissionStatus) ([]model.CompanySubmission, error) {
	return s.store.ListCompanySubmissions(ctx, eventID, status)
}

func (s *Service) ApproveExpertSubmission(ctx context.Context, submissionID string) (model.Expert, error) {
	return s.reviewer.ApproveExpert(ctx, submissionID)
}

func (s *Service) ApproveCompanySubmission(ctx context.Context, submissionID string) (model.Company, error) {
	return s.reviewer.ApproveCompany(ctx, submissionID)
}

func (s *Service) RejectExpertSubmission(ctx context.Context, submissionID, reason string) error {
	return s.reviewer.RejectExpert(ctx, submissionID, reason)
}

func (s *Service) RejectCompanySubmission(ctx context.Context, submissionID, reason string) error {
	return s.reviewer.RejectCompany(ctx, submissionID, reason)
}

// --- Form configuration ---

// FormFields returns the configured form fields for the event and
// entity type, falling back to the built-in defaults when the organizer
// has not customized the form.
func (s *Service) FormFields(ctx context.Context, eventID string, entityType model.EntityType) ([]model.FormField, error) {
	fields, err := s.store.ListFormFields(ctx, eventID, entityType)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return DefaultFormFields(entityType), nil
	}
	return fields, nil
}

// SaveFormFields replaces the form configuration for the event and
// entity type.
func (s *Service) SaveFormFields(ctx context.Context, eventID string, entityType model.EntityType, req model.SaveFormConfigRequest) ([]model.FormField, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	fields := make([]model.FormField, len(req.Fields))
	for i, f := range req.Fields {
		fields[i] = model.FormField{
			FieldName:       f.FieldName,
			FieldLabel:      f.FieldLabel,
			FieldType:       f.FieldType,
			IsRequired:      f.IsRequired,
			DisplayOrder:    f.DisplayOrder,
			Placeholder:     f.Placeholder,
			HelpText:        f.HelpText,
			ShowInCard:      f.ShowInCard,
			FieldOptions:    f.FieldOptions,
			ValidationRules: f.ValidationRules,
		}
	}
	return s.store.ReplaceFormFields(ctx, eventID, entityType, fields)
}

// DefaultFormFields returns the built-in registration form shown when
// an event has no stored configuration.
func DefaultFormFields(entityType model.EntityType) []model.FormField {
	if entityType == model.EntityCompany {
		return []model.FormField{
			{FieldName: "startup_name", FieldLabel: "Company Name", FieldType: "text",
				IsRequired: true, ShowInCard: true, DisplayOrder: 0,
				Placeholder: "Enter company name"},
			{FieldName: "logo_url", FieldLabel: "Company Logo", FieldType: "file",
				ShowInCard: true, DisplayOrder: 1,
				HelpText: "Upload your company logo (JPG, PNG)"},
			{FieldName: "industry", FieldLabel: "Industry", FieldType: "text",
				ShowInCard: true, DisplayOrder: 2,
				Placeholder: "e.g., SaaS, E-commerce, FinTech"},
			{FieldName: "location", FieldLabel: "Location", FieldType: "text",
				ShowInCard: true, DisplayOrder: 3,
				Placeholder: "e.g., Cairo, Dubai, Remote"},
		}
	}
	return []model.FormField{
		{FieldName: "expert_name", FieldLabel: "Full Name", FieldType: "text",
			IsRequired: true, ShowInCard: true, DisplayOrder: 0,
			Placeholder: "Enter your full name"},
		{FieldName: "photo_url", FieldLabel: "Photo", FieldType: "file",
			ShowInCard: true, DisplayOrder: 1,
			HelpText: "Upload a professional photo"},
		{FieldName: "title", FieldLabel: "Job Title", FieldType: "text",
			ShowInCard: true, DisplayOrder: 2,
			Placeholder: "e.g., CEO, CTO, Founder"},
		{FieldName: "company", FieldLabel: "Company", FieldType: "text",
			ShowInCard: true, DisplayOrder: 3,
			Placeholder: "Company name"},
		{FieldName: "bio", FieldLabel: "Bio", FieldType: "textarea",
			ShowInCard: true, DisplayOrder: 4,
			Placeholder: "Brief bio about yourself",
			ValidationRules: map[string]any{"maxLength": 500}},
	}
}
