package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/eventdesk/agendahub/internal/store"
)

// fakeStore is an in-memory implementation of Store for exercising the
// engines without a database. Slices keep insertion order, matching the
// ordered queries of the real store closely enough for these tests.
// Setting failOn makes the named method return errBoom, for verifying
// partial-progress behavior.
type fakeStore struct {
	events    map[string]model.Event
	days      []model.Day
	slots     []model.Slot
	experts   []model.Expert
	companies []model.Company

	expertSubs  map[string]model.ExpertSubmission
	companySubs map[string]model.CompanySubmission
	formFields  map[string][]model.FormField

	nextID int
	failOn string
}

var errBoom = errors.New("boom")

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:      map[string]model.Event{},
		expertSubs:  map[string]model.ExpertSubmission{},
		companySubs: map[string]model.CompanySubmission{},
		formFields:  map[string][]model.FormField{},
	}
}

func (f *fakeStore) genID() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeStore) fail(method string) error {
	if f.failOn == method {
		return errBoom
	}
	return nil
}

// addEvent seeds an event directly and returns its ID.
func (f *fakeStore) addEvent(name string) string {
	id := f.genID()
	f.events[id] = model.Event{EventID: id, EventName: name, Status: "active"}
	return id
}

// --- events ---

func (f *fakeStore) CreateEvent(_ context.Context, req model.CreateEventRequest) (model.Event, error) {
	e := model.Event{
		EventID:   f.genID(),
		EventName: req.EventName,
		Status:    "active",
		CreatedAt: time.Now(),
	}
	f.events[e.EventID] = e
	return e, nil
}

func (f *fakeStore) ListEvents(_ context.Context) ([]model.Event, error) {
	out := make([]model.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStore) GetEvent(_ context.Context, eventID string) (model.Event, error) {
	e, ok := f.events[eventID]
	if !ok {
		return model.Event{}, store.ErrNotFound
	}
	return e, nil
}

func (f *fakeStore) UpdateEvent(_ context.Context, eventID string, req model.UpdateEventRequest) (model.Event, error) {
	e, ok := f.events[eventID]
	if !ok {
		return model.Event{}, store.ErrNotFound
	}
	if req.EventName != nil {
		e.EventName = *req.EventName
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	f.events[eventID] = e
	return e, nil
}

func (f *fakeStore) DeleteEvent(_ context.Context, eventID string) error {
	delete(f.events, eventID)
	return nil
}

// --- days ---

func (f *fakeStore) ListDays(_ context.Context, eventID string) ([]model.Day, error) {
	if err := f.fail("ListDays"); err != nil {
		return nil, err
	}
	var out []model.Day
	for _, d := range f.days {
		if d.EventID == eventID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeStore) GetDay(_ context.Context, dayID string) (model.Day, error) {
	for _, d := range f.days {
		if d.DayID == dayID {
			return d, nil
		}
	}
	return model.Day{}, store.ErrNotFound
}

func (f *fakeStore) InsertDay(_ context.Context, d model.Day) (model.Day, error) {
	if err := f.fail("InsertDay"); err != nil {
		return model.Day{}, err
	}
	d.DayID = f.genID()
	f.days = append(f.days, d)
	return d, nil
}

func (f *fakeStore) UpdateDay(_ context.Context, dayID string, req model.UpdateDayRequest) (model.Day, error) {
	for i, d := range f.days {
		if d.DayID == dayID {
			if req.DayName != nil {
				d.DayName = *req.DayName
			}
			if req.DayDate != nil {
				d.DayDate = *req.DayDate
			}
			f.days[i] = d
			return d, nil
		}
	}
	return model.Day{}, store.ErrNotFound
}

func (f *fakeStore) UpdateDayDate(_ context.Context, dayID, dayDate string) error {
	if err := f.fail("UpdateDayDate"); err != nil {
		return err
	}
	for i, d := range f.days {
		if d.DayID == dayID {
			f.days[i].DayDate = dayDate
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteDay(_ context.Context, dayID string) error {
	for i, d := range f.days {
		if d.DayID == dayID {
			f.days = append(f.days[:i], f.days[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- slots ---

func (f *fakeStore) ListSlots(_ context.Context, dayID string) ([]model.Slot, error) {
	var out []model.Slot
	for _, s := range f.slots {
		if s.DayID == dayID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) ListSlotsByDays(_ context.Context, dayIDs []string) ([]model.Slot, error) {
	if err := f.fail("ListSlotsByDays"); err != nil {
		return nil, err
	}
	want := map[string]bool{}
	for _, id := range dayIDs {
		want[id] = true
	}
	var out []model.Slot
	for _, s := range f.slots {
		if want[s.DayID] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) GetSlot(_ context.Context, slotID string) (model.Slot, error) {
	for _, s := range f.slots {
		if s.SlotID == slotID {
			return s, nil
		}
	}
	return model.Slot{}, store.ErrNotFound
}

func (f *fakeStore) InsertSlot(_ context.Context, s model.Slot) (model.Slot, error) {
	if err := f.fail("InsertSlot"); err != nil {
		return model.Slot{}, err
	}
	s.SlotID = f.genID()
	f.slots = append(f.slots, s)
	return s, nil
}

func (f *fakeStore) UpdateSlot(_ context.Context, slotID string, req model.UpdateSlotRequest) (model.Slot, error) {
	for i, s := range f.slots {
		if s.SlotID == slotID {
			if req.SlotTitle != nil {
				s.SlotTitle = *req.SlotTitle
			}
			if req.StartTime != nil {
				s.StartTime = *req.StartTime
			}
			if req.EndTime != nil {
				s.EndTime = *req.EndTime
			}
			f.slots[i] = s
			return s, nil
		}
	}
	return model.Slot{}, store.ErrNotFound
}

func (f *fakeStore) UpdateSlotDetails(_ context.Context, slotID, startTime, endTime, presenterName string, showPresenter bool) error {
	if err := f.fail("UpdateSlotDetails"); err != nil {
		return err
	}
	for i, s := range f.slots {
		if s.SlotID == slotID {
			s.StartTime = startTime
			s.EndTime = endTime
			s.PresenterName = presenterName
			s.ShowPresenter = showPresenter
			f.slots[i] = s
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteSlot(_ context.Context, slotID string) error {
	for i, s := range f.slots {
		if s.SlotID == slotID {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) DeleteSlotsByDay(_ context.Context, dayID string) error {
	var keep []model.Slot
	for _, s := range f.slots {
		if s.DayID != dayID {
			keep = append(keep, s)
		}
	}
	f.slots = keep
	return nil
}

// --- experts ---

func (f *fakeStore) ListExperts(_ context.Context, eventID string) ([]model.Expert, error) {
	if err := f.fail("ListExperts"); err != nil {
		return nil, err
	}
	var out []model.Expert
	for _, e := range f.experts {
		if e.EventID == eventID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) GetExpert(_ context.Context, expertID string) (model.Expert, error) {
	for _, e := range f.experts {
		if e.ExpertID == expertID {
			return e, nil
		}
	}
	return model.Expert{}, store.ErrNotFound
}

func (f *fakeStore) InsertExpert(_ context.Context, e model.Expert) (model.Expert, error) {
	if err := f.fail("InsertExpert"); err != nil {
		return model.Expert{}, err
	}
	e.ExpertID = f.genID()
	f.experts = append(f.experts, e)
	return e, nil
}

func (f *fakeStore) UpdateExpert(_ context.Context, expertID string, req model.ExpertRequest) (model.Expert, error) {
	for i, e := range f.experts {
		if e.ExpertID == expertID {
			e.Name = req.Name
			e.Title = req.Title
			e.Bio = req.Bio
			f.experts[i] = e
			return e, nil
		}
	}
	return model.Expert{}, store.ErrNotFound
}

func (f *fakeStore) UpdateExpertProfile(_ context.Context, expertID, title, bio, linkedinURL string) error {
	if err := f.fail("UpdateExpertProfile"); err != nil {
		return err
	}
	for i, e := range f.experts {
		if e.ExpertID == expertID {
			e.Title = title
			e.Bio = bio
			e.LinkedInURL = linkedinURL
			f.experts[i] = e
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteExpert(_ context.Context, expertID string) error {
	for i, e := range f.experts {
		if e.ExpertID == expertID {
			f.experts = append(f.experts[:i], f.experts[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- companies ---

func (f *fakeStore) ListCompanies(_ context.Context, eventID string) ([]model.Company, error) {
	if err := f.fail("ListCompanies"); err != nil {
		return nil, err
	}
	var out []model.Company
	for _, c := range f.companies {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) GetCompany(_ context.Context, companyID string) (model.Company, error) {
	for _, c := range f.companies {
		if c.CompanyID == companyID {
			return c, nil
		}
	}
	return model.Company{}, store.ErrNotFound
}

func (f *fakeStore) InsertCompany(_ context.Context, c model.Company) (model.Company, error) {
	if err := f.fail("InsertCompany"); err != nil {
		return model.Company{}, err
	}
	c.CompanyID = f.genID()
	f.companies = append(f.companies, c)
	return c, nil
}

func (f *fakeStore) UpdateCompany(_ context.Context, companyID string, req model.CompanyRequest) (model.Company, error) {
	for i, c := range f.companies {
		if c.CompanyID == companyID {
			c.Name = req.Name
			c.Founder = req.Founder
			f.companies[i] = c
			return c, nil
		}
	}
	return model.Company{}, store.ErrNotFound
}

func (f *fakeStore) UpdateCompanyProfile(_ context.Context, companyID, founder, location, industry string) error {
	if err := f.fail("UpdateCompanyProfile"); err != nil {
		return err
	}
	for i, c := range f.companies {
		if c.CompanyID == companyID {
			c.Founder = founder
			c.Location = location
			c.Industry = industry
			f.companies[i] = c
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteCompany(_ context.Context, companyID string) error {
	for i, c := range f.companies {
		if c.CompanyID == companyID {
			f.companies = append(f.companies[:i], f.companies[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- submissions ---

func (f *fakeStore) InsertExpertSubmission(_ context.Context, sub model.ExpertSubmission) (model.ExpertSubmission, error) {
	sub.SubmissionID = f.genID()
	sub.Status = model.StatusPending
	sub.SubmittedAt = time.Now()
	f.expertSubs[sub.SubmissionID] = sub
	return sub, nil
}

func (f *fakeStore) GetExpertSubmission(_ context.Context, submissionID string) (model.ExpertSubmission, error) {
	sub, ok := f.expertSubs[submissionID]
	if !ok {
		return model.ExpertSubmission{}, store.ErrNotFound
	}
	return sub, nil
}

func (f *fakeStore) ListExpertSubmissions(_ context.Context, eventID string, status model.SubmissionStatus) ([]model.ExpertSubmission, error) {
	var out []model.ExpertSubmission
	for _, sub := range f.expertSubs {
		if sub.EventID == eventID && (status == "" || sub.Status == status) {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (f *fakeStore) MarkExpertSubmissionReviewed(_ context.Context, submissionID string, status model.SubmissionStatus, reason string, reviewedAt time.Time) error {
	if err := f.fail("MarkExpertSubmissionReviewed"); err != nil {
		return err
	}
	sub, ok := f.expertSubs[submissionID]
	if !ok {
		return store.ErrNotFound
	}
	sub.Status = status
	sub.RejectionReason = reason
	sub.ReviewedAt = &reviewedAt
	f.expertSubs[submissionID] = sub
	return nil
}

func (f *fakeStore) InsertCompanySubmission(_ context.Context, sub model.CompanySubmission) (model.CompanySubmission, error) {
	sub.SubmissionID = f.genID()
	sub.Status = model.StatusPending
	sub.SubmittedAt = time.Now()
	f.companySubs[sub.SubmissionID] = sub
	return sub, nil
}

func (f *fakeStore) GetCompanySubmission(_ context.Context, submissionID string) (model.CompanySubmission, error) {
	sub, ok := f.companySubs[submissionID]
	if !ok {
		return model.CompanySubmission{}, store.ErrNotFound
	}
	return sub, nil
}

func (f *fakeStore) ListCompanySubmissions(_ context.Context, eventID string, status model.SubmissionStatus) ([]model.CompanySubmission, error) {
	var out []model.CompanySubmission
	for _, sub := range f.companySubs {
		if sub.EventID == eventID && (status == "" || sub.Status == status) {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (f *fakeStore) MarkCompanySubmissionReviewed(_ context.Context, submissionID string, status model.SubmissionStatus, reason string, reviewedAt time.Time) error {
	sub, ok := f.companySubs[submissionID]
	if !ok {
		return store.ErrNotFound
	}
	sub.Status = status
	sub.RejectionReason = reason
	sub.ReviewedAt = &reviewedAt
	f.companySubs[submissionID] = sub
	return nil
}

// --- form configuration ---

func formKey(eventID string, entityType model.EntityType) string {
	return eventID + "/" + string(entityType)
}

func (f *fakeStore) ListFormFields(_ context.Context, eventID string, entityType model.EntityType) ([]model.FormField, error) {
	return f.formFields[formKey(eventID, entityType)], nil
}

func (f *fakeStore) ReplaceFormFields(_ context.Context, eventID string, entityType model.EntityType, fields []model.FormField) ([]model.FormField, error) {
	for i := range fields {
		fields[i].FieldID = f.genID()
		fields[i].EventID = eventID
		fields[i].EntityType = entityType
	}
	f.formFields[formKey(eventID, entityType)] = fields
	return fields, nil
}

var _ Store = (*fakeStore)(nil)
