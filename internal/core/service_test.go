package core

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/eventdesk/agendahub/internal/store"
	"github.com/eventdesk/agendahub/internal/workbook"
)

func newTestService(fs *fakeStore) *Service {
	return NewService(fs, NewImportLimiter(2, time.Second), nil)
}

func TestService_CreateDayNumbersSequentially(t *testing.T) {
	fs := newFakeStore()
	eventID := fs.addEvent("Summit")
	svc := newTestService(fs)
	ctx := context.Background()

	first, err := svc.CreateDay(ctx, eventID, model.CreateDayRequest{DayName: "Day 1", DayDate: "2026-02-11"})
	if err != nil {
		t.Fatalf("CreateDay() error = %v", err)
	}
	second, err := svc.CreateDay(ctx, eventID, model.CreateDayRequest{DayName: "Day 2", DayDate: "2026-02-12"})
	if err != nil {
		t.Fatalf("CreateDay() error = %v", err)
	}

	if first.DayNumber != 1 || second.DayNumber != 2 {
		t.Errorf("day numbers = %d, %d, want 1, 2", first.DayNumber, second.DayNumber)
	}
}

func TestService_CreateDayUnknownEvent(t *testing.T) {
	svc := newTestService(newFakeStore())
	_, err := svc.CreateDay(context.Background(), "missing", model.CreateDayRequest{DayName: "Day 1", DayDate: "2026-02-11"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("CreateDay() error = %v, want ErrNotFound", err)
	}
}

func TestService_CreateSlotDefaults(t *testing.T) {
	fs := newFakeStore()
	eventID := fs.addEvent("Summit")
	svc := newTestService(fs)
	ctx := context.Background()

	day, err := svc.CreateDay(ctx, eventID, model.CreateDayRequest{DayName: "Day 1", DayDate: "2026-02-11"})
	if err != nil {
		t.Fatalf("CreateDay() error = %v", err)
	}

	// No presenter named, so the flag defaults off.
	slot, err := svc.CreateSlot(ctx, day.DayID, model.CreateSlotRequest{
		SlotTitle: "Opening", StartTime: "09:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	if slot.ShowPresenter {
		t.Error("ShowPresenter = true, want false without a presenter")
	}
	if slot.SortOrder != model.DefaultSortOrder {
		t.Errorf("SortOrder = %d, want %d", slot.SortOrder, model.DefaultSortOrder)
	}

	// Naming a presenter flips the default on.
	named, err := svc.CreateSlot(ctx, day.DayID, model.CreateSlotRequest{
		SlotTitle: "Keynote", StartTime: "10:00", EndTime: "11:00",
		PresenterName: "Jane Smith",
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	if !named.ShowPresenter {
		t.Error("ShowPresenter = false, want true when a presenter is named")
	}

	// An explicit flag wins over the derived default.
	show := true
	order := 5
	custom, err := svc.CreateSlot(ctx, day.DayID, model.CreateSlotRequest{
		SlotTitle: "Panel", StartTime: "11:00", EndTime: "12:00",
		ShowPresenter: &show, SortOrder: &order,
	})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	if !custom.ShowPresenter || custom.SortOrder != 5 {
		t.Errorf("custom slot = %+v, want explicit values kept", custom)
	}
}

func TestService_FullAgenda(t *testing.T) {
	fs := newFakeStore()
	eventID := fs.addEvent("Summit")
	seedAgenda(t, fs, eventID)
	svc := newTestService(fs)

	agenda, err := svc.FullAgenda(context.Background(), eventID)
	if err != nil {
		t.Fatalf("FullAgenda() error = %v", err)
	}

	if agenda.Event.EventID != eventID {
		t.Errorf("event = %+v", agenda.Event)
	}
	if len(agenda.Days) != 2 {
		t.Fatalf("len(Days) = %d, want 2", len(agenda.Days))
	}
	if len(agenda.Days[0].Slots) != 2 || len(agenda.Days[1].Slots) != 1 {
		t.Errorf("nested slots = %d, %d, want 2 and 1",
			len(agenda.Days[0].Slots), len(agenda.Days[1].Slots))
	}
	if len(agenda.Experts) != 1 || len(agenda.Companies) != 1 {
		t.Errorf("directories = %d experts, %d companies, want 1 each",
			len(agenda.Experts), len(agenda.Companies))
	}
}

func TestService_ImportWorkbook(t *testing.T) {
	fs := newFakeStore()
	eventID := fs.addEvent("Summit")
	svc := newTestService(fs)

	raw, err := workbook.Template()
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}

	report, err := svc.ImportWorkbook(context.Background(), eventID, bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ImportWorkbook() error = %v", err)
	}

	if report.Days.Added != 2 || report.Slots.Added != 3 {
		t.Errorf("report = %+v, want 2 days and 3 slots added", report)
	}
	if report.Experts.Added != 2 || report.Companies.Added != 2 {
		t.Errorf("report = %+v, want 2 experts and 2 companies added", report)
	}

	// The limiter slot was released.
	if got := svc.Limiter().ActiveCount(); got != 0 {
		t.Errorf("ActiveCount = %d, want 0", got)
	}
}

func TestService_ImportWorkbook_UnknownEvent(t *testing.T) {
	svc := newTestService(newFakeStore())

	raw, err := workbook.Template()
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}

	_, err = svc.ImportWorkbook(context.Background(), "missing", bytes.NewReader(raw))
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("ImportWorkbook() error = %v, want ErrNotFound", err)
	}
}

func TestService_ImportWorkbook_BadFile(t *testing.T) {
	fs := newFakeStore()
	eventID := fs.addEvent("Summit")
	svc := newTestService(fs)

	_, err := svc.ImportWorkbook(context.Background(), eventID, strings.NewReader("not an xlsx"))
	if err == nil {
		t.Fatal("ImportWorkbook() succeeded on garbage input")
	}
	if got := svc.Limiter().ActiveCount(); got != 0 {
		t.Errorf("ActiveCount = %d, want 0 after failed import", got)
	}
}

func TestService_ImportWorkbook_LimiterFull(t *testing.T) {
	fs := newFakeStore()
	eventID := fs.addEvent("Summit")
	svc := &Service{
		store:      fs,
		reconciler: NewReconciler(fs),
		limiter:    NewImportLimiter(1, 50*time.Millisecond),
	}

	if err := svc.limiter.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer svc.limiter.Release()

	raw, err := workbook.Template()
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}

	_, err = svc.ImportWorkbook(context.Background(), eventID, bytes.NewReader(raw))
	if !errors.Is(err, ErrTooManyImports) {
		t.Errorf("ImportWorkbook() error = %v, want ErrTooManyImports", err)
	}
}

func TestService_SubmitExpert_DefaultFormValidation(t *testing.T) {
	fs := newFakeStore()
	eventID := fs.addEvent("Summit")
	svc := newTestService(fs)
	ctx := context.Background()

	// The default expert form requires only the name, which the typed
	// payload always carries.
	sub, err := svc.SubmitExpert(ctx, eventID, model.SubmitExpertRequest{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("SubmitExpert() error = %v", err)
	}
	if sub.Status != model.StatusPending {
		t.Errorf("status = %q, want pending", sub.Status)
	}
}

func TestService_SubmitExpert_MissingRequiredCustomField(t *testing.T) {
	fs := newFakeStore()
	eventID := fs.addEvent("Summit")
	svc := newTestService(fs)
	ctx := context.Background()

	_, err := svc.SaveFormFields(ctx, eventID, model.EntityExpert, model.SaveFormConfigRequest{
		Fields: []model.FormFieldRequest{
			{FieldName: "expert_name", FieldLabel: "Full Name", FieldType: "text", IsRequired: true},
			{FieldName: "dietary", FieldLabel: "Dietary Needs", FieldType: "text", IsRequired: true, DisplayOrder: 1},
		},
	})
	if err != nil {
		t.Fatalf("SaveFormFields() error = %v", err)
	}

	_, err = svc.SubmitExpert(ctx, eventID, model.SubmitExpertRequest{Name: "Jane Doe"})
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("SubmitExpert() error = %v, want MissingFieldError", err)
	}
	if missing.Field != "dietary" {
		t.Errorf("Field = %q, want dietary", missing.Field)
	}

	// Supplying the custom value satisfies the form.
	_, err = svc.SubmitExpert(ctx, eventID, model.SubmitExpertRequest{
		Name:           "Jane Doe",
		AdditionalData: map[string]string{"dietary": "vegetarian"},
	})
	if err != nil {
		t.Errorf("SubmitExpert() with custom field error = %v", err)
	}
}

func TestService_SubmitCompanyThenApprove(t *testing.T) {
	fs := newFakeStore()
	eventID := fs.addEvent("Summit")
	svc := newTestService(fs)
	ctx := context.Background()

	sub, err := svc.SubmitCompany(ctx, eventID, model.SubmitCompanyRequest{
		Name:           "Tech Innovators",
		Founder:        "Alice Brown",
		AdditionalData: map[string]string{"employees": "50-100"},
	})
	if err != nil {
		t.Fatalf("SubmitCompany() error = %v", err)
	}

	company, err := svc.ApproveCompanySubmission(ctx, sub.SubmissionID)
	if err != nil {
		t.Fatalf("ApproveCompanySubmission() error = %v", err)
	}
	if company.Extra["employees"] != "50-100" {
		t.Errorf("Extra = %v, want employees copied over", company.Extra)
	}

	pending, _ := svc.ListCompanySubmissions(ctx, eventID, model.StatusPending)
	if len(pending) != 0 {
		t.Errorf("pending submissions = %d, want 0", len(pending))
	}
	approved, _ := svc.ListCompanySubmissions(ctx, eventID, model.StatusApproved)
	if len(approved) != 1 {
		t.Errorf("approved submissions = %d, want 1", len(approved))
	}
}

func TestService_FormFieldsFallBackToDefaults(t *testing.T) {
	fs := newFakeStore()
	eventID := fs.addEvent("Summit")
	svc := newTestService(fs)
	ctx := context.Background()

	fields, err := svc.FormFields(ctx, eventID, model.EntityCompany)
	if err != nil {
		t.Fatalf("FormFields() error = %v", err)
	}
	if len(fields) != 4 || fields[0].FieldName != "startup_name" {
		t.Errorf("default company fields = %+v", fields)
	}

	saved, err := svc.SaveFormFields(ctx, eventID, model.EntityCompany, model.SaveFormConfigRequest{
		Fields: []model.FormFieldRequest{
			{FieldName: "startup_name", FieldLabel: "Startup", FieldType: "text", IsRequired: true},
		},
	})
	if err != nil {
		t.Fatalf("SaveFormFields() error = %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("saved fields = %d, want 1", len(saved))
	}

	fields, err = svc.FormFields(ctx, eventID, model.EntityCompany)
	if err != nil {
		t.Fatalf("FormFields() error = %v", err)
	}
	if len(fields) != 1 || fields[0].FieldLabel != "Startup" {
		t.Errorf("configured fields = %+v, want the saved config", fields)
	}
}
