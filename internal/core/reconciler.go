// Package core implements the business logic of the event service: the
// agenda reconciliation engine, cascade deletion, submission review, and
// the service facade the HTTP layer talks to. It has no UI dependencies
// and talks to persistence through narrow interfaces so tests can run
// against an in-memory store.
package core

import (
	"context"
	"fmt"

	"github.com/eventdesk/agendahub/internal/logging"
	"github.com/eventdesk/agendahub/internal/model"
)

// AgendaStore is the persistence surface the reconciler needs. List
// calls are scoped by owner key and return full result sets; event-scale
// data is small enough that pagination is not worth its complexity here.
type AgendaStore interface {
	ListDays(ctx context.Context, eventID string) ([]model.Day, error)
	InsertDay(ctx context.Context, d model.Day) (model.Day, error)
	UpdateDayDate(ctx context.Context, dayID, dayDate string) error

	ListSlotsByDays(ctx context.Context, dayIDs []string) ([]model.Slot, error)
	InsertSlot(ctx context.Context, s model.Slot) (model.Slot, error)
	UpdateSlotDetails(ctx context.Context, slotID, startTime, endTime, presenterName string, showPresenter bool) error

	ListExperts(ctx context.Context, eventID string) ([]model.Expert, error)
	InsertExpert(ctx context.Context, e model.Expert) (model.Expert, error)
	UpdateExpertProfile(ctx context.Context, expertID, title, bio, linkedinURL string) error

	ListCompanies(ctx context.Context, eventID string) ([]model.Company, error)
	InsertCompany(ctx context.Context, c model.Company) (model.Company, error)
	UpdateCompanyProfile(ctx context.Context, companyID, founder, location, industry string) error
}

// Reconciler differentially merges parsed workbook data into the store
// for one event: match by natural key, update changed fields, insert
// missing records, and leave everything else untouched. It never
// deletes; rows absent from the sheet survive, and renaming a day or
// slot title in the sheet produces a new record alongside the stale one.
//
// The four stages run strictly in order (days, slots, experts,
// companies) because slot resolution depends on the day IDs resolved in
// stage one. Rows are processed in sheet order with no batching.
//
// Known limitations, kept deliberately:
//   - No transaction spans the run. A store failure aborts the
//     remaining work but already-committed changes stay; re-running the
//     import converges because the merge is idempotent.
//   - Two concurrent runs for the same event can double-insert, since
//     both may read "no existing match" before either writes. Usage is
//     single-organizer; the import limiter caps global concurrency but
//     does not serialize per event.
type Reconciler struct {
	store AgendaStore
}

// NewReconciler returns a Reconciler backed by the given store.
func NewReconciler(store AgendaStore) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile merges data into the event's agenda and directories and
// reports per-entity change counts.
func (r *Reconciler) Reconcile(ctx context.Context, eventID string, data *model.AgendaData) (*model.ReconciliationReport, error) {
	log := logging.WithFields(ctx, "event_id", eventID)
	log.Info("reconciliation started",
		"days", len(data.Days),
		"slots", len(data.Slots),
		"experts", len(data.Experts),
		"companies", len(data.Companies),
	)

	report := &model.ReconciliationReport{}

	dayIDByName, err := r.syncDays(ctx, eventID, data.Days, &report.Days)
	if err != nil {
		return nil, err
	}
	if err := r.syncSlots(ctx, dayIDByName, data.Slots, &report.Slots); err != nil {
		return nil, err
	}
	if err := r.syncExperts(ctx, eventID, data.Experts, &report.Experts); err != nil {
		return nil, err
	}
	if err := r.syncCompanies(ctx, eventID, data.Companies, &report.Companies); err != nil {
		return nil, err
	}

	log.Info("reconciliation finished",
		"days_added", report.Days.Added,
		"slots_added", report.Slots.Added,
		"experts_added", report.Experts.Added,
		"companies_added", report.Companies.Added,
	)
	return report, nil
}

// syncDays matches sheet days against existing days by exact day_name.
// New days are appended after all originally existing days, numbered in
// sheet order. Returns the day_name -> day_id map for slot resolution,
// covering only the days the sheet itself declared.
func (r *Reconciler) syncDays(ctx context.Context, eventID string, rows []model.DayRow, changes *model.EntityChanges) (map[string]string, error) {
	existing, err := r.store.ListDays(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load days: %w", err)
	}

	existingByName := make(map[string]model.Day, len(existing))
	for _, d := range existing {
		existingByName[d.DayName] = d
	}

	dayIDByName := make(map[string]string, len(rows))
	for _, row := range rows {
		if match, ok := existingByName[row.DayName]; ok {
			if match.DayDate != row.DayDate {
				if err := r.store.UpdateDayDate(ctx, match.DayID, row.DayDate); err != nil {
					return nil, fmt.Errorf("update day %q: %w", row.DayName, err)
				}
				changes.Updated++
			} else {
				changes.Skipped++
			}
			dayIDByName[row.DayName] = match.DayID
			continue
		}

		day, err := r.store.InsertDay(ctx, model.Day{
			EventID:   eventID,
			DayNumber: len(existing) + changes.Added + 1,
			DayName:   row.DayName,
			DayDate:   row.DayDate,
		})
		if err != nil {
			return nil, fmt.Errorf("insert day %q: %w", row.DayName, err)
		}
		dayIDByName[row.DayName] = day.DayID
		changes.Added++
	}

	return dayIDByName, nil
}

// syncSlots matches sheet slots against existing slots by (day_id,
// slot_title). Only days the sheet declared participate: a row naming
// any other day, even one already in the store, is dropped silently and
// appears in no count.
func (r *Reconciler) syncSlots(ctx context.Context, dayIDByName map[string]string, rows []model.SlotRow, changes *model.EntityChanges) error {
	dayIDs := make([]string, 0, len(dayIDByName))
	for _, id := range dayIDByName {
		dayIDs = append(dayIDs, id)
	}

	existing, err := r.store.ListSlotsByDays(ctx, dayIDs)
	if err != nil {
		return fmt.Errorf("load slots: %w", err)
	}

	type slotKey struct{ dayID, title string }
	existingByKey := make(map[slotKey]model.Slot, len(existing))
	existingCountByDay := make(map[string]int)
	for _, s := range existing {
		existingByKey[slotKey{s.DayID, s.SlotTitle}] = s
		existingCountByDay[s.DayID]++
	}

	addedByDay := make(map[string]int)
	for _, row := range rows {
		dayID, ok := dayIDByName[row.DayName]
		if !ok {
			continue
		}

		if match, ok := existingByKey[slotKey{dayID, row.SlotTitle}]; ok {
			changed := match.StartTime != row.StartTime ||
				match.EndTime != row.EndTime ||
				match.PresenterName != row.PresenterName ||
				match.ShowPresenter != row.ShowPresenter
			if changed {
				if err := r.store.UpdateSlotDetails(ctx, match.SlotID,
					row.StartTime, row.EndTime, row.PresenterName, row.ShowPresenter); err != nil {
					return fmt.Errorf("update slot %q: %w", row.SlotTitle, err)
				}
				changes.Updated++
			} else {
				changes.Skipped++
			}
			continue
		}

		if _, err := r.store.InsertSlot(ctx, model.Slot{
			DayID:         dayID,
			SlotTitle:     row.SlotTitle,
			StartTime:     row.StartTime,
			EndTime:       row.EndTime,
			PresenterName: row.PresenterName,
			ShowPresenter: row.ShowPresenter,
			SortOrder:     existingCountByDay[dayID] + addedByDay[dayID] + 1,
		}); err != nil {
			return fmt.Errorf("insert slot %q: %w", row.SlotTitle, err)
		}
		addedByDay[dayID]++
		changes.Added++
	}

	return nil
}

// syncExperts matches sheet experts against existing experts by exact
// name. Title, bio, and LinkedIn URL are compared as a group and updated
// together when any differs.
func (r *Reconciler) syncExperts(ctx context.Context, eventID string, rows []model.ExpertRow, changes *model.EntityChanges) error {
	existing, err := r.store.ListExperts(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load experts: %w", err)
	}

	existingByName := make(map[string]model.Expert, len(existing))
	for _, e := range existing {
		existingByName[e.Name] = e
	}

	for _, row := range rows {
		if match, ok := existingByName[row.Name]; ok {
			changed := match.Title != row.Title ||
				match.Bio != row.Bio ||
				match.LinkedInURL != row.LinkedInURL
			if changed {
				if err := r.store.UpdateExpertProfile(ctx, match.ExpertID,
					row.Title, row.Bio, row.LinkedInURL); err != nil {
					return fmt.Errorf("update expert %q: %w", row.Name, err)
				}
				changes.Updated++
			} else {
				changes.Skipped++
			}
			continue
		}

		if _, err := r.store.InsertExpert(ctx, model.Expert{
			EventID:     eventID,
			Name:        row.Name,
			Title:       row.Title,
			Bio:         row.Bio,
			LinkedInURL: row.LinkedInURL,
		}); err != nil {
			return fmt.Errorf("insert expert %q: %w", row.Name, err)
		}
		changes.Added++
	}

	return nil
}

// syncCompanies matches sheet companies against existing companies by
// exact name. Founder, location, and industry are compared as a group.
func (r *Reconciler) syncCompanies(ctx context.Context, eventID string, rows []model.CompanyRow, changes *model.EntityChanges) error {
	existing, err := r.store.ListCompanies(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load companies: %w", err)
	}

	existingByName := make(map[string]model.Company, len(existing))
	for _, c := range existing {
		existingByName[c.Name] = c
	}

	for _, row := range rows {
		if match, ok := existingByName[row.Name]; ok {
			changed := match.Founder != row.Founder ||
				match.Location != row.Location ||
				match.Industry != row.Industry
			if changed {
				if err := r.store.UpdateCompanyProfile(ctx, match.CompanyID,
					row.Founder, row.Location, row.Industry); err != nil {
					return fmt.Errorf("update company %q: %w", row.Name, err)
				}
				changes.Updated++
			} else {
				changes.Skipped++
			}
			continue
		}

		if _, err := r.store.InsertCompany(ctx, model.Company{
			EventID:  eventID,
			Name:     row.Name,
			Founder:  row.Founder,
			Location: row.Location,
			Industry: row.Industry,
		}); err != nil {
			return fmt.Errorf("insert company %q: %w", row.Name, err)
		}
		changes.Added++
	}

	return nil
}
