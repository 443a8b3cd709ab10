package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const slotColumns = `slot_id, day_id, slot_title, start_time, end_time,
	presenter_name, show_presenter, sort_order`

// ListSlots returns all slots of one day ordered by sort_order. Ties are
// left to insertion order; sort_order is an advisory hint, not unique.
func (s *Store) ListSlots(ctx context.Context, dayID string) ([]model.Slot, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+slotColumns+` FROM agenda_slots WHERE day_id = $1 ORDER BY sort_order ASC`,
		dayID,
	)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return collectSlots(rows)
}

// ListSlotsByDays returns all slots whose day_id is in dayIDs, ordered
// by sort_order. Used by the reconciler and the full-agenda view.
func (s *Store) ListSlotsByDays(ctx context.Context, dayIDs []string) ([]model.Slot, error) {
	if len(dayIDs) == 0 {
		return nil, nil
	}
	rows, err := s.db.Query(ctx,
		`SELECT `+slotColumns+` FROM agenda_slots WHERE day_id = ANY($1) ORDER BY sort_order ASC`,
		dayIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list slots by days: %w", err)
	}
	return collectSlots(rows)
}

// GetSlot returns a single slot or ErrNotFound.
func (s *Store) GetSlot(ctx context.Context, slotID string) (model.Slot, error) {
	var sl model.Slot
	err := s.db.QueryRow(ctx,
		`SELECT `+slotColumns+` FROM agenda_slots WHERE slot_id = $1`, slotID,
	).Scan(&sl.SlotID, &sl.DayID, &sl.SlotTitle, &sl.StartTime, &sl.EndTime,
		&sl.PresenterName, &sl.ShowPresenter, &sl.SortOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Slot{}, ErrNotFound
		}
		return model.Slot{}, fmt.Errorf("get slot: %w", err)
	}
	return sl, nil
}

// InsertSlot stores a new slot. A zero SlotID is replaced with a
// generated one.
func (s *Store) InsertSlot(ctx context.Context, sl model.Slot) (model.Slot, error) {
	if sl.SlotID == "" {
		sl.SlotID = uuid.New().String()
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO agenda_slots (slot_id, day_id, slot_title, start_time, end_time,
			presenter_name, show_presenter, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		sl.SlotID, sl.DayID, sl.SlotTitle, sl.StartTime, sl.EndTime,
		sl.PresenterName, sl.ShowPresenter, sl.SortOrder,
	)
	if err != nil {
		return model.Slot{}, fmt.Errorf("insert slot: %w", err)
	}
	return sl, nil
}

// UpdateSlot applies the non-nil fields of req to a slot and returns the
// updated row.
func (s *Store) UpdateSlot(ctx context.Context, slotID string, req model.UpdateSlotRequest) (model.Slot, error) {
	sl, err := s.GetSlot(ctx, slotID)
	if err != nil {
		return model.Slot{}, err
	}

	if req.SlotTitle != nil {
		sl.SlotTitle = *req.SlotTitle
	}
	if req.StartTime != nil {
		sl.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		sl.EndTime = *req.EndTime
	}
	if req.PresenterName != nil {
		sl.PresenterName = *req.PresenterName
	}
	if req.ShowPresenter != nil {
		sl.ShowPresenter = *req.ShowPresenter
	}
	if req.SortOrder != nil {
		sl.SortOrder = *req.SortOrder
	}

	_, err = s.db.Exec(ctx,
		`UPDATE agenda_slots SET slot_title = $2, start_time = $3, end_time = $4,
			presenter_name = $5, show_presenter = $6, sort_order = $7
		 WHERE slot_id = $1`,
		sl.SlotID, sl.SlotTitle, sl.StartTime, sl.EndTime,
		sl.PresenterName, sl.ShowPresenter, sl.SortOrder,
	)
	if err != nil {
		return model.Slot{}, fmt.Errorf("update slot: %w", err)
	}
	return sl, nil
}

// UpdateSlotDetails updates the four sheet-controlled fields together.
// Used by the reconciler when any of them differs from the sheet row.
func (s *Store) UpdateSlotDetails(ctx context.Context, slotID, startTime, endTime, presenterName string, showPresenter bool) error {
	if _, err := s.db.Exec(ctx,
		`UPDATE agenda_slots SET start_time = $2, end_time = $3, presenter_name = $4, show_presenter = $5
		 WHERE slot_id = $1`,
		slotID, startTime, endTime, presenterName, showPresenter,
	); err != nil {
		return fmt.Errorf("update slot details: %w", err)
	}
	return nil
}

// DeleteSlot removes a single slot row.
func (s *Store) DeleteSlot(ctx context.Context, slotID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM agenda_slots WHERE slot_id = $1`, slotID); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

// DeleteSlotsByDay removes every slot owned by a day.
func (s *Store) DeleteSlotsByDay(ctx context.Context, dayID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM agenda_slots WHERE day_id = $1`, dayID); err != nil {
		return fmt.Errorf("delete slots by day: %w", err)
	}
	return nil
}

func collectSlots(rows pgx.Rows) ([]model.Slot, error) {
	defer rows.Close()

	var slots []model.Slot
	for rows.Next() {
		var sl model.Slot
		if err := rows.Scan(&sl.SlotID, &sl.DayID, &sl.SlotTitle, &sl.StartTime, &sl.EndTime,
			&sl.PresenterName, &sl.ShowPresenter, &sl.SortOrder); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, sl)
	}
	return slots, rows.Err()
}
