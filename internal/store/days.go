package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListDays returns all days of an event ordered by day_number.
func (s *Store) ListDays(ctx context.Context, eventID string) ([]model.Day, error) {
	rows, err := s.db.Query(ctx,
		`SELECT day_id, event_id, day_number, day_name, day_date
		 FROM event_days
		 WHERE event_id = $1
		 ORDER BY day_number ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	defer rows.Close()

	var days []model.Day
	for rows.Next() {
		var d model.Day
		if err := rows.Scan(&d.DayID, &d.EventID, &d.DayNumber, &d.DayName, &d.DayDate); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// GetDay returns a single day or ErrNotFound.
func (s *Store) GetDay(ctx context.Context, dayID string) (model.Day, error) {
	var d model.Day
	err := s.db.QueryRow(ctx,
		`SELECT day_id, event_id, day_number, day_name, day_date
		 FROM event_days WHERE day_id = $1`,
		dayID,
	).Scan(&d.DayID, &d.EventID, &d.DayNumber, &d.DayName, &d.DayDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Day{}, ErrNotFound
		}
		return model.Day{}, fmt.Errorf("get day: %w", err)
	}
	return d, nil
}

// InsertDay stores a new day. The caller supplies day_number; a zero
// DayID is replaced with a generated one.
func (s *Store) InsertDay(ctx context.Context, d model.Day) (model.Day, error) {
	if d.DayID == "" {
		d.DayID = uuid.New().String()
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO event_days (day_id, event_id, day_number, day_name, day_date)
		 VALUES ($1, $2, $3, $4, $5)`,
		d.DayID, d.EventID, d.DayNumber, d.DayName, d.DayDate,
	)
	if err != nil {
		return model.Day{}, fmt.Errorf("insert day: %w", err)
	}
	return d, nil
}

// UpdateDay applies the non-nil fields of req to a day and returns the
// updated row.
func (s *Store) UpdateDay(ctx context.Context, dayID string, req model.UpdateDayRequest) (model.Day, error) {
	d, err := s.GetDay(ctx, dayID)
	if err != nil {
		return model.Day{}, err
	}

	if req.DayName != nil {
		d.DayName = *req.DayName
	}
	if req.DayDate != nil {
		d.DayDate = *req.DayDate
	}

	_, err = s.db.Exec(ctx,
		`UPDATE event_days SET day_name = $2, day_date = $3 WHERE day_id = $1`,
		d.DayID, d.DayName, d.DayDate,
	)
	if err != nil {
		return model.Day{}, fmt.Errorf("update day: %w", err)
	}
	return d, nil
}

// UpdateDayDate changes only the calendar date of a day. Used by the
// reconciler when a sheet row matches an existing day by name.
func (s *Store) UpdateDayDate(ctx context.Context, dayID, dayDate string) error {
	if _, err := s.db.Exec(ctx,
		`UPDATE event_days SET day_date = $2 WHERE day_id = $1`,
		dayID, dayDate,
	); err != nil {
		return fmt.Errorf("update day date: %w", err)
	}
	return nil
}

// DeleteDay removes a single day row. Slots owned by the day must be
// removed first; see internal/core cascade deletion.
func (s *Store) DeleteDay(ctx context.Context, dayID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM event_days WHERE day_id = $1`, dayID); err != nil {
		return fmt.Errorf("delete day: %w", err)
	}
	return nil
}
