package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `event_id, event_name, header_image_url, background_image_url,
	footer_image_url, header_height, status, created_at`

// CreateEvent inserts a new event with a generated ID.
func (s *Store) CreateEvent(ctx context.Context, req model.CreateEventRequest) (model.Event, error) {
	ev := model.Event{
		EventID:            uuid.New().String(),
		EventName:          req.EventName,
		HeaderImageURL:     req.HeaderImageURL,
		BackgroundImageURL: req.BackgroundImageURL,
		FooterImageURL:     req.FooterImageURL,
		HeaderHeight:       req.HeaderHeight,
		Status:             "active",
		CreatedAt:          time.Now().UTC(),
	}
	if ev.HeaderHeight == "" {
		ev.HeaderHeight = "16rem"
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO events (event_id, event_name, header_image_url, background_image_url,
			footer_image_url, header_height, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ev.EventID, ev.EventName, ev.HeaderImageURL, ev.BackgroundImageURL,
		ev.FooterImageURL, ev.HeaderHeight, ev.Status, ev.CreatedAt,
	)
	if err != nil {
		return model.Event{}, fmt.Errorf("insert event: %w", err)
	}
	return ev, nil
}

// ListEvents returns all events, newest first.
func (s *Store) ListEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// GetEvent returns a single event or ErrNotFound.
func (s *Store) GetEvent(ctx context.Context, eventID string) (model.Event, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE event_id = $1`, eventID)
	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Event{}, ErrNotFound
		}
		return model.Event{}, err
	}
	return ev, nil
}

// UpdateEvent applies the non-nil fields of req to an event and returns
// the updated row.
func (s *Store) UpdateEvent(ctx context.Context, eventID string, req model.UpdateEventRequest) (model.Event, error) {
	ev, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return model.Event{}, err
	}

	if req.EventName != nil {
		ev.EventName = *req.EventName
	}
	if req.HeaderImageURL != nil {
		ev.HeaderImageURL = *req.HeaderImageURL
	}
	if req.BackgroundImageURL != nil {
		ev.BackgroundImageURL = *req.BackgroundImageURL
	}
	if req.FooterImageURL != nil {
		ev.FooterImageURL = *req.FooterImageURL
	}
	if req.HeaderHeight != nil {
		ev.HeaderHeight = *req.HeaderHeight
	}
	if req.Status != nil {
		ev.Status = *req.Status
	}

	_, err = s.db.Exec(ctx,
		`UPDATE events SET event_name = $2, header_image_url = $3, background_image_url = $4,
			footer_image_url = $5, header_height = $6, status = $7
		 WHERE event_id = $1`,
		ev.EventID, ev.EventName, ev.HeaderImageURL, ev.BackgroundImageURL,
		ev.FooterImageURL, ev.HeaderHeight, ev.Status,
	)
	if err != nil {
		return model.Event{}, fmt.Errorf("update event: %w", err)
	}
	return ev, nil
}

// DeleteEvent removes the event row itself. Dependent days and slots are
// removed beforehand by the cascade logic in internal/core.
func (s *Store) DeleteEvent(ctx context.Context, eventID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM events WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func scanEvent(row pgx.Row) (model.Event, error) {
	var ev model.Event
	err := row.Scan(&ev.EventID, &ev.EventName, &ev.HeaderImageURL, &ev.BackgroundImageURL,
		&ev.FooterImageURL, &ev.HeaderHeight, &ev.Status, &ev.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Event{}, err
		}
		return model.Event{}, fmt.Errorf("scan event: %w", err)
	}
	return ev, nil
}
