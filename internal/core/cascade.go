package core

import (
	"context"
	"fmt"

	"github.com/eventdesk/agendahub/internal/logging"
	"github.com/eventdesk/agendahub/internal/model"
)

// CascadeStore is the persistence surface cascade deletion needs.
type CascadeStore interface {
	GetEvent(ctx context.Context, eventID string) (model.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	ListDays(ctx context.Context, eventID string) ([]model.Day, error)
	GetDay(ctx context.Context, dayID string) (model.Day, error)
	DeleteDay(ctx context.Context, dayID string) error
	DeleteSlotsByDay(ctx context.Context, dayID string) error
}

// Cascader removes an event or a day together with everything hanging
// off it. The schema carries no foreign keys, so the application walks
// children before parents: slots, then days, then the event row itself.
// Each step commits independently; a failure mid-cascade leaves the
// already-deleted children gone, and re-running the delete finishes the
// job.
type Cascader struct {
	store CascadeStore
}

// NewCascader returns a Cascader backed by the given store.
func NewCascader(store CascadeStore) *Cascader {
	return &Cascader{store: store}
}

// DeleteEvent removes the event, all its days, and every slot under
// those days. Returns store.ErrNotFound when the event does not exist.
func (c *Cascader) DeleteEvent(ctx context.Context, eventID string) error {
	if _, err := c.store.GetEvent(ctx, eventID); err != nil {
		return err
	}

	days, err := c.store.ListDays(ctx, eventID)
	if err != nil {
		return fmt.Errorf("list days: %w", err)
	}

	for _, day := range days {
		if err := c.store.DeleteSlotsByDay(ctx, day.DayID); err != nil {
			return fmt.Errorf("delete slots of day %s: %w", day.DayID, err)
		}
		if err := c.store.DeleteDay(ctx, day.DayID); err != nil {
			return fmt.Errorf("delete day %s: %w", day.DayID, err)
		}
	}

	if err := c.store.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	logging.FromContext(ctx).Info("event deleted",
		"event_id", eventID, "days_removed", len(days))
	return nil
}

// DeleteDay removes the day and its slots. Returns store.ErrNotFound
// when the day does not exist.
func (c *Cascader) DeleteDay(ctx context.Context, dayID string) error {
	if _, err := c.store.GetDay(ctx, dayID); err != nil {
		return err
	}

	if err := c.store.DeleteSlotsByDay(ctx, dayID); err != nil {
		return fmt.Errorf("delete slots: %w", err)
	}
	if err := c.store.DeleteDay(ctx, dayID); err != nil {
		return fmt.Errorf("delete day: %w", err)
	}
	return nil
}
