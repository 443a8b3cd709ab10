package store

import (
	"context"
	"fmt"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/google/uuid"
)

// ListFormFields returns the field configuration for one (event, entity
// type) pair ordered by display_order. An empty result means the caller
// should fall back to the built-in default form.
func (s *Store) ListFormFields(ctx context.Context, eventID string, entityType model.EntityType) ([]model.FormField, error) {
	rows, err := s.db.Query(ctx,
		`SELECT field_id, event_id, entity_type, field_name, field_label, field_type,
			is_required, display_order, placeholder, help_text, show_in_card,
			field_options, validation_rules
		 FROM form_field_configs
		 WHERE event_id = $1 AND entity_type = $2
		 ORDER BY display_order ASC`,
		eventID, entityType,
	)
	if err != nil {
		return nil, fmt.Errorf("list form fields: %w", err)
	}
	defer rows.Close()

	var fields []model.FormField
	for rows.Next() {
		var f model.FormField
		if err := rows.Scan(&f.FieldID, &f.EventID, &f.EntityType, &f.FieldName, &f.FieldLabel,
			&f.FieldType, &f.IsRequired, &f.DisplayOrder, &f.Placeholder, &f.HelpText,
			&f.ShowInCard, &f.FieldOptions, &f.ValidationRules); err != nil {
			return nil, fmt.Errorf("scan form field: %w", err)
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

// ReplaceFormFields swaps the stored configuration for one (event,
// entity type) pair: delete the old rows, insert the new ones.
func (s *Store) ReplaceFormFields(ctx context.Context, eventID string, entityType model.EntityType, fields []model.FormField) ([]model.FormField, error) {
	if _, err := s.db.Exec(ctx,
		`DELETE FROM form_field_configs WHERE event_id = $1 AND entity_type = $2`,
		eventID, entityType,
	); err != nil {
		return nil, fmt.Errorf("delete form fields: %w", err)
	}

	saved := make([]model.FormField, 0, len(fields))
	for _, f := range fields {
		f.FieldID = uuid.New().String()
		f.EventID = eventID
		f.EntityType = entityType
		if f.FieldOptions == nil {
			f.FieldOptions = []string{}
		}
		if f.ValidationRules == nil {
			f.ValidationRules = map[string]any{}
		}

		if _, err := s.db.Exec(ctx,
			`INSERT INTO form_field_configs (field_id, event_id, entity_type, field_name,
				field_label, field_type, is_required, display_order, placeholder,
				help_text, show_in_card, field_options, validation_rules)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			f.FieldID, f.EventID, f.EntityType, f.FieldName, f.FieldLabel, f.FieldType,
			f.IsRequired, f.DisplayOrder, f.Placeholder, f.HelpText, f.ShowInCard,
			f.FieldOptions, f.ValidationRules,
		); err != nil {
			return nil, fmt.Errorf("insert form field %q: %w", f.FieldName, err)
		}
		saved = append(saved, f)
	}
	return saved, nil
}
