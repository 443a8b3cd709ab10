package store

import (
	"context"
	"fmt"
)

// schema.go bootstraps the tables on startup with CREATE TABLE IF NOT
// EXISTS. There is deliberately no FOREIGN KEY ... ON DELETE CASCADE:
// child rows are removed by the application's cascade deletion so the
// tables stay portable to hosted backends that restrict constraints.

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS events (
		event_id             UUID PRIMARY KEY,
		event_name           TEXT NOT NULL,
		header_image_url     TEXT NOT NULL DEFAULT '',
		background_image_url TEXT NOT NULL DEFAULT '',
		footer_image_url     TEXT NOT NULL DEFAULT '',
		header_height        TEXT NOT NULL DEFAULT '16rem',
		status               TEXT NOT NULL DEFAULT 'active',
		created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS event_days (
		day_id     UUID PRIMARY KEY,
		event_id   UUID NOT NULL,
		day_number INT  NOT NULL,
		day_name   TEXT NOT NULL,
		day_date   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_event_days_event_id ON event_days (event_id)`,

	`CREATE TABLE IF NOT EXISTS agenda_slots (
		slot_id        UUID PRIMARY KEY,
		day_id         UUID NOT NULL,
		slot_title     TEXT NOT NULL,
		start_time     TEXT NOT NULL DEFAULT '',
		end_time       TEXT NOT NULL DEFAULT '',
		presenter_name TEXT NOT NULL DEFAULT '',
		show_presenter BOOLEAN NOT NULL DEFAULT TRUE,
		sort_order     INT NOT NULL DEFAULT 999
	)`,
	`CREATE INDEX IF NOT EXISTS idx_agenda_slots_day_id ON agenda_slots (day_id)`,

	`CREATE TABLE IF NOT EXISTS experts (
		expert_id    UUID PRIMARY KEY,
		event_id     UUID NOT NULL,
		name         TEXT NOT NULL,
		title        TEXT NOT NULL DEFAULT '',
		company      TEXT NOT NULL DEFAULT '',
		bio          TEXT NOT NULL DEFAULT '',
		linkedin_url TEXT NOT NULL DEFAULT '',
		photo_url    TEXT NOT NULL DEFAULT '',
		extra        JSONB NOT NULL DEFAULT '{}',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_experts_event_id ON experts (event_id)`,

	`CREATE TABLE IF NOT EXISTS companies (
		company_id UUID PRIMARY KEY,
		event_id   UUID NOT NULL,
		name       TEXT NOT NULL,
		founder    TEXT NOT NULL DEFAULT '',
		location   TEXT NOT NULL DEFAULT '',
		industry   TEXT NOT NULL DEFAULT '',
		logo_url   TEXT NOT NULL DEFAULT '',
		extra      JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_event_id ON companies (event_id)`,

	`CREATE TABLE IF NOT EXISTS expert_submissions (
		submission_id    UUID PRIMARY KEY,
		event_id         UUID NOT NULL,
		name             TEXT NOT NULL,
		title            TEXT NOT NULL DEFAULT '',
		company          TEXT NOT NULL DEFAULT '',
		bio              TEXT NOT NULL DEFAULT '',
		linkedin_url     TEXT NOT NULL DEFAULT '',
		photo_url        TEXT NOT NULL DEFAULT '',
		additional_data  JSONB NOT NULL DEFAULT '{}',
		status           TEXT NOT NULL DEFAULT 'pending',
		rejection_reason TEXT NOT NULL DEFAULT '',
		submitted_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		reviewed_at      TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expert_submissions_event_id ON expert_submissions (event_id)`,

	`CREATE TABLE IF NOT EXISTS company_submissions (
		submission_id    UUID PRIMARY KEY,
		event_id         UUID NOT NULL,
		name             TEXT NOT NULL,
		founder          TEXT NOT NULL DEFAULT '',
		location         TEXT NOT NULL DEFAULT '',
		industry         TEXT NOT NULL DEFAULT '',
		logo_url         TEXT NOT NULL DEFAULT '',
		additional_data  JSONB NOT NULL DEFAULT '{}',
		status           TEXT NOT NULL DEFAULT 'pending',
		rejection_reason TEXT NOT NULL DEFAULT '',
		submitted_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		reviewed_at      TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_company_submissions_event_id ON company_submissions (event_id)`,

	`CREATE TABLE IF NOT EXISTS form_field_configs (
		field_id         UUID PRIMARY KEY,
		event_id         UUID NOT NULL,
		entity_type      TEXT NOT NULL,
		field_name       TEXT NOT NULL,
		field_label      TEXT NOT NULL,
		field_type       TEXT NOT NULL,
		is_required      BOOLEAN NOT NULL DEFAULT FALSE,
		display_order    INT NOT NULL DEFAULT 0,
		placeholder      TEXT NOT NULL DEFAULT '',
		help_text        TEXT NOT NULL DEFAULT '',
		show_in_card     BOOLEAN NOT NULL DEFAULT TRUE,
		field_options    JSONB NOT NULL DEFAULT '[]',
		validation_rules JSONB NOT NULL DEFAULT '{}'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_form_field_configs_scope ON form_field_configs (event_id, entity_type)`,
}

// EnsureSchema creates any missing tables and indexes.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
