// Package store implements PostgreSQL persistence for events, agenda
// days and slots, directory entries, registration submissions, and form
// field configurations.
//
// Queries use pgx directly, no ORM. Every list query is scoped by its
// owner key (event_id, or day_id for slots). The schema carries no
// foreign keys: referential cleanliness is maintained by the cascade
// deletion logic in internal/core, not by the database.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdesk/agendahub/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// DBTX is the subset of pgx operations the store needs. Satisfied by
// both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store provides access to all tables through one configured pool.
type Store struct {
	db DBTX
}

// New returns a Store backed by the given connection.
func New(db DBTX) *Store {
	return &Store{db: db}
}

// NewPool creates a pgx connection pool from configuration and verifies
// connectivity with a ping.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return pool, nil
}
