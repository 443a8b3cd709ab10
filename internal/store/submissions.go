package store

// submissions.go persists the pending registration queues for both
// portals. Submissions are never deleted: review only flips their status
// to approved or rejected and stamps reviewed_at.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const expertSubmissionColumns = `submission_id, event_id, name, title, company, bio,
	linkedin_url, photo_url, additional_data, status, rejection_reason, submitted_at, reviewed_at`

// InsertExpertSubmission stores a new pending expert registration.
func (s *Store) InsertExpertSubmission(ctx context.Context, sub model.ExpertSubmission) (model.ExpertSubmission, error) {
	sub.SubmissionID = uuid.New().String()
	sub.Status = model.StatusPending
	sub.SubmittedAt = time.Now().UTC()
	sub.ReviewedAt = nil
	if sub.AdditionalData == nil {
		sub.AdditionalData = map[string]string{}
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO expert_submissions (submission_id, event_id, name, title, company, bio,
			linkedin_url, photo_url, additional_data, status, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		sub.SubmissionID, sub.EventID, sub.Name, sub.Title, sub.Company, sub.Bio,
		sub.LinkedInURL, sub.PhotoURL, sub.AdditionalData, sub.Status, sub.SubmittedAt,
	)
	if err != nil {
		return model.ExpertSubmission{}, fmt.Errorf("insert expert submission: %w", err)
	}
	return sub, nil
}

// GetExpertSubmission returns a single expert submission or ErrNotFound.
func (s *Store) GetExpertSubmission(ctx context.Context, submissionID string) (model.ExpertSubmission, error) {
	var sub model.ExpertSubmission
	err := s.db.QueryRow(ctx,
		`SELECT `+expertSubmissionColumns+` FROM expert_submissions WHERE submission_id = $1`,
		submissionID,
	).Scan(&sub.SubmissionID, &sub.EventID, &sub.Name, &sub.Title, &sub.Company, &sub.Bio,
		&sub.LinkedInURL, &sub.PhotoURL, &sub.AdditionalData, &sub.Status,
		&sub.RejectionReason, &sub.SubmittedAt, &sub.ReviewedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ExpertSubmission{}, ErrNotFound
		}
		return model.ExpertSubmission{}, fmt.Errorf("get expert submission: %w", err)
	}
	return sub, nil
}

// ListExpertSubmissions returns an event's expert submissions, newest
// first, optionally filtered by status ("" means all).
func (s *Store) ListExpertSubmissions(ctx context.Context, eventID string, status model.SubmissionStatus) ([]model.ExpertSubmission, error) {
	query := `SELECT ` + expertSubmissionColumns + ` FROM expert_submissions WHERE event_id = $1`
	args := []any{eventID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY submitted_at DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expert submissions: %w", err)
	}
	defer rows.Close()

	var subs []model.ExpertSubmission
	for rows.Next() {
		var sub model.ExpertSubmission
		if err := rows.Scan(&sub.SubmissionID, &sub.EventID, &sub.Name, &sub.Title, &sub.Company,
			&sub.Bio, &sub.LinkedInURL, &sub.PhotoURL, &sub.AdditionalData, &sub.Status,
			&sub.RejectionReason, &sub.SubmittedAt, &sub.ReviewedAt); err != nil {
			return nil, fmt.Errorf("scan expert submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// MarkExpertSubmissionReviewed sets the terminal status, review
// timestamp, and (for rejections) the reason.
func (s *Store) MarkExpertSubmissionReviewed(ctx context.Context, submissionID string, status model.SubmissionStatus, reason string, reviewedAt time.Time) error {
	if _, err := s.db.Exec(ctx,
		`UPDATE expert_submissions SET status = $2, rejection_reason = $3, reviewed_at = $4
		 WHERE submission_id = $1`,
		submissionID, status, reason, reviewedAt,
	); err != nil {
		return fmt.Errorf("mark expert submission reviewed: %w", err)
	}
	return nil
}

const companySubmissionColumns = `submission_id, event_id, name, founder, location, industry,
	logo_url, additional_data, status, rejection_reason, submitted_at, reviewed_at`

// InsertCompanySubmission stores a new pending company registration.
func (s *Store) InsertCompanySubmission(ctx context.Context, sub model.CompanySubmission) (model.CompanySubmission, error) {
	sub.SubmissionID = uuid.New().String()
	sub.Status = model.StatusPending
	sub.SubmittedAt = time.Now().UTC()
	sub.ReviewedAt = nil
	if sub.AdditionalData == nil {
		sub.AdditionalData = map[string]string{}
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO company_submissions (submission_id, event_id, name, founder, location,
			industry, logo_url, additional_data, status, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		sub.SubmissionID, sub.EventID, sub.Name, sub.Founder, sub.Location,
		sub.Industry, sub.LogoURL, sub.AdditionalData, sub.Status, sub.SubmittedAt,
	)
	if err != nil {
		return model.CompanySubmission{}, fmt.Errorf("insert company submission: %w", err)
	}
	return sub, nil
}

// GetCompanySubmission returns a single company submission or ErrNotFound.
func (s *Store) GetCompanySubmission(ctx context.Context, submissionID string) (model.CompanySubmission, error) {
	var sub model.CompanySubmission
	err := s.db.QueryRow(ctx,
		`SELECT `+companySubmissionColumns+` FROM company_submissions WHERE submission_id = $1`,
		submissionID,
	).Scan(&sub.SubmissionID, &sub.EventID, &sub.Name, &sub.Founder, &sub.Location,
		&sub.Industry, &sub.LogoURL, &sub.AdditionalData, &sub.Status,
		&sub.RejectionReason, &sub.SubmittedAt, &sub.ReviewedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CompanySubmission{}, ErrNotFound
		}
		return model.CompanySubmission{}, fmt.Errorf("get company submission: %w", err)
	}
	return sub, nil
}

// ListCompanySubmissions returns an event's company submissions, newest
// first, optionally filtered by status ("" means all).
func (s *Store) ListCompanySubmissions(ctx context.Context, eventID string, status model.SubmissionStatus) ([]model.CompanySubmission, error) {
	query := `SELECT ` + companySubmissionColumns + ` FROM company_submissions WHERE event_id = $1`
	args := []any{eventID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY submitted_at DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list company submissions: %w", err)
	}
	defer rows.Close()

	var subs []model.CompanySubmission
	for rows.Next() {
		var sub model.CompanySubmission
		if err := rows.Scan(&sub.SubmissionID, &sub.EventID, &sub.Name, &sub.Founder,
			&sub.Location, &sub.Industry, &sub.LogoURL, &sub.AdditionalData, &sub.Status,
			&sub.RejectionReason, &sub.SubmittedAt, &sub.ReviewedAt); err != nil {
			return nil, fmt.Errorf("scan company submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// MarkCompanySubmissionReviewed sets the terminal status, review
// timestamp, and (for rejections) the reason.
func (s *Store) MarkCompanySubmissionReviewed(ctx context.Context, submissionID string, status model.SubmissionStatus, reason string, reviewedAt time.Time) error {
	if _, err := s.db.Exec(ctx,
		`UPDATE company_submissions SET status = $2, rejection_reason = $3, reviewed_at = $4
		 WHERE submission_id = $1`,
		submissionID, status, reason, reviewedAt,
	); err != nil {
		return fmt.Errorf("mark company submission reviewed: %w", err)
	}
	return nil
}
