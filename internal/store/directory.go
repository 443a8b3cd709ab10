package store

// directory.go persists the expert and company directories. Both tables
// carry an open-ended JSONB "extra" column that holds values promoted
// from custom form fields when a submission is approved.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const expertColumns = `expert_id, event_id, name, title, company, bio,
	linkedin_url, photo_url, extra, created_at`

// ListExperts returns all experts of an event.
func (s *Store) ListExperts(ctx context.Context, eventID string) ([]model.Expert, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+expertColumns+` FROM experts WHERE event_id = $1 ORDER BY created_at ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list experts: %w", err)
	}
	defer rows.Close()

	var experts []model.Expert
	for rows.Next() {
		var e model.Expert
		if err := rows.Scan(&e.ExpertID, &e.EventID, &e.Name, &e.Title, &e.Company,
			&e.Bio, &e.LinkedInURL, &e.PhotoURL, &e.Extra, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expert: %w", err)
		}
		experts = append(experts, e)
	}
	return experts, rows.Err()
}

// GetExpert returns a single expert or ErrNotFound.
func (s *Store) GetExpert(ctx context.Context, expertID string) (model.Expert, error) {
	var e model.Expert
	err := s.db.QueryRow(ctx,
		`SELECT `+expertColumns+` FROM experts WHERE expert_id = $1`, expertID,
	).Scan(&e.ExpertID, &e.EventID, &e.Name, &e.Title, &e.Company,
		&e.Bio, &e.LinkedInURL, &e.PhotoURL, &e.Extra, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Expert{}, ErrNotFound
		}
		return model.Expert{}, fmt.Errorf("get expert: %w", err)
	}
	return e, nil
}

// InsertExpert stores a new expert. Zero ID and timestamp are filled in.
func (s *Store) InsertExpert(ctx context.Context, e model.Expert) (model.Expert, error) {
	if e.ExpertID == "" {
		e.ExpertID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Extra == nil {
		e.Extra = map[string]string{}
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO experts (expert_id, event_id, name, title, company, bio,
			linkedin_url, photo_url, extra, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ExpertID, e.EventID, e.Name, e.Title, e.Company, e.Bio,
		e.LinkedInURL, e.PhotoURL, e.Extra, e.CreatedAt,
	)
	if err != nil {
		return model.Expert{}, fmt.Errorf("insert expert: %w", err)
	}
	return e, nil
}

// UpdateExpert replaces the editable fields of an expert and returns the
// updated row.
func (s *Store) UpdateExpert(ctx context.Context, expertID string, req model.ExpertRequest) (model.Expert, error) {
	e, err := s.GetExpert(ctx, expertID)
	if err != nil {
		return model.Expert{}, err
	}

	e.Name = req.Name
	e.Title = req.Title
	e.Company = req.Company
	e.Bio = req.Bio
	e.LinkedInURL = req.LinkedInURL
	e.PhotoURL = req.PhotoURL

	_, err = s.db.Exec(ctx,
		`UPDATE experts SET name = $2, title = $3, company = $4, bio = $5,
			linkedin_url = $6, photo_url = $7
		 WHERE expert_id = $1`,
		e.ExpertID, e.Name, e.Title, e.Company, e.Bio, e.LinkedInURL, e.PhotoURL,
	)
	if err != nil {
		return model.Expert{}, fmt.Errorf("update expert: %w", err)
	}
	return e, nil
}

// UpdateExpertProfile updates the sheet-controlled fields together. Used
// by the reconciler when any of them differs from the sheet row.
func (s *Store) UpdateExpertProfile(ctx context.Context, expertID, title, bio, linkedinURL string) error {
	if _, err := s.db.Exec(ctx,
		`UPDATE experts SET title = $2, bio = $3, linkedin_url = $4 WHERE expert_id = $1`,
		expertID, title, bio, linkedinURL,
	); err != nil {
		return fmt.Errorf("update expert profile: %w", err)
	}
	return nil
}

// DeleteExpert removes a single expert row.
func (s *Store) DeleteExpert(ctx context.Context, expertID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM experts WHERE expert_id = $1`, expertID); err != nil {
		return fmt.Errorf("delete expert: %w", err)
	}
	return nil
}

const companyColumns = `company_id, event_id, name, founder, location,
	industry, logo_url, extra, created_at`

// ListCompanies returns all companies of an event.
func (s *Store) ListCompanies(ctx context.Context, eventID string) ([]model.Company, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE event_id = $1 ORDER BY created_at ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		var c model.Company
		if err := rows.Scan(&c.CompanyID, &c.EventID, &c.Name, &c.Founder, &c.Location,
			&c.Industry, &c.LogoURL, &c.Extra, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// GetCompany returns a single company or ErrNotFound.
func (s *Store) GetCompany(ctx context.Context, companyID string) (model.Company, error) {
	var c model.Company
	err := s.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE company_id = $1`, companyID,
	).Scan(&c.CompanyID, &c.EventID, &c.Name, &c.Founder, &c.Location,
		&c.Industry, &c.LogoURL, &c.Extra, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Company{}, ErrNotFound
		}
		return model.Company{}, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// InsertCompany stores a new company. Zero ID and timestamp are filled in.
func (s *Store) InsertCompany(ctx context.Context, c model.Company) (model.Company, error) {
	if c.CompanyID == "" {
		c.CompanyID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.Extra == nil {
		c.Extra = map[string]string{}
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO companies (company_id, event_id, name, founder, location,
			industry, logo_url, extra, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.CompanyID, c.EventID, c.Name, c.Founder, c.Location,
		c.Industry, c.LogoURL, c.Extra, c.CreatedAt,
	)
	if err != nil {
		return model.Company{}, fmt.Errorf("insert company: %w", err)
	}
	return c, nil
}

// UpdateCompany replaces the editable fields of a company and returns
// the updated row.
func (s *Store) UpdateCompany(ctx context.Context, companyID string, req model.CompanyRequest) (model.Company, error) {
	c, err := s.GetCompany(ctx, companyID)
	if err != nil {
		return model.Company{}, err
	}

	c.Name = req.Name
	c.Founder = req.Founder
	c.Location = req.Location
	c.Industry = req.Industry
	c.LogoURL = req.LogoURL

	_, err = s.db.Exec(ctx,
		`UPDATE companies SET name = $2, founder = $3, location = $4, industry = $5, logo_url = $6
		 WHERE company_id = $1`,
		c.CompanyID, c.Name, c.Founder, c.Location, c.Industry, c.LogoURL,
	)
	if err != nil {
		return model.Company{}, fmt.Errorf("update company: %w", err)
	}
	return c, nil
}

// UpdateCompanyProfile updates the sheet-controlled fields together.
// Used by the reconciler when any of them differs from the sheet row.
func (s *Store) UpdateCompanyProfile(ctx context.Context, companyID, founder, location, industry string) error {
	if _, err := s.db.Exec(ctx,
		`UPDATE companies SET founder = $2, location = $3, industry = $4 WHERE company_id = $1`,
		companyID, founder, location, industry,
	); err != nil {
		return fmt.Errorf("update company profile: %w", err)
	}
	return nil
}

// DeleteCompany removes a single company row.
func (s *Store) DeleteCompany(ctx context.Context, companyID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM companies WHERE company_id = $1`, companyID); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
