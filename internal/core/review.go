package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventdesk/agendahub/internal/logging"
	"github.com/eventdesk/agendahub/internal/model"
)

// ErrAlreadyReviewed is returned when approving or rejecting a
// submission that has already left the pending state.
var ErrAlreadyReviewed = errors.New("submission has already been reviewed")

// DefaultRejectionReason is recorded when a rejection gives no reason.
const DefaultRejectionReason = "Not specified"

// ReviewStore is the persistence surface submission review needs.
type ReviewStore interface {
	GetExpertSubmission(ctx context.Context, submissionID string) (model.ExpertSubmission, error)
	MarkExpertSubmissionReviewed(ctx context.Context, submissionID string, status model.SubmissionStatus, reason string, reviewedAt time.Time) error
	InsertExpert(ctx context.Context, e model.Expert) (model.Expert, error)

	GetCompanySubmission(ctx context.Context, submissionID string) (model.CompanySubmission, error)
	MarkCompanySubmissionReviewed(ctx context.Context, submissionID string, status model.SubmissionStatus, reason string, reviewedAt time.Time) error
	InsertCompany(ctx context.Context, c model.Company) (model.Company, error)
}

// Reviewer drives the submission state machine: pending submissions can
// be approved (a directory entry is created from the submitted data) or
// rejected (a reason is recorded); both outcomes are terminal.
//
// Approval creates the entity before marking the submission reviewed.
// If the second write fails, the submission stays pending with the
// entity already present; a retry then duplicates the entity rather
// than losing it, which is the recoverable direction for a human
// reviewer.
type Reviewer struct {
	store ReviewStore
}

// NewReviewer returns a Reviewer backed by the given store.
func NewReviewer(store ReviewStore) *Reviewer {
	return &Reviewer{store: store}
}

// ApproveExpert turns a pending expert submission into an expert
// directory entry and returns the created expert.
func (r *Reviewer) ApproveExpert(ctx context.Context, submissionID string) (model.Expert, error) {
	sub, err := r.store.GetExpertSubmission(ctx, submissionID)
	if err != nil {
		return model.Expert{}, err
	}
	if sub.Status != model.StatusPending {
		return model.Expert{}, ErrAlreadyReviewed
	}

	expert, err := r.store.InsertExpert(ctx, model.Expert{
		EventID:     sub.EventID,
		Name:        sub.Name,
		Title:       sub.Title,
		Company:     sub.Company,
		Bio:         sub.Bio,
		LinkedInURL: sub.LinkedInURL,
		PhotoURL:    sub.PhotoURL,
		Extra:       copyData(sub.AdditionalData),
	})
	if err != nil {
		return model.Expert{}, fmt.Errorf("create expert from submission: %w", err)
	}

	if err := r.store.MarkExpertSubmissionReviewed(ctx, submissionID,
		model.StatusApproved, "", time.Now().UTC()); err != nil {
		return model.Expert{}, fmt.Errorf("mark submission approved: %w", err)
	}

	logging.FromContext(ctx).Info("expert submission approved",
		"submission_id", submissionID, "expert_id", expert.ExpertID)
	return expert, nil
}

// ApproveCompany turns a pending company submission into a company
// directory entry and returns the created company.
func (r *Reviewer) ApproveCompany(ctx context.Context, submissionID string) (model.Company, error) {
	sub, err := r.store.GetCompanySubmission(ctx, submissionID)
	if err != nil {
		return model.Company{}, err
	}
	if sub.Status != model.StatusPending {
		return model.Company{}, ErrAlreadyReviewed
	}

	company, err := r.store.InsertCompany(ctx, model.Company{
		EventID:  sub.EventID,
		Name:     sub.Name,
		Founder:  sub.Founder,
		Location: sub.Location,
		Industry: sub.Industry,
		LogoURL:  sub.LogoURL,
		Extra:    copyData(sub.AdditionalData),
	})
	if err != nil {
		return model.Company{}, fmt.Errorf("create company from submission: %w", err)
	}

	if err := r.store.MarkCompanySubmissionReviewed(ctx, submissionID,
		model.StatusApproved, "", time.Now().UTC()); err != nil {
		return model.Company{}, fmt.Errorf("mark submission approved: %w", err)
	}

	logging.FromContext(ctx).Info("company submission approved",
		"submission_id", submissionID, "company_id", company.CompanyID)
	return company, nil
}

// RejectExpert marks a pending expert submission rejected. An empty
// reason is recorded as DefaultRejectionReason.
func (r *Reviewer) RejectExpert(ctx context.Context, submissionID, reason string) error {
	sub, err := r.store.GetExpertSubmission(ctx, submissionID)
	if err != nil {
		return err
	}
	if sub.Status != model.StatusPending {
		return ErrAlreadyReviewed
	}

	return r.store.MarkExpertSubmissionReviewed(ctx, submissionID,
		model.StatusRejected, orDefault(reason), time.Now().UTC())
}

// RejectCompany marks a pending company submission rejected.
func (r *Reviewer) RejectCompany(ctx context.Context, submissionID, reason string) error {
	sub, err := r.store.GetCompanySubmission(ctx, submissionID)
	if err != nil {
		return err
	}
	if sub.Status != model.StatusPending {
		return ErrAlreadyReviewed
	}

	return r.store.MarkCompanySubmissionReviewed(ctx, submissionID,
		model.StatusRejected, orDefault(reason), time.Now().UTC())
}

func orDefault(reason string) string {
	if reason == "" {
		return DefaultRejectionReason
	}
	return reason
}

// copyData clones the submission's custom field values so the directory
// entry does not share the submission's map.
func copyData(data map[string]string) map[string]string {
	out := make(map[string]string, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
