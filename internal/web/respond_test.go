package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eventdesk/agendahub/internal/assets"
	"github.com/eventdesk/agendahub/internal/core"
	"github.com/eventdesk/agendahub/internal/model"
	"github.com/eventdesk/agendahub/internal/store"
	"github.com/eventdesk/agendahub/internal/workbook"
)

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load day: %w", store.ErrNotFound), http.StatusNotFound},
		{"too many imports", core.ErrTooManyImports, http.StatusTooManyRequests},
		{"already reviewed", core.ErrAlreadyReviewed, http.StatusConflict},
		{"missing sheet", &workbook.MissingSheetError{Sheet: "Days"}, http.StatusUnprocessableEntity},
		{"missing columns", &workbook.MissingColumnsError{Sheet: "Days", Missing: []string{"Date"}}, http.StatusUnprocessableEntity},
		{"fetch failure", &workbook.FetchError{URL: "https://example.com", NotPublic: true}, http.StatusBadGateway},
		{"missing form field", &core.MissingFieldError{Field: "dietary"}, http.StatusBadRequest},
		{"unsupported asset", assets.ErrUnsupportedType, http.StatusBadRequest},
		{"oversized asset", assets.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(rec, req, tt.err)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}

			var body model.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not the error envelope: %v", err)
			}
			if body.Error == "" {
				t.Error("error message is empty")
			}
		})
	}
}

// Internal errors must not leak details to the client.
func TestRespondError_SanitizesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(rec, req, errors.New("pq: password authentication failed for user"))

	var body model.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Error != "internal server error" {
		t.Errorf("error = %q, want generic message", body.Error)
	}
}

func TestStatusFilter(t *testing.T) {
	tests := []struct {
		query  string
		want   model.SubmissionStatus
		wantOK bool
	}{
		{"", "", true},
		{"pending", model.StatusPending, true},
		{"approved", model.StatusApproved, true},
		{"rejected", model.StatusRejected, true},
		{"bogus", "", false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/?status="+tt.query, nil)
		got, ok := statusFilter(req)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("statusFilter(%q) = %q, %v, want %q, %v", tt.query, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"event_name":"Summit","surprise":true}`))

	var payload model.CreateEventRequest
	if err := decodeJSON(req, &payload); err == nil {
		t.Error("decodeJSON accepted an unknown field")
	}
}
