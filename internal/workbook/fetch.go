package workbook

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/eventdesk/agendahub/internal/model"
)

// spreadsheetIDPattern extracts the document ID from a Google Sheets URL.
var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// Fetcher downloads publicly shared Google Sheets as XLSX workbooks.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher using the given HTTP client, or
// http.DefaultClient when nil.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// FetchGoogleSheet downloads a Google Sheet's XLSX export and parses it.
// The sheet must be shared as "Anyone with the link can view".
func (f *Fetcher) FetchGoogleSheet(ctx context.Context, sheetURL string) (*model.AgendaData, error) {
	id, err := ExtractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	exportURL := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=xlsx", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: sheetURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Google answers with a redirect to a sign-in page (or 401/403)
		// when the document is not shared publicly.
		return nil, &FetchError{
			URL:       sheetURL,
			NotPublic: true,
			Err:       fmt.Errorf("export returned status %d", resp.StatusCode),
		}
	}

	return Parse(resp.Body)
}

// ExtractSpreadsheetID pulls the document ID out of a Google Sheets URL.
func ExtractSpreadsheetID(sheetURL string) (string, error) {
	m := spreadsheetIDPattern.FindStringSubmatch(sheetURL)
	if m == nil {
		return "", fmt.Errorf("invalid Google Sheets URL: expected a /spreadsheets/d/ link")
	}
	return m[1], nil
}
