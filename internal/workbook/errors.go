package workbook

import (
	"fmt"
	"strings"
)

// MissingSheetError reports that a mandatory sheet is absent from the
// workbook. Not retryable without fixing the input file.
type MissingSheetError struct {
	Sheet string   // the expected sheet name
	Found []string // sheet names actually present
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("sheet %q is missing; available sheets: %s",
		e.Sheet, strings.Join(e.Found, ", "))
}

// MissingColumnsError reports that a present sheet lacks required
// columns. Not retryable without fixing the input file.
type MissingColumnsError struct {
	Sheet   string   // the sheet that failed validation
	Missing []string // required columns not found in the header
	Found   []string // header cells actually present
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("sheet %q is missing columns: %s",
		e.Sheet, strings.Join(e.Missing, ", "))
}

// FetchError reports a failed download of a remote spreadsheet. NotPublic
// distinguishes "reachable but not shared publicly" from network failure.
type FetchError struct {
	URL       string
	NotPublic bool
	Err       error
}

func (e *FetchError) Error() string {
	if e.NotPublic {
		return fmt.Sprintf("could not fetch %s: the sheet is not publicly viewable; share it as \"Anyone with the link can view\"", e.URL)
	}
	return fmt.Sprintf("could not reach %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
