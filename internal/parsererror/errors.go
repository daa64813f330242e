// Package parsererror defines the typed errors returned by the statement
// parsing pipeline.
package parsererror

import "fmt"

// InputError reports a path that is neither a PDF file nor a non-empty
// directory of PDFs. It fails the whole operation with no partial output.
type InputError struct {
	Path   string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input '%s': %s", e.Path, e.Reason)
}

// ExtractionError reports a hard failure of the PDF text extraction
// layer, e.g. an unreadable or non-PDF file. Per-page extraction
// problems are not errors; they degrade to empty pages.
type ExtractionError struct {
	FilePath string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed for '%s': %v", e.FilePath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ParseError reports a failure while turning extracted text into records.
// The line-level heuristics never raise it; it exists for callers that
// wrap parser invocations.
type ParseError struct {
	FilePath string
	Field    string
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.FilePath, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
