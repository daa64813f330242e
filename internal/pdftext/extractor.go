// Package pdftext extracts per-page plain text from PDF files.
package pdftext

// Extractor yields the plain text of each page of a PDF, preserving
// line breaks. A page that cannot be extracted is returned as an empty
// string; only opening/reading the file itself may fail.
type Extractor interface {
	ExtractPages(pdfPath string) ([]string, error)
}

// MockExtractor implements Extractor for tests, returning predefined
// pages instead of reading a file.
type MockExtractor struct {
	Pages []string
	Err   error
}

// NewMockExtractor creates a MockExtractor with the given pages.
func NewMockExtractor(pages []string, err error) *MockExtractor {
	return &MockExtractor{Pages: pages, Err: err}
}

// ExtractPages returns the predefined pages or error.
func (e *MockExtractor) ExtractPages(pdfPath string) ([]string, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return e.Pages, nil
}
