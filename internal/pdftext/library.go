package pdftext

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"

	"pigapp/cib-statement/internal/logging"
)

// LibraryExtractor is the production Extractor. It reads pages with the
// ledongthuc/pdf library and falls back to the external pdftotext
// command (poppler-utils) when the library cannot open the file.
type LibraryExtractor struct {
	logger logging.Logger
}

// NewLibraryExtractor creates a LibraryExtractor.
func NewLibraryExtractor(logger logging.Logger) *LibraryExtractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &LibraryExtractor{logger: logger}
}

// ExtractPages extracts the text of every page. A page whose content
// cannot be decoded contributes an empty string rather than failing the
// whole document.
func (e *LibraryExtractor) ExtractPages(pdfPath string) ([]string, error) {
	pages, err := e.extractWithLibrary(pdfPath)
	if err == nil {
		return pages, nil
	}

	e.logger.WithError(err).WithField("file", pdfPath).
		Debug("PDF library extraction failed, trying pdftotext")

	pages, fallbackErr := extractWithPdftotext(pdfPath)
	if fallbackErr != nil {
		return nil, fmt.Errorf("cannot extract text from '%s': %w", pdfPath, err)
	}
	return pages, nil
}

// extractWithLibrary reads each page with ledongthuc/pdf. The library
// panics on some malformed files, so the failure is recovered into an
// error.
func (e *LibraryExtractor) extractWithLibrary(pdfPath string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(pdfPath)
	if openErr != nil {
		return nil, openErr
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			e.logger.WithError(closeErr).WithField("file", pdfPath).
				Warn("Failed to close PDF file")
		}
	}()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			// Unreadable page degrades to an empty page.
			e.logger.WithError(rowErr).WithFields(
				logging.Field{Key: "file", Value: pdfPath},
				logging.Field{Key: "page", Value: i},
			).Warn("Failed to extract page text")
			pages = append(pages, "")
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}

	return pages, nil
}

// extractWithPdftotext shells out to pdftotext and splits its output on
// the form-feed page separators it emits.
func extractWithPdftotext(pdfPath string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %w", err)
	}

	out, err := exec.Command("pdftotext", "-layout", pdfPath, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}

	raw := strings.Split(string(out), "\f")
	var pages []string
	for _, p := range raw {
		if strings.TrimSpace(p) == "" {
			continue
		}
		pages = append(pages, p)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftotext produced no output")
	}
	return pages, nil
}
