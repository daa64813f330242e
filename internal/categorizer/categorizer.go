// Package categorizer assigns category labels to statement transactions
// by keyword scoring over the transaction text, with an optional AI
// fallback for transactions no keyword recognizes.
package categorizer

import (
	"context"
	"strings"

	"pigapp/cib-statement/internal/logging"
	"pigapp/cib-statement/internal/models"
)

// Categorizer scores the keyword table against a transaction's text.
// The table is fixed at construction and read-only afterwards, so a
// single Categorizer is safe to reuse across many statement parses.
type Categorizer struct {
	categories []models.CategoryKeywords
	fallback   Strategy
	logger     logging.Logger
}

// New creates a Categorizer. An empty table selects the built-in CIB
// table. Keywords are lowercased once here; matching is always against
// lowercased text.
func New(table []models.CategoryKeywords, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if len(table) == 0 {
		table = models.DefaultCategoryKeywords()
	}

	normalized := make([]models.CategoryKeywords, len(table))
	for i, cat := range table {
		keywords := make([]string, len(cat.Keywords))
		for j, kw := range cat.Keywords {
			keywords[j] = strings.ToLower(kw)
		}
		normalized[i] = models.CategoryKeywords{Name: cat.Name, Keywords: keywords}
	}

	return &Categorizer{categories: normalized, logger: logger}
}

// SetFallback installs a fallback strategy consulted only when every
// keyword score is zero.
func (c *Categorizer) SetFallback(s Strategy) {
	c.fallback = s
}

// Labels returns the category labels in table order.
func (c *Categorizer) Labels() []string {
	return models.CategoryLabels(c.categories)
}

// Categorize picks the category whose keywords occur most often as
// substrings of the lowercased description plus the two continuation
// lines. Only a strictly higher count takes the lead, so on a tie the
// category defined earlier in the table keeps the transaction. When
// nothing scores the result is "other", unless a fallback strategy
// produces a known label.
func (c *Categorizer) Categorize(description, extra1, extra2 string) string {
	text := strings.ToLower(description + " " + extra1 + " " + extra2)

	best := models.CategoryOther
	bestScore := 0
	for _, cat := range c.categories {
		score := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = cat.Name
		}
	}

	if bestScore == 0 && c.fallback != nil {
		if label, ok := c.categorizeWithFallback(description); ok {
			return label
		}
	}

	return best
}

func (c *Categorizer) categorizeWithFallback(description string) (string, bool) {
	label, found, err := c.fallback.Categorize(context.Background(), description)
	if err != nil {
		c.logger.WithError(err).WithFields(
			logging.Field{Key: "strategy", Value: c.fallback.Name()},
			logging.Field{Key: "description", Value: description},
		).Warn("Fallback categorization failed")
		return "", false
	}
	if !found || !c.isKnownLabel(label) {
		return "", false
	}

	c.logger.WithFields(
		logging.Field{Key: "strategy", Value: c.fallback.Name()},
		logging.Field{Key: "description", Value: description},
		logging.Field{Key: "category", Value: label},
	).Debug("Transaction categorized by fallback strategy")
	return label, true
}

func (c *Categorizer) isKnownLabel(label string) bool {
	for _, cat := range c.categories {
		if cat.Name == label {
			return true
		}
	}
	return false
}
