package categorizer

import "context"

// Strategy is a secondary categorization method consulted when keyword
// scoring produces no match. Implementations return found=false rather
// than an error when they simply have no answer.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Categorize returns a category label for the description.
	Categorize(ctx context.Context, description string) (label string, found bool, err error)
}
