package categorizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pigapp/cib-statement/internal/logging"
)

func TestNewGeminiStrategy_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiStrategy("", "gemini-2.0-flash", []string{"food"}, 10*time.Second, &logging.MockLogger{})
	assert.Error(t, err)
}

func TestGeminiStrategy_ExtractLabel(t *testing.T) {
	s := &GeminiStrategy{
		labels: []string{"food", "transport", "other"},
		logger: &logging.MockLogger{},
	}

	tests := []struct {
		name     string
		response string
		expected string
	}{
		{
			name:     "well formed answer",
			response: "Category: food",
			expected: "food",
		},
		{
			name:     "answer with surrounding prose",
			response: "Sure! Based on the description:\nCategory: transport\nHope that helps.",
			expected: "transport",
		},
		{
			name:     "mixed case answer",
			response: "Category: Food",
			expected: "food",
		},
		{
			name:     "label buried in prose",
			response: "This looks like a food purchase to me.",
			expected: "food",
		},
		{
			name:     "unknown label ignored",
			response: "Category: crypto",
			expected: "",
		},
		{
			name:     "empty response",
			response: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.extractLabel(tt.response))
		})
	}
}
