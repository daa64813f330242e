package categorizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"pigapp/cib-statement/internal/logging"
)

// GeminiStrategy asks the Gemini API to pick one of the configured
// category labels for a transaction description. It is an optional
// fallback: core parsing never depends on it and it is disabled unless
// an API key is configured.
type GeminiStrategy struct {
	model   *genai.GenerativeModel
	labels  []string
	timeout time.Duration
	logger  logging.Logger
}

// NewGeminiStrategy creates the strategy and its API client.
func NewGeminiStrategy(apiKey, modelName string, labels []string, timeout time.Duration, logger logging.Logger) (*GeminiStrategy, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiStrategy{
		model:   client.GenerativeModel(modelName),
		labels:  labels,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Name identifies the strategy in logs.
func (s *GeminiStrategy) Name() string {
	return "Gemini"
}

// Categorize prompts the model with the fixed label set and parses its
// answer. Anything that is not one of the known labels counts as no
// answer.
func (s *GeminiStrategy) Categorize(ctx context.Context, description string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Categorize the following bank statement entry:
Description: %s

Assign it to exactly one of the following categories:
%s

Respond in this format:
Category: [selected category name]`,
		description,
		strings.Join(s.labels, ", "))

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", false, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", false, fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	label := s.extractLabel(responseText)
	if label == "" {
		s.logger.WithField("response", responseText).
			Debug("Gemini response contained no known category label")
		return "", false, nil
	}
	return label, true, nil
}

// extractLabel pulls the label out of a "Category: x" line, falling back
// to scanning the whole response for any known label.
func (s *GeminiStrategy) extractLabel(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			candidate := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "Category:")))
			for _, label := range s.labels {
				if candidate == label {
					return label
				}
			}
		}
	}

	lower := strings.ToLower(response)
	for _, label := range s.labels {
		if strings.Contains(lower, label) {
			return label
		}
	}
	return ""
}
