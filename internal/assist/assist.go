// Package assist is the single seam between the website and the
// generative-AI provider. Every widget operation maps to one Assistant
// call; the implementation is selected once at startup.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/recyclink/recyclink/internal/config"
	"github.com/recyclink/recyclink/internal/models"
)

// Assistant defines the operations the site's widgets need.
type Assistant interface {
	// StartConversation opens a chat session primed with the support
	// system instruction.
	StartConversation(ctx context.Context) (Conversation, error)
	// ConfirmationMessage generates a short personalized confirmation
	// for a scheduled pickup.
	ConfirmationMessage(ctx context.Context, name string) (string, error)
	// IdentifyScrap classifies an uploaded photo of a scrap item.
	IdentifyScrap(ctx context.Context, image []byte, mimeType string) (*models.Identification, error)
	// EstimateValue prices a (type, weight, unit) triple and reports an
	// environmental-impact figure alongside.
	EstimateValue(ctx context.Context, scrapType, weight, unit string) (*models.Estimate, error)
	// Name returns the provider name for logging.
	Name() string
	// Close releases the underlying client, if any.
	Close() error
}

// Conversation is one chat session. Send is safe for concurrent use;
// overlapping sends are serialized in arrival order.
type Conversation interface {
	Send(ctx context.Context, message string) (string, error)
}

// New selects the Assistant implementation for the configured provider.
// A missing API key is not an error: the mock assistant takes over so
// the site stays fully usable, just with synthetic answers.
func New(ctx context.Context, cfg *config.Config) (Assistant, error) {
	switch cfg.Provider {
	case config.ProviderMock:
		return NewMock(cfg.MockDelay), nil
	case config.ProviderGemini:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderGemini))
		if apiKey == "" {
			slog.Warn("GEMINI_API_KEY not set, falling back to mock responses")
			return NewMock(cfg.MockDelay), nil
		}
		return NewGemini(ctx, apiKey, cfg.Model)
	case config.ProviderOpenAI:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			slog.Warn("OPENAI_API_KEY not set, falling back to mock responses")
			return NewMock(cfg.MockDelay), nil
		}
		return NewOpenAI(apiKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

// cleanJSONResponse strips markdown code fences that models wrap around
// JSON output despite instructions not to.
func cleanJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

func parseIdentification(raw string) (*models.Identification, error) {
	var result models.Identification
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse identification response: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}

func parseEstimate(raw string) (*models.Estimate, error) {
	var result models.Estimate
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse estimate response: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}
