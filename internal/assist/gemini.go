package assist

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/recyclink/recyclink/internal/models"
	"google.golang.org/api/option"
)

// Gemini answers through the Google Gemini API. One client is held for
// the process lifetime.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini assistant with the given API key and model.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Name returns the provider name.
func (g *Gemini) Name() string { return "gemini" }

// Close releases the underlying client.
func (g *Gemini) Close() error { return g.client.Close() }

// identificationSchema mirrors models.Identification for structured output.
var identificationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"itemName":       {Type: genai.TypeString},
		"category":       {Type: genai.TypeString},
		"isRecyclable":   {Type: genai.TypeBoolean},
		"estimatedPrice": {Type: genai.TypeString},
	},
	Required: []string{"itemName", "category", "isRecyclable", "estimatedPrice"},
}

// estimateSchema mirrors models.Estimate for structured output.
var estimateSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"estimatedValue": {Type: genai.TypeString},
		"environmentalImpact": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"metric": {Type: genai.TypeString},
				"value":  {Type: genai.TypeString},
			},
			Required: []string{"metric", "value"},
		},
		"disclaimer": {Type: genai.TypeString},
	},
	Required: []string{"estimatedValue", "environmentalImpact", "disclaimer"},
}

// StartConversation opens a chat session with the support instruction.
func (g *Gemini) StartConversation(ctx context.Context) (Conversation, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(chatSystemInstruction)},
	}
	return &geminiConversation{chat: model.StartChat()}, nil
}

type geminiConversation struct {
	mu   sync.Mutex
	chat *genai.ChatSession
}

func (c *geminiConversation) Send(ctx context.Context, message string) (string, error) {
	// ChatSession keeps history; serialize sends so rapid double-submits
	// from the widget cannot interleave one session's turns.
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, err := c.chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}
	return responseText(resp)
}

// ConfirmationMessage generates the pickup confirmation text.
func (g *Gemini) ConfirmationMessage(ctx context.Context, name string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(confirmationPrompt(name)))
	if err != nil {
		return "", fmt.Errorf("failed to generate confirmation: %w", err)
	}
	return responseText(resp)
}

// IdentifyScrap classifies the image with a schema-constrained response.
func (g *Gemini) IdentifyScrap(ctx context.Context, image []byte, mimeType string) (*models.Identification, error) {
	model := g.client.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = identificationSchema

	// genai wants the bare format ("jpeg"), not the full MIME type.
	format := strings.TrimPrefix(mimeType, "image/")
	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, image),
		genai.Text(identifyPrompt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to identify scrap: %w", err)
	}
	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return parseIdentification(raw)
}

// EstimateValue prices the lot with a schema-constrained response.
func (g *Gemini) EstimateValue(ctx context.Context, scrapType, weight, unit string) (*models.Estimate, error) {
	model := g.client.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = estimateSchema

	resp, err := model.GenerateContent(ctx, genai.Text(estimatePrompt(scrapType, weight, unit)))
	if err != nil {
		return nil, fmt.Errorf("failed to estimate value: %w", err)
	}
	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return parseEstimate(raw)
}

// responseText pulls the first text part out of a Gemini response.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return strings.TrimSpace(string(txt)), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}
