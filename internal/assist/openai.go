package assist

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/recyclink/recyclink/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAI answers through the OpenAI Chat Completions API. Structured
// responses use JSON mode plus local shape validation; conversation
// history is held client-side.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI assistant with the given API key and model.
func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Name returns the provider name.
func (o *OpenAI) Name() string { return "openai" }

// Close is a no-op; the client holds no connection state.
func (o *OpenAI) Close() error { return nil }

// StartConversation opens a chat session with the support instruction.
func (o *OpenAI) StartConversation(ctx context.Context) (Conversation, error) {
	return &openaiConversation{
		client: o.client,
		model:  o.model,
		history: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatSystemInstruction},
		},
	}, nil
}

type openaiConversation struct {
	mu      sync.Mutex
	client  *openai.Client
	model   string
	history []openai.ChatCompletionMessage
}

func (c *openaiConversation) Send(ctx context.Context, message string) (string, error) {
	// History is shared mutable state; serialize sends per conversation.
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = append(c.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: c.history,
	})
	if err != nil {
		// Drop the unanswered turn so a retry does not double it.
		c.history = c.history[:len(c.history)-1]
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}
	if len(resp.Choices) == 0 {
		c.history = c.history[:len(c.history)-1]
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	reply := resp.Choices[0].Message.Content
	c.history = append(c.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})
	return strings.TrimSpace(reply), nil
}

func (o *OpenAI) complete(ctx context.Context, messages []openai.ChatCompletionMessage, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: messages,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// ConfirmationMessage generates the pickup confirmation text.
func (o *OpenAI) ConfirmationMessage(ctx context.Context, name string) (string, error) {
	return o.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: confirmationPrompt(name)},
	}, false)
}

// IdentifyScrap classifies the image via a vision message with the photo
// inlined as a data URI.
func (o *OpenAI) IdentifyScrap(ctx context.Context, image []byte, mimeType string) (*models.Identification, error) {
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	raw, err := o.complete(ctx, []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: identifyPrompt},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: dataURI},
				},
			},
		},
	}, true)
	if err != nil {
		return nil, fmt.Errorf("failed to identify scrap: %w", err)
	}
	return parseIdentification(raw)
}

// EstimateValue prices the lot in JSON mode.
func (o *OpenAI) EstimateValue(ctx context.Context, scrapType, weight, unit string) (*models.Estimate, error) {
	raw, err := o.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: estimatePrompt(scrapType, weight, unit)},
	}, true)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate value: %w", err)
	}
	return parseEstimate(raw)
}
