package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Plain language names double as the LLM backend's internal identifiers.
var llmLanguageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"kn": "Kannada",
	"ml": "Malayalam",
	"bn": "Bengali",
	"mr": "Marathi",
	"gu": "Gujarati",
	"pa": "Punjabi",
	"ur": "Urdu",
}

// LLMBackend translates through a chat-completion model. It owns the
// credential pool: rate-limit errors rotate to the next key and retry the
// same request; total attempts are bounded by the key count plus one.
type LLMBackend struct {
	pool    *KeyPool
	model   string
	baseURL string
	// chat lets tests stub the completion call; nil uses go-openai.
	chat func(ctx context.Context, apiKey, system, user string) (string, error)
}

func NewLLMBackend(apiKeys []string, model, baseURL string) *LLMBackend {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &LLMBackend{
		pool:    NewKeyPool(apiKeys),
		model:   model,
		baseURL: baseURL,
	}
}

func (b *LLMBackend) Enabled() bool {
	return b != nil && b.pool.Size() > 0
}

func (b *LLMBackend) LanguageID(code string) (string, bool) {
	name, ok := llmLanguageNames[code]
	return name, ok
}

func (b *LLMBackend) Translate(ctx context.Context, text, sourceID, targetID string) (string, error) {
	system := fmt.Sprintf(
		"You are a medical translator. Translate the user's text from %s to %s. "+
			"Keep any 《n》 placeholders exactly as they are. Output only the translation.",
		sourceID, targetID)
	out, err := b.completeWithRotation(ctx, system, text)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("empty translation from model")
	}
	return strings.TrimSpace(out), nil
}

const (
	detectLanguagePrefix    = "language:"
	detectTranslationPrefix = "translation:"
)

// DetectAndTranslate asks the model for two labeled lines and parses them by
// their literal prefixes. Any failure degrades to ("", unknown, error).
func (b *LLMBackend) DetectAndTranslate(ctx context.Context, text string) (english, detected string, err error) {
	system := "Detect the language of the user's text and translate it to English. " +
		"Respond with exactly two lines:\n" +
		"Language: <language name>\n" +
		"Translation: <English translation>"
	out, err := b.completeWithRotation(ctx, system, text)
	if err != nil {
		return "", "unknown", err
	}

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		lowered := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lowered, detectLanguagePrefix):
			detected = strings.TrimSpace(trimmed[len(detectLanguagePrefix):])
		case strings.HasPrefix(lowered, detectTranslationPrefix):
			english = strings.TrimSpace(trimmed[len(detectTranslationPrefix):])
		}
	}
	if detected == "" || english == "" {
		return "", "unknown", fmt.Errorf("unexpected detect response shape")
	}
	return english, detected, nil
}

// completeWithRotation runs one completion, rotating credentials on
// rate-limit-class errors. Non-rate-limit errors propagate immediately.
func (b *LLMBackend) completeWithRotation(ctx context.Context, system, user string) (string, error) {
	key, ok := b.pool.Current()
	if !ok {
		return "", ErrAllKeysCoolingDown
	}

	attempts := b.pool.Size() + 1
	for attempt := 0; attempt < attempts; attempt++ {
		out, err := b.complete(ctx, key, system, user)
		if err == nil {
			return out, nil
		}
		if !isRateLimited(err) {
			return "", err
		}
		key, ok = b.pool.MarkRateLimited(key)
		if !ok {
			return "", fmt.Errorf("%w: %v", ErrAllKeysCoolingDown, err)
		}
	}
	return "", ErrAllKeysCoolingDown
}

func (b *LLMBackend) complete(ctx context.Context, apiKey, system, user string) (string, error) {
	if b.chat != nil {
		return b.chat(ctx, apiKey, system, user)
	}

	cfg := openai.DefaultConfig(apiKey)
	if b.baseURL != "" {
		cfg.BaseURL = b.baseURL
	}
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		// Deterministic decoding: repeated calls with identical input
		// must produce identical output.
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// isRateLimited classifies rate-limit-class failures: HTTP 429 or quota
// wording anywhere in the error chain.
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "429")
}
