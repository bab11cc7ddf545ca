// Package suggest talks to the AI habit-suggestion collaborator and turns
// its free-text replies into actionable habit candidates. The network call
// is best-effort: any failure degrades to a canned keyword-matched
// suggestion, never to a user-facing error.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

	defaultTimeout  = 15 * time.Second
	maxOutputTokens = 150
	temperature     = 0.9
)

// PromptContext carries what the model needs to tailor a suggestion.
type PromptContext struct {
	// CurrentHabitNames are the user's existing habits, used so the model
	// suggests something complementary.
	CurrentHabitNames []string

	// UserQuestion is the free-text question from the chat box. Empty for
	// the one-shot "suggest me a habit" button.
	UserQuestion string
}

// Generator produces free-text wellness advice for a prompt context.
type Generator interface {
	Generate(ctx context.Context, pc PromptContext) (string, error)
}

// GeminiClient calls the Gemini generateContent endpoint.
type GeminiClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
	Config   *geminiConfig   `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewGeminiClient creates a client for the Gemini suggestion API.
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// Generate asks the model for advice. The prompt instructs the model to tag
// any habit suggestion with the "I recommend:" marker that ExtractHabit
// looks for.
func (c *GeminiClient) Generate(ctx context.Context, pc PromptContext) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildPrompt(pc)}}}},
		Config:   &geminiConfig{Temperature: temperature, MaxOutputTokens: maxOutputTokens},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr geminiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("suggestion API returned %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("suggestion API returned %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("suggestion API returned no candidates")
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}

// buildPrompt assembles the chat prompt from habit context and question.
func buildPrompt(pc PromptContext) string {
	var b strings.Builder
	if len(pc.CurrentHabitNames) > 0 {
		fmt.Fprintf(&b, "Current habits: %s. ", strings.Join(pc.CurrentHabitNames, ", "))
	}
	if pc.UserQuestion != "" {
		fmt.Fprintf(&b, "Question: %q. Give 1-2 sentence wellness advice. If suggesting a habit, write \"I recommend: [habit name]\"", pc.UserQuestion)
	} else {
		b.WriteString("Suggest ONE new simple wellness habit that complements these. Reply with \"I recommend: [habit name]\" in 5-8 words, no explanation.")
	}
	return b.String()
}
