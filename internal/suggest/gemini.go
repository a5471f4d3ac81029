package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-1.5-flash"

	// prompt asks for a batch of three questions in the "a||b||c" shape
	// the suggestion service parses.
	prompt = "Create a list of three open-ended and engaging questions formatted as a single string. " +
		"Each question should be separated by '||'. These questions are for an anonymous social " +
		"messaging platform and should be suitable for a diverse audience. Avoid personal or " +
		"sensitive topics, focusing instead on universal themes that encourage friendly interaction. " +
		"For example, your output should be structured like this: " +
		"'What's a hobby you've recently started?||If you could have dinner with any historical figure, " +
		"who would it be?||What's a simple thing that makes you happy?'. Ensure the questions are " +
		"intriguing, foster curiosity, and contribute to a positive and welcoming conversational environment."
)

// GeminiClient calls the Google Generative Language REST API to produce
// message suggestions.
type GeminiClient struct {
	APIKey  string
	Model   string
	BaseURL string

	// HTTPClient defaults to a client with a 15s timeout.
	HTTPClient *http.Client
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateSuggestions asks the model for a "q1||q2||q3" batch and returns
// the raw text.
func (c *GeminiClient) GenerateSuggestions(ctx context.Context) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("suggest: missing API key")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		c.baseURL(), c.model())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("suggest: call model: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("suggest: read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("suggest: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("suggest: model error %d: %s", parsed.Error.Code, parsed.Error.Message)
		}
		return "", fmt.Errorf("suggest: unexpected status %d", resp.StatusCode)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("suggest: empty completion")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func (c *GeminiClient) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

func (c *GeminiClient) model() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModel
}

func (c *GeminiClient) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}
