package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 30 * time.Second
)

// Client is a thin wrapper over the generative-language REST API. It sends a
// single free-form prompt and returns the generated text.
type Client struct {
	http   *resty.Client
	apiKey string
	model  string
}

// NewClient returns a client for the given credential and model. Empty
// baseURL and model select the service defaults.
func NewClient(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	if model == "" {
		model = defaultModel
	}

	restClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout)

	return &Client{
		http:   restClient,
		apiKey: apiKey,
		model:  model,
	}
}

// HasKey reports whether a credential is configured.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends the prompt and returns the concatenated text of the
// first candidate. An empty response is returned as "", not an error.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !c.HasKey() {
		return "", errors.New("missing API key")
	}

	var result generateContentResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(generateContentRequest{
			Contents: []content{{Parts: []part{{Text: prompt}}}},
		}).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		return "", fmt.Errorf("generate content failed with status %d", resp.StatusCode())
	}

	if len(result.Candidates) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}

	return b.String(), nil
}
