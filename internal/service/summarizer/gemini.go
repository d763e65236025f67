package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
)

// Client calls the generative-language API. One generation request per
// pipeline run, bounded by the timeout budget; the only retry-like
// behavior is the single fallback-model call on overload.
type Client struct {
	apiURL        string
	apiKey        string
	model         string
	fallbackModel string
	timeout       time.Duration
	maxChars      int
	httpClient    *http.Client
	logger        *slog.Logger
}

// Options tunes the summarization client beyond its defaults
type Options struct {
	Model         string
	FallbackModel string
	Timeout       time.Duration
	MaxChars      int
}

// NewClient creates a summarization client
func NewClient(apiURL, apiKey string, opts Options, logger *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 90 * time.Second
	}
	if opts.MaxChars <= 0 {
		opts.MaxChars = 30000
	}
	return &Client{
		apiURL:        strings.TrimRight(apiURL, "/"),
		apiKey:        apiKey,
		model:         opts.Model,
		fallbackModel: opts.FallbackModel,
		timeout:       opts.Timeout,
		maxChars:      opts.MaxChars,
		httpClient:    &http.Client{},
		logger:        logger,
	}
}

// geminiRequest is the generateContent wire format
type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Summarize generates a title/summary pair for the sanitized
// transcript. On model overload it degrades to one fallback-model call
// with a simpler prompt and a placeholder title.
func (c *Client) Summarize(ctx context.Context, transcript, videoTitle string) (*Result, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeConfigMissing, "API ключ для Gemini не настроен")
	}

	transcript = c.truncate(transcript)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.generate(ctx, c.model, buildPrompt(videoTitle), transcript)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeSummaryUnavailable) {
			c.logger.Warn("primary model overloaded, trying fallback", "model", c.fallbackModel)
			return c.summarizeFallback(ctx, transcript)
		}
		return nil, err
	}

	result := ExtractResult(response)
	c.logger.Info("summary generated", "model", c.model, "title", result.Title, "length", len(result.Summary))
	return &result, nil
}

// summarizeFallback issues the single simplified-model call; its raw
// output becomes the summary under a placeholder title.
func (c *Client) summarizeFallback(ctx context.Context, transcript string) (*Result, error) {
	response, err := c.generate(ctx, c.fallbackModel, buildFallbackPrompt(), transcript)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeSummaryUnavailable, "")
	}
	return &Result{
		Title:   PlaceholderTitle,
		Summary: strings.TrimSpace(response),
	}, nil
}

func (c *Client) truncate(transcript string) string {
	if len(transcript) <= c.maxChars {
		return transcript
	}
	cut := transcript[:c.maxChars]
	// do not split a multi-byte rune
	for len(cut) > 0 && cut[len(cut)-1] >= 0x80 && cut[len(cut)-1] < 0xC0 {
		cut = cut[:len(cut)-1]
	}
	return cut + "..."
}

func (c *Client) generate(ctx context.Context, model, prompt, transcript string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{Text: prompt},
				{Text: transcript},
			},
		}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 1000,
		},
	})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, "")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.apiURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, "")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", apperrors.Wrap(err, apperrors.CodeSummaryTimeout, "")
		}
		return "", apperrors.Wrap(err, apperrors.CodeSummaryFailed, "")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeSummaryFailed, "")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// error bodies are not always JSON (a proxy may answer with
		// HTML): the status alone must be enough to classify
		var parsed geminiResponse
		_ = json.Unmarshal(raw, &parsed)
		return "", c.classifyAPIError(resp.StatusCode, &parsed)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeSummaryFailed, "")
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.New(apperrors.CodeSummaryFailed, "")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// classifyAPIError maps a non-2xx generation response onto the error
// taxonomy: region restriction, bad key, overload, generic failure.
func (c *Client) classifyAPIError(status int, parsed *geminiResponse) error {
	message := ""
	if parsed.Error != nil {
		message = parsed.Error.Message
	}
	c.logger.Error("generation request failed", "status", status, "message", message)

	switch {
	case strings.Contains(message, "location is not supported") || strings.Contains(message, "User location"):
		return apperrors.New(apperrors.CodeSummaryRegion, "")
	case strings.Contains(message, "API key") || status == http.StatusUnauthorized:
		return apperrors.New(apperrors.CodeSummaryKeyInvalid, "")
	case status == http.StatusServiceUnavailable || strings.Contains(message, "overloaded"):
		return apperrors.New(apperrors.CodeSummaryUnavailable, "")
	default:
		return apperrors.New(apperrors.CodeSummaryFailed, "")
	}
}
