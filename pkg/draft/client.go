package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/httputil"
	"github.com/yanderlabs/mindweave/pkg/observability"
)

// APIKeyEnv is the environment variable holding the completion API key.
// It overrides any key from the config file.
const APIKeyEnv = "MINDWEAVE_API_KEY"

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 120 * time.Second
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different chat-completions endpoint,
// e.g. a local llama.cpp or Ollama server.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.baseURL = base }
}

// WithModel selects the model name sent with each request.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// Client is a Completer backed by an OpenAI-compatible chat-completions API.
type Client struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
}

// NewClient creates a completion client. The API key is read from the
// MINDWEAVE_API_KEY environment variable if apiKey is empty; local endpoints
// typically need no key at all.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	if apiKey == "" {
		apiKey = os.Getenv(APIKeyEnv)
	}
	c := &Client{
		baseURL: defaultBaseURL,
		model:   defaultModel,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends one chat-completion request and returns the response text.
// Network errors, 429s and 5xx responses are retried with backoff; other
// failures report COMPLETION_FAILED immediately.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode completion request")
	}

	endpoint := c.baseURL + "/chat/completions"
	host, path := splitEndpoint(endpoint)

	var text string
	err = httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		observability.HTTP().OnRequest(ctx, http.MethodPost, host, path)
		start := time.Now()

		resp, err := c.http.Do(req)
		if err != nil {
			observability.HTTP().OnError(ctx, http.MethodPost, host, path, err)
			return &httputil.RetryableError{Err: err}
		}
		defer resp.Body.Close()
		observability.HTTP().OnResponse(ctx, http.MethodPost, host, path, resp.StatusCode, time.Since(start))

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return &httputil.RetryableError{Err: fmt.Errorf("completion endpoint returned %d", resp.StatusCode)}
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}

		var parsed chatResponse
		if err := json.Unmarshal(data, &parsed); err != nil {
			return errors.Wrap(errors.ErrCodeCompletionFailed, err, "decode completion response")
		}
		if parsed.Error != nil {
			return errors.New(errors.ErrCodeCompletionFailed, "completion endpoint: %s", parsed.Error.Message)
		}
		if resp.StatusCode != http.StatusOK {
			return errors.New(errors.ErrCodeCompletionFailed, "completion endpoint returned %d", resp.StatusCode)
		}
		if len(parsed.Choices) == 0 {
			return errors.New(errors.ErrCodeCompletionFailed, "completion response has no choices")
		}

		text = parsed.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		if errors.GetCode(err) != "" {
			return "", err
		}
		return "", errors.Wrap(errors.ErrCodeCompletionFailed, err, "completion request failed")
	}
	return text, nil
}

func splitEndpoint(endpoint string) (host, path string) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint, ""
	}
	return u.Host, u.Path
}

// Ensure Client implements Completer.
var _ Completer = (*Client)(nil)
