package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// CompletionClient is the contract to the text-completion backend: one
// system instruction plus one grounded user message in, generated text out.
// Implementations make exactly one attempt per call.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	errUnexpected  = errors.New("unexpected status code")
	errCircuitOpen = errors.New("circuit breaker open")
	errNoAPIKey    = errors.New("completion api key is not configured")
	errEmptyChoice = errors.New("completion response contained no choices")
)

// GroqClient calls Groq's OpenAI-compatible chat completions endpoint.
// Each Complete call is a single attempt bounded by a fixed timeout; the
// circuit breaker sheds calls while the backend is persistently failing.
type GroqClient struct {
	model   string
	apiKey  string
	baseURL string
	timeout time.Duration
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

const defaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"

// NewGroqClient creates a client for the given model. The http.Client is
// shared with the rest of the process; per-call deadlines come from timeout.
func NewGroqClient(client *http.Client, apiKey, model string, timeout time.Duration) *GroqClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "groq",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &GroqClient{
		model:   model,
		apiKey:  apiKey,
		baseURL: defaultGroqURL,
		timeout: timeout,
		client:  client,
		circuit: cb,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the (system, user) message pair and returns the generated
// text. No retry is performed; a timeout or backend error is terminal for
// this call only.
func (c *GroqClient) Complete(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", errNoAPIKey
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, errRateLimited
		}
		if resp.StatusCode >= 500 {
			return nil, errServerError
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
		}

		var payload chatResponse
		if decErr := json.NewDecoder(resp.Body).Decode(&payload); decErr != nil {
			return nil, decErr
		}
		return payload, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return "", err
	}

	payload, ok := result.(chatResponse)
	if !ok {
		return "", fmt.Errorf("unexpected result type from circuit breaker")
	}
	if len(payload.Choices) == 0 {
		return "", errEmptyChoice
	}
	return payload.Choices[0].Message.Content, nil
}
