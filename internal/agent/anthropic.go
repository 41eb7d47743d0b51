package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	messagesPath     = "/v1/messages"
	anthropicVersion = "2023-06-01"
)

type messageParam struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type toolParam struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"input_schema"`
}

type messagesRequest struct {
	Model     string         `json:"model"`
	MaxTokens int            `json:"max_tokens"`
	System    string         `json:"system,omitempty"`
	Messages  []messageParam `json:"messages"`
	Tools     []toolParam    `json:"tools,omitempty"`
}

// messagesClient is a minimal wire client for the model provider's messages
// endpoint. It performs one completion per call; streaming happens at the
// session level, not the transport level.
type messagesClient struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func newMessagesClient(baseURL, apiKey string) *messagesClient {
	return &messagesClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{},
	}
}

func (c *messagesClient) createMessage(ctx context.Context, payload *messagesRequest) (*Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Anthropic-Version", anthropicVersion)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, parseProviderError(resp)
	}

	var msg Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return nil, err
	}

	return &msg, nil
}

// parseProviderError extracts the provider's error message from a failed
// response, falling back to the HTTP status when the body is unusable.
func parseProviderError(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return fmt.Errorf("model provider error: %s", resp.Status)
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Error.Message == "" {
		return fmt.Errorf("model provider error: %s", resp.Status)
	}

	return errors.New(payload.Error.Message)
}
