package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fortunapp/fortuna/internal/config"
	"github.com/fortunapp/fortuna/pkg/clients"
)

// Client talks to the external text-generation collaborator. The service only
// passes a prompt and history through and hands the generated text back.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.GeneratorAddress,
		client: client,
	}
}

type generateRequest struct {
	Prompt  string   `json:"prompt"`
	History []string `json:"history,omitempty"`
}

type generateResponse struct {
	Text string `json:"text"`
}

func (c *Client) Generate(ctx context.Context, prompt string, history []string) (string, error) {
	body, err := json.Marshal(generateRequest{Prompt: prompt, History: history})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	statusCode, respBody, err := c.client.Post(c.url+"/api/generate", nil, body)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("generator returned status %d", statusCode)
	}

	var resp generateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse generate response: %w", err)
	}
	return resp.Text, nil
}
