package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public Bot API host.
	DefaultBaseURL = "https://api.telegram.org"
	// TokenEnvVar holds the bot credential.
	TokenEnvVar = "TELEGRAM_BOT_TOKEN"

	defaultTimeout = 10 * time.Second
	// Maximum response body size to read for error messages
	maxResponseBodySize = 1024
)

// ErrMissingToken is returned when no bot token is available at call time.
var ErrMissingToken = errors.New(TokenEnvVar + " environment variable not set")

// TokenSource returns the bot token. It is consulted on every call.
type TokenSource func() (string, error)

// EnvToken reads the bot token from the environment through getenv on each call.
func EnvToken(getenv func(string) string) TokenSource {
	return func() (string, error) {
		token := getenv(TokenEnvVar)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// Client calls the Bot API.
type Client struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
}

// New creates a Client. An empty baseURL selects DefaultBaseURL and a nil httpClient
// gets a client with the default timeout.
func New(baseURL string, tokens TokenSource, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		client:  httpClient,
	}
}

// SendMessage posts text into the given chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.call(ctx, "sendMessage", SendMessageRequest{ChatID: chatID, Text: text}, nil)
}

// SetWebhook registers webhookURL as the bot's webhook and returns the API response.
func (c *Client) SetWebhook(ctx context.Context, webhookURL string) (*APIResponse, error) {
	var apiResp APIResponse
	if err := c.call(ctx, "setWebhook", SetWebhookRequest{URL: webhookURL}, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// call posts payload to method. The response body is decoded into out unless out is nil;
// any 2xx counts as success.
func (c *Client) call(ctx context.Context, method string, payload any, out any) error {
	token, err := c.tokens()
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, stripURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to POST %s: %w", method, stripURL(err))
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return fmt.Errorf("%s returned status code %d: %s", method, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	return nil
}

// stripURL drops the request URL from transport errors; it embeds the bot token.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
