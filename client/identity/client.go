package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ecoally/client/session"
)

// Client talks to the identity service over HTTP. Responses arrive wrapped
// in the standard envelope: {success, data} on success, {success, error,
// message} on failure. The bearer token is read from the session store on
// every call, so a cleared store immediately de-authenticates the client.
type Client struct {
	base   string
	http   *http.Client
	tokens session.Store
}

// NewClient creates a client for the service at base, e.g.
// "http://localhost:9090".
func NewClient(base string, tokens session.Store) *Client {
	return &Client{
		base:   base,
		http:   &http.Client{Timeout: 30 * time.Second},
		tokens: tokens,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// callError is a non-2xx response before taxonomy mapping.
type callError struct {
	Status  int
	Message string
}

func (e *callError) Error() string { return e.Message }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = "Request failed"
		}
		return &callError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, &res); err != nil {
		return nil, asAuthError(err)
	}
	return &res, nil
}

func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", payload, &res); err != nil {
		return nil, asAuthError(err)
	}
	return &res, nil
}

func (c *Client) Me(ctx context.Context) (*MeResult, error) {
	var res MeResult
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &res); err != nil {
		return nil, asAuthError(err)
	}
	return &res, nil
}

func (c *Client) PurchaseShield(ctx context.Context) (*PurchaseResult, error) {
	var res PurchaseResult
	if err := c.do(ctx, http.MethodPost, "/api/gamification/shields/purchase", nil, &res); err != nil {
		var ce *callError
		if errors.As(err, &ce) {
			return nil, &TransactionError{Message: ce.Message}
		}
		return nil, err
	}
	return &res, nil
}

func asAuthError(err error) error {
	var ce *callError
	if errors.As(err, &ce) {
		return &AuthenticationError{Message: ce.Message}
	}
	return err
}
