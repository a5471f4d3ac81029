package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is returned when the service answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sdk: %d %s", e.StatusCode, e.Message)
}

// Client talks to a running service instance. Unauthenticated operations
// hang off the Client directly; Authenticate returns a Session for the
// owner dashboard endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with sensible timeouts.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated client bound to one owner's session token.
type Session struct {
	client *Client
	token  string

	// User is the login-time snapshot. Live state should be re-read via
	// the API, not trusted from here.
	User SessionUser
}

// SignUp registers a new account and triggers the verification email.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResponse, error) {
	var out SignUpResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/sign-up", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckUsername reports whether a username can still be claimed.
func (c *Client) CheckUsername(ctx context.Context, username string) (*CheckUsernameResponse, error) {
	path := "/api/check-username-unique?username=" + url.QueryEscape(username)
	var out CheckUsernameResponse
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyCode confirms an account with its emailed verification code.
func (c *Client) VerifyCode(ctx context.Context, req VerifyCodeRequest) (*Envelope, error) {
	var out Envelope
	if err := c.doJSON(ctx, http.MethodPost, "/api/verify-code", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn authenticates and returns a Session for dashboard operations.
func (c *Client) SignIn(ctx context.Context, identifier, password string) (*Session, error) {
	var out SignInResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/sign-in", "",
		SignInRequest{Identifier: identifier, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &Session{client: c, token: out.AccessToken, User: out.User}, nil
}

// SendMessage delivers an anonymous message. No session is required and no
// sender identity is transmitted.
func (c *Client) SendMessage(ctx context.Context, username, content string) (*SendMessageResponse, error) {
	var out SendMessageResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/send-message", "",
		SendMessageRequest{Username: username, Content: content}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Suggest fetches suggested questions a sender can pick from.
func (c *Client) Suggest(ctx context.Context) (*SuggestResponse, error) {
	var out SuggestResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/suggest-messages", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Token exposes the raw session token, e.g. for storing across restarts.
func (s *Session) Token() string { return s.token }

// Messages lists the owner's received messages, newest first.
func (s *Session) Messages(ctx context.Context) (*MessagesResponse, error) {
	var out MessagesResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/messages", s.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMessage removes one received message by id.
func (s *Session) DeleteMessage(ctx context.Context, messageID string) (*Envelope, error) {
	var out Envelope
	path := "/api/messages/" + url.PathEscape(messageID)
	if err := s.client.doJSON(ctx, http.MethodDelete, path, s.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptMessages reads the live acceptance flag.
func (s *Session) AcceptMessages(ctx context.Context) (*AcceptMessagesResponse, error) {
	var out AcceptMessagesResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/accept-messages", s.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetAcceptMessages flips the acceptance flag.
func (s *Session) SetAcceptMessages(ctx context.Context, accepting bool) (*AcceptMessagesResponse, error) {
	var out AcceptMessagesResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/api/accept-messages", s.token,
		AcceptMessagesRequest{AcceptMessages: accepting}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// doJSON sends an optional JSON body and decodes the JSON response.
// Non-2xx statuses come back as *APIError with the envelope's message.
func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("sdk: encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("sdk: create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("sdk: send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("sdk: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env Envelope
		_ = json.Unmarshal(raw, &env)
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("sdk: decode response: %w", err)
		}
	}
	return nil
}
