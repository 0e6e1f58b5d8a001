package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
)

// AuthUser is the identity GoTrue reports for a credential or token.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an issued access token.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// SignUpResult holds the created or signed-in user. Session is nil when the
// provider requires email confirmation before issuing a token.
type SignUpResult struct {
	User    AuthUser
	Session *Session
}

// SignUp registers a new user with GoTrue. Provider rejections (duplicate
// email, weak password) come back as KindInvalidRequest with the provider's
// message.
func (c *Client) SignUp(ctx context.Context, email, password string) (*SignUpResult, error) {
	body, err := c.authPost(ctx, "/auth/v1/signup", email, password, KindInvalidRequest)
	if err != nil {
		return nil, err
	}
	return parseSignUp(body)
}

// SignInWithPassword exchanges email/password credentials for a session.
// Invalid credentials come back as KindUnauthenticated.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*SignUpResult, error) {
	body, err := c.authPost(ctx, "/auth/v1/token?grant_type=password", email, password, KindUnauthenticated)
	if err != nil {
		return nil, err
	}

	result, err := parseSignUp(body)
	if err != nil {
		return nil, err
	}
	if result.Session == nil {
		return nil, &Error{Kind: KindUnexpected, Message: "identity provider returned no session"}
	}
	return result, nil
}

// UserFromToken resolves a bearer token to the identity it represents.
// Invalid or expired tokens come back as KindUnauthenticated.
func (c *Client) UserFromToken(ctx context.Context, token string) (*AuthUser, error) {
	reqURL := c.baseURL + "/auth/v1/user"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	body, err := c.authDo(req, KindUnauthenticated)
	if err != nil {
		return nil, err
	}

	var user AuthUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &user, nil
}

func (c *Client) authPost(ctx context.Context, path, email, password string, failureKind Kind) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	return c.authDo(req, failureKind)
}

// authDo performs a GoTrue request. Any 4xx from the provider maps to
// failureKind carrying the provider's message; 5xx stays unexpected.
func (c *Client) authDo(req *http.Request, failureKind Kind) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 500 {
		message := errorMessage(body)
		if message == "" {
			message = fmt.Sprintf("identity provider error: status %d", resp.StatusCode)
		}
		return nil, &Error{Kind: KindUnexpected, Message: message}
	}
	if resp.StatusCode >= 400 {
		message := errorMessage(body)
		if message == "" {
			message = fmt.Sprintf("identity provider error: status %d", resp.StatusCode)
		}
		return nil, &Error{Kind: failureKind, Message: message}
	}

	return body, nil
}

// parseSignUp handles both GoTrue response shapes: a session object with the
// user nested inside, or a bare user object when confirmation is pending.
func parseSignUp(body []byte) (*SignUpResult, error) {
	var payload struct {
		Session
		User *AuthUser `json:"user"`
		AuthUser
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal auth response: %w", err)
	}

	result := &SignUpResult{}
	if payload.User != nil {
		result.User = *payload.User
	} else {
		result.User = payload.AuthUser
	}
	if payload.Session.AccessToken != "" {
		session := payload.Session
		result.Session = &session
	}
	return result, nil
}
