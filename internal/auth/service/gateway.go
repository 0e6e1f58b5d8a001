// Package service is the identity gateway: a thin wrapper around the
// provider's signup, password-grant and token-lookup calls. Provider errors
// are already mapped to the error taxonomy below this layer; nothing is
// retried or recovered here.
package service

import (
	"context"

	"github.com/home-central/backend/internal/auth/domain"
	"github.com/home-central/backend/internal/supabase"
)

type Gateway struct {
	provider *supabase.Lazy
}

// NewGateway prepares a gateway. The underlying provider client is built
// lazily on first use and shared for the life of the process.
func NewGateway(cfg supabase.Config) *Gateway {
	return &Gateway{provider: supabase.NewLazy(cfg)}
}

// Register creates a user with the provider. The returned token is empty when
// the provider wants the email confirmed before issuing a session.
func (g *Gateway) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	client, err := g.provider.Client()
	if err != nil {
		return nil, "", err
	}

	result, err := client.SignUp(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token := ""
	if result.Session != nil {
		token = result.Session.AccessToken
	}
	return &domain.User{ID: result.User.ID, Email: result.User.Email}, token, nil
}

// Authenticate exchanges credentials for an identity and a session token.
func (g *Gateway) Authenticate(ctx context.Context, email, password string) (*domain.User, string, error) {
	client, err := g.provider.Client()
	if err != nil {
		return nil, "", err
	}

	result, err := client.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	return &domain.User{ID: result.User.ID, Email: result.User.Email}, result.Session.AccessToken, nil
}

// Resolve returns the identity a bearer token represents.
func (g *Gateway) Resolve(ctx context.Context, token string) (*domain.User, error) {
	client, err := g.provider.Client()
	if err != nil {
		return nil, err
	}

	user, err := client.UserFromToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: user.ID, Email: user.Email}, nil
}

// Authorized returns a store handle that acts as the holder of the given
// token. The store's row-level policy keys on it; this service never filters
// rows itself.
func (g *Gateway) Authorized(token string) (*supabase.Client, error) {
	client, err := g.provider.Client()
	if err != nil {
		return nil, err
	}
	return client.WithToken(token), nil
}
