// Package session is the single source of truth for "who is logged in".
// A Store pairs the durable credential vault with the API client and is
// passed explicitly to every controller that needs it; there is no ambient
// package-level session.
package session

import (
	"context"
	"fmt"

	"github.com/HardenedIot/console/internal/api"
	"github.com/HardenedIot/console/internal/model"
)

// AuthError is a missing, invalid or expired credential.
type AuthError struct {
	Reason string
	cause  error
}

func (e *AuthError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.cause)
	}
	return e.Reason
}

func (e *AuthError) Unwrap() error { return e.cause }

func errNotAuthenticated() *AuthError { return &AuthError{Reason: "not authenticated"} }

type Store struct {
	vault *Vault
	api   *api.Client
}

// New wires the vault to the API client. The client must have been built
// with the same vault as its header source so requests pick up the
// credential the moment login stores it.
func New(vault *Vault, client *api.Client) *Store {
	return &Store{vault: vault, api: client}
}

// Login authenticates against the backend and, on success, persists the
// bearer credential together with the user snapshot.
func (s *Store) Login(ctx context.Context, email, password string) (model.User, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return model.User{}, &AuthError{Reason: "login failed", cause: err}
	}
	if err := s.vault.SetCredentials(ctx, resp.Token, resp.User); err != nil {
		return model.User{}, err
	}
	return resp.User, nil
}

// Register creates an account. It does not log the new user in.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) error {
	return s.api.Register(ctx, req)
}

// Logout clears the stored credential and snapshot. It is idempotent and
// needs no network call to succeed.
func (s *Store) Logout(ctx context.Context) error {
	return s.vault.Clear(ctx)
}

// CurrentUser re-validates the stored credential by fetching the profile.
// It fails with an AuthError when no credential is stored or when the
// backend rejects the credential (expired/revoked).
func (s *Store) CurrentUser(ctx context.Context) (model.User, error) {
	if s.vault.Token() == "" {
		return model.User{}, errNotAuthenticated()
	}
	user, err := s.api.Me(ctx)
	if err != nil {
		return model.User{}, &AuthError{Reason: "session re-validation failed", cause: err}
	}
	return user, nil
}

// CachedUser returns the stored snapshot without a network round trip.
func (s *Store) CachedUser() (model.User, bool) { return s.vault.User() }

// Authenticated reports whether a credential is stored. It says nothing
// about whether the backend still accepts it.
func (s *Store) Authenticated() bool { return s.vault.Token() != "" }

// AuthHeaders delegates to the vault. Never fails.
func (s *Store) AuthHeaders() map[string]string { return s.vault.AuthHeaders() }
