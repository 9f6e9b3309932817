// Package session is the single authority for "who is logged in". It owns the
// in-memory session, persists it to the durable local store so a restart does
// not force re-authentication, and performs the login exchange.
//
// Persistence is whole-record: the token and identity rows are written
// together and cleared together, never one without the other.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dstepanovs/notedesk/internal/logging"
	"github.com/dstepanovs/notedesk/internal/models"
	"github.com/dstepanovs/notedesk/internal/store"
)

// Store keys. The token row holds the raw bearer string, the user row a
// JSON-serialized models.Identity.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Authenticator exchanges credentials for an access token. The API client
// implements it.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}

type Manager struct {
	store store.Store
	auth  Authenticator
	log   logging.Logger

	current models.Session
}

func NewManager(st store.Store, auth Authenticator, log logging.Logger) *Manager {
	return &Manager{store: st, auth: auth, log: log}
}

// Restore populates the in-memory session from the durable store. Anything
// short of a fully parsable token+identity pair counts as "never logged in":
// partial or corrupt rows are cleared and the session stays empty. Restore
// never fails the caller.
func (m *Manager) Restore(ctx context.Context) {
	token, err := m.store.Get(ctx, keyToken)
	if err != nil {
		m.log.Warn(ctx, "session restore: token read failed", "error", err)
		return
	}
	user, err := m.store.Get(ctx, keyUser)
	if err != nil {
		m.log.Warn(ctx, "session restore: user read failed", "error", err)
		return
	}

	if len(token) == 0 || len(user) == 0 {
		if len(token) != 0 || len(user) != 0 {
			// One row without the other is an invalid layout; drop the leftover.
			m.clearPersisted(ctx)
		}
		return
	}

	var identity models.Identity
	if err := json.Unmarshal(user, &identity); err != nil || identity.Email == "" {
		m.log.Warn(ctx, "session restore: corrupt identity, treating as absent")
		m.clearPersisted(ctx)
		return
	}

	m.current = models.Session{Token: string(token), Identity: identity}
	m.log.Info(ctx, "session restored", "email", identity.Email)
}

// Login exchanges credentials for a token, derives the display identity from
// the token's claims (falling back to the supplied email), and persists the
// new session. On failure the previous session, in memory and on disk, is
// left untouched and a *AuthenticationError is returned.
func (m *Manager) Login(ctx context.Context, email, password string) (models.Session, error) {
	token, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		m.log.Warn(ctx, "login rejected", "email", email, "error", err)
		return models.Session{}, &AuthenticationError{Message: authMessage(err)}
	}

	identity := models.Identity{Email: email}
	if claimed, ok := claimedEmail(token); ok {
		identity.Email = claimed
	}

	session := models.Session{Token: token, Identity: identity}
	if err := m.persist(ctx, session); err != nil {
		// Roll the store back to the empty layout; memory keeps the prior session.
		m.clearPersisted(ctx)
		return models.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}

	m.current = session
	m.log.Info(ctx, "login succeeded", "email", identity.Email)
	return session, nil
}

// Logout clears the in-memory session and removes the persisted rows. It
// always succeeds from the caller's point of view; store trouble is logged.
func (m *Manager) Logout(ctx context.Context) {
	m.current = models.Session{}
	m.clearPersisted(ctx)
	m.log.Info(ctx, "logged out")
}

// Current returns the in-memory session.
func (m *Manager) Current() models.Session {
	return m.current
}

// Token implements the API client's token source.
func (m *Manager) Token() (string, bool) {
	return m.current.Token, m.current.Active()
}

func (m *Manager) persist(ctx context.Context, s models.Session) error {
	user, err := json.Marshal(s.Identity)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, keyToken, []byte(s.Token)); err != nil {
		return err
	}
	return m.store.Set(ctx, keyUser, user)
}

func (m *Manager) clearPersisted(ctx context.Context) {
	if err := m.store.Delete(ctx, keyToken); err != nil {
		m.log.Warn(ctx, "failed to delete persisted token", "error", err)
	}
	if err := m.store.Delete(ctx, keyUser); err != nil {
		m.log.Warn(ctx, "failed to delete persisted user", "error", err)
	}
}

// authMessage picks the user-facing text for a failed login. API errors
// already carry the service's detail string in Error().
func authMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "authentication failed"
}
