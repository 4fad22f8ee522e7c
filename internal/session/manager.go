// Package session owns the authentication-token lifecycle that gates
// every remote call: storage, validity checking, refresh, and sign-out.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shelfsync/shelfsync/internal/state"
)

// ErrNotAuthenticated is returned when no usable session exists and the
// user must sign in again.
var ErrNotAuthenticated = errors.New("not signed in — run 'shelfsync login'")

// Manager owns the session: the token triple in the state file, expiry
// checks, refresh, and sign-out. Every remote call site obtains its
// Authorization header from here and never reads tokens directly.
type Manager struct {
	file     *state.File
	provider Provider
	now      func() time.Time
}

// New creates a Manager over the given state file and identity provider.
func New(file *state.File, provider Provider) *Manager {
	return &Manager{file: file, provider: provider, now: time.Now}
}

// SignIn exchanges credentials for a token set and stores it with the
// user's email.
func (m *Manager) SignIn(email, password string) error {
	ts, err := m.provider.PasswordGrant(email, password)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}
	st, err := m.file.Load()
	if err != nil {
		return err
	}
	st.AccessToken = ts.AccessToken
	st.IDToken = ts.IDToken
	st.RefreshToken = ts.RefreshToken
	st.Email = email
	return m.file.Save(st)
}

// Authenticated reports whether a usable session exists: both access and
// refresh tokens present and the access token unexpired. An expired
// access token triggers exactly one refresh attempt, and the refresh
// outcome is returned. A token that cannot be decoded ends the session.
func (m *Manager) Authenticated() bool {
	st, err := m.file.Load()
	if err != nil {
		return false
	}
	if !st.HasTokens() {
		return false
	}
	exp, err := tokenExpiry(st.AccessToken)
	if err != nil {
		m.clear(st)
		return false
	}
	if exp.After(m.now()) {
		return true
	}
	return m.Refresh() == nil
}

// Refresh exchanges the stored refresh token for a new triple. On success
// all three tokens are overwritten in the state file. On any failure —
// network, rejected token, provider error — every stored token is cleared
// so the next check routes to sign-in.
func (m *Manager) Refresh() error {
	st, err := m.file.Load()
	if err != nil {
		return err
	}
	if st.RefreshToken == "" {
		m.clear(st)
		return ErrNotAuthenticated
	}
	ts, err := m.provider.Refresh(st.RefreshToken)
	if err != nil {
		m.clear(st)
		return fmt.Errorf("refreshing session: %w", err)
	}
	st.AccessToken = ts.AccessToken
	st.IDToken = ts.IDToken
	st.RefreshToken = ts.RefreshToken
	return m.file.Save(st)
}

// AuthHeaders returns the headers every remote call must carry: the
// bearer Authorization when a token is present, and the JSON content
// type either way.
func (m *Manager) AuthHeaders() map[string]string {
	headers := map[string]string{"Content-Type": "application/json"}
	st, err := m.file.Load()
	if err == nil && st.AccessToken != "" {
		headers["Authorization"] = "Bearer " + st.AccessToken
	}
	return headers
}

// SignOut clears the stored tokens and best-effort revokes the refresh
// token at the provider. Never fails the caller.
func (m *Manager) SignOut() {
	st, err := m.file.Load()
	if err != nil {
		return
	}
	refresh := st.RefreshToken
	m.clear(st)
	if refresh != "" {
		_ = m.provider.Revoke(refresh)
	}
}

// Email returns the signed-in user's stored email, or empty.
func (m *Manager) Email() string {
	st, err := m.file.Load()
	if err != nil {
		return ""
	}
	return st.Email
}

func (m *Manager) clear(st *state.State) {
	st.ClearTokens()
	_ = m.file.Save(st)
}

func decodeJSON(r io.Reader, out interface{}) error {
	return json.NewDecoder(r).Decode(out)
}
