package session

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSet is the access/id/refresh triple issued by the identity provider.
type TokenSet struct {
	AccessToken  string
	IDToken      string
	RefreshToken string
}

// Provider issues and revokes token sets. Exactly the surface the session
// manager consumes from the identity provider.
type Provider interface {
	PasswordGrant(username, password string) (*TokenSet, error)
	Refresh(refreshToken string) (*TokenSet, error)
	Revoke(refreshToken string) error
}

// IdentityClient talks to an OAuth2-style identity provider: a token
// endpoint for the password and refresh-token grants, and a revocation
// endpoint for sign-out.
type IdentityClient struct {
	issuer   string
	clientID string
	http     *http.Client
}

// NewIdentityClient creates a client for the provider at the given issuer
// base URL.
func NewIdentityClient(issuer, clientID string) *IdentityClient {
	return &IdentityClient{
		issuer:   strings.TrimRight(issuer, "/"),
		clientID: clientID,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// PasswordGrant exchanges credentials for a token set.
func (c *IdentityClient) PasswordGrant(username, password string) (*TokenSet, error) {
	form := url.Values{
		"grant_type": {"password"},
		"client_id":  {c.clientID},
		"username":   {username},
		"password":   {password},
	}
	return c.token(form, "")
}

// Refresh exchanges the refresh token for a fresh token set. Providers may
// omit the refresh token from the response, in which case the old one
// stays valid and is carried over.
func (c *IdentityClient) Refresh(refreshToken string) (*TokenSet, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {c.clientID},
		"refresh_token": {refreshToken},
	}
	return c.token(form, refreshToken)
}

func (c *IdentityClient) token(form url.Values, fallbackRefresh string) (*TokenSet, error) {
	resp, err := c.http.PostForm(c.issuer+"/oauth2/token", form)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned %d", resp.StatusCode)
	}
	var tr tokenResponse
	if err := decodeJSON(resp.Body, &tr); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("identity provider returned no access token")
	}
	ts := &TokenSet{
		AccessToken:  tr.AccessToken,
		IDToken:      tr.IDToken,
		RefreshToken: tr.RefreshToken,
	}
	if ts.RefreshToken == "" {
		ts.RefreshToken = fallbackRefresh
	}
	return ts, nil
}

// Revoke invalidates the refresh token at the provider. Best effort; the
// caller ignores failures during sign-out.
func (c *IdentityClient) Revoke(refreshToken string) error {
	form := url.Values{
		"token":     {refreshToken},
		"client_id": {c.clientID},
	}
	resp, err := c.http.PostForm(c.issuer+"/oauth2/revoke", form)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("revoke returned %d", resp.StatusCode)
	}
	return nil
}
