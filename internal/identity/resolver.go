// Package identity derives a stable per-user subject identifier from the
// tokens an OpenID Connect provider issued. The auth flow itself (PKCE,
// refresh, token storage) happens outside this application; only its
// resulting tokens are consumed here.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrIdentityUnresolved indicates that no subject could be obtained from
// any of the available sources
var ErrIdentityUnresolved = errors.New("identity could not be resolved")

// Tokens carries the raw authentication material. Either token may be absent.
type Tokens struct {
	AccessToken string
	IDToken     string
}

// Resolver extracts the subject (sub) claim from tokens, falling back to
// the provider's userinfo endpoint when neither token yields one.
type Resolver struct {
	issuer     string
	httpClient *http.Client
}

// NewResolver creates a resolver. issuer is the identity provider base URL
// used for the userinfo fallback; empty issuer disables the fallback.
func NewResolver(issuer string) *Resolver {
	return &Resolver{
		issuer: strings.TrimRight(issuer, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Resolve produces the subject identifier for the authenticated principal.
// Порядок: claims из ID token, затем из access token, затем userinfo.
// Сбой декодирования на любом шаге не фатален, просто идем дальше.
func (r *Resolver) Resolve(ctx context.Context, tokens Tokens) (string, error) {
	if sub := subjectFromToken(tokens.IDToken); sub != "" {
		return sub, nil
	}

	if sub := subjectFromToken(tokens.AccessToken); sub != "" {
		return sub, nil
	}

	// Сетевой fallback: fail-soft, без повторов
	if r.issuer != "" && tokens.AccessToken != "" {
		if sub, err := r.subjectFromUserinfo(ctx, tokens.AccessToken); err == nil && sub != "" {
			return sub, nil
		}
	}

	return "", ErrIdentityUnresolved
}

// subjectFromToken decodes the claims segment of a JWT without verifying
// the signature and returns its sub claim. Verification is the provider's
// concern; we only need the identifier. Returns empty string on any failure.
func subjectFromToken(token string) string {
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}

	return sub
}

// userinfoResponse is the part of the userinfo body we care about
type userinfoResponse struct {
	Sub string `json:"sub"`
}

// subjectFromUserinfo performs the synchronous userinfo lookup
// authenticated by the access token
func (r *Resolver) subjectFromUserinfo(ctx context.Context, accessToken string) (string, error) {
	url := r.issuer + "/protocol/openid-connect/userinfo"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("userinfo request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read userinfo response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	var userinfo userinfoResponse
	if err := json.Unmarshal(body, &userinfo); err != nil {
		return "", fmt.Errorf("failed to unmarshal userinfo response: %w", err)
	}

	return userinfo.Sub, nil
}
