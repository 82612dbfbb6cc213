package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Errors
var (
	ErrProviderRejected  = errors.New("identity provider rejected the token")
	ErrMalformedResponse = errors.New("identity provider response missing subject")
)

// Identity is a verified external identity. Subject is the stable
// identifier the provider assigns to the account; the remaining fields
// are optional profile data, nil when the provider omitted them.
type Identity struct {
	Subject string
	Email   *string
	Name    *string
	Picture *string
}

// Verifier validates an externally issued access token
type Verifier interface {
	Verify(ctx context.Context, accessToken string) (*Identity, error)
}

// GoogleVerifierConfig configures the Google tokeninfo verifier
type GoogleVerifierConfig struct {
	// TokenInfoURL is the verification endpoint (overridable for tests)
	TokenInfoURL string
	// HTTPClient is the client used for verification calls
	HTTPClient *http.Client
}

// DefaultGoogleVerifierConfig returns production defaults with a bounded
// request timeout
func DefaultGoogleVerifierConfig() GoogleVerifierConfig {
	return GoogleVerifierConfig{
		TokenInfoURL: "https://www.googleapis.com/oauth2/v3/tokeninfo",
		HTTPClient:   &http.Client{Timeout: 5 * time.Second},
	}
}

// GoogleVerifier validates access tokens against Google's tokeninfo
// endpoint. Google is authoritative: no token format validation happens
// here, and failures are never retried.
type GoogleVerifier struct {
	cfg GoogleVerifierConfig
}

// NewGoogleVerifier creates a new GoogleVerifier
func NewGoogleVerifier(cfg GoogleVerifierConfig) *GoogleVerifier {
	defaults := DefaultGoogleVerifierConfig()
	if cfg.TokenInfoURL == "" {
		cfg.TokenInfoURL = defaults.TokenInfoURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaults.HTTPClient
	}
	return &GoogleVerifier{cfg: cfg}
}

// Ensure GoogleVerifier implements the interface
var _ Verifier = (*GoogleVerifier)(nil)

// Verify checks the token with Google and extracts the subject and
// profile claims
func (v *GoogleVerifier) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	verifyURL := fmt.Sprintf("%s?access_token=%s", v.cfg.TokenInfoURL, url.QueryEscape(accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, verifyURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google verification request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrProviderRejected, resp.StatusCode)
	}

	var claims struct {
		Subject string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("google tokeninfo decode failed: %w", err)
	}

	if claims.Subject == "" {
		return nil, ErrMalformedResponse
	}

	return &Identity{
		Subject: claims.Subject,
		Email:   optional(claims.Email),
		Name:    optional(claims.Name),
		Picture: optional(claims.Picture),
	}, nil
}

// optional maps an absent or empty claim to nil, never to an empty string
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
