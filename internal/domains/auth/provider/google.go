package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"news-backend/internal/config"
	"news-backend/internal/domains/auth/model"
	"news-backend/internal/infrastructure/metrics"
)

// IdentityProvider resolves an opaque access token into an Identity.
type IdentityProvider interface {
	Resolve(ctx context.Context, accessToken string) (*model.Identity, error)
}

// GoogleProvider calls Google's userinfo endpoint. The token is never
// inspected locally; Google is the single source of truth for its validity.
type GoogleProvider struct {
	client      *http.Client
	userInfoURL string
}

func NewGoogleProvider(cfg *config.GoogleConfig) *GoogleProvider {
	return &GoogleProvider{
		client:      &http.Client{Timeout: cfg.Timeout},
		userInfoURL: cfg.UserInfoURL,
	}
}

// Resolve fetches the user's profile for the given access token. Every
// failure mode — network error, non-2xx status, unusable body — collapses
// into ErrUnauthenticated, matching how callers treat a rejected token.
func (p *GoogleProvider) Resolve(ctx context.Context, accessToken string) (*model.Identity, error) {
	endpoint := fmt.Sprintf("%s?alt=json&access_token=%s", p.userInfoURL, url.QueryEscape(accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building userinfo request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		metrics.RecordIdentityLookup(false)
		return nil, fmt.Errorf("%w: calling userinfo endpoint: %v", model.ErrUnauthenticated, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordIdentityLookup(false)
		return nil, fmt.Errorf("%w: userinfo endpoint returned status %d", model.ErrUnauthenticated, resp.StatusCode)
	}

	var identity model.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		metrics.RecordIdentityLookup(false)
		return nil, fmt.Errorf("%w: decoding userinfo response: %v", model.ErrUnauthenticated, err)
	}

	if identity.Name == "" {
		metrics.RecordIdentityLookup(false)
		return nil, fmt.Errorf("%w: userinfo response missing name", model.ErrUnauthenticated)
	}

	metrics.RecordIdentityLookup(true)
	return &identity, nil
}
