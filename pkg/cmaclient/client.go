package cmaclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/benomatis/contentful-management/internal/client"
	"github.com/benomatis/contentful-management/pkg/cma"
)

// New creates a new content management API client from a full config.
func New(ctx context.Context, config *cma.Config) (cma.Client, error) {
	if config == nil {
		return nil, cma.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, cma.ErrEndpointRequired
	}

	if config.AccessToken == "" {
		return nil, cma.ErrAccessTokenRequired
	}

	// Normalize endpoint
	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	impl, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return impl, nil
}

// NewWithToken creates a client for the given endpoint using a static
// management token.
func NewWithToken(ctx context.Context, endpoint, accessToken string) (cma.Client, error) {
	return New(ctx, &cma.Config{
		Endpoint:    endpoint,
		AccessToken: accessToken,
	})
}
