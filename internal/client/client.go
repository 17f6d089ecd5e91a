// Package client implements the concrete management API client: the
// dispatcher translating action descriptors into REST calls, and the
// per-entity resource clients that return wrapped entities.
package client

import (
	"context"
	"encoding/json"

	"github.com/benomatis/contentful-management/internal/http"
	"github.com/benomatis/contentful-management/pkg/cma"
)

// Client implements the cma.Client interface.
type Client struct {
	rest     *http.Client
	dispatch cma.DispatchFunc

	entries          cma.EntriesClient
	assets           cma.AssetsClient
	contentTypes     cma.ContentTypesClient
	webhooks         cma.WebhooksClient
	roles            cma.RolesClient
	apiKeys          cma.APIKeysClient
	spaceMemberships cma.SpaceMembershipsClient
	locales          cma.LocalesClient
}

// New creates a new management API client.
func New(ctx context.Context, config *cma.Config) (*Client, error) {
	if config == nil {
		return nil, cma.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, cma.ErrEndpointRequired
	}

	opts := buildHTTPOptions(config)
	rest := http.NewClient(config.Endpoint, config.AccessToken, opts...)

	client := &Client{rest: rest}
	client.dispatch = NewDispatcher(rest).Dispatch
	client.initializeResourceClients()

	return client, nil
}

// buildHTTPOptions translates config into transport options.
func buildHTTPOptions(config *cma.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	return opts
}

func (c *Client) initializeResourceClients() {
	c.entries = NewEntriesClient(c.dispatch)
	c.assets = NewAssetsClient(c.dispatch)
	c.contentTypes = NewContentTypesClient(c.dispatch)
	c.webhooks = NewWebhooksClient(c.dispatch)
	c.roles = NewRolesClient(c.dispatch)
	c.apiKeys = NewAPIKeysClient(c.dispatch)
	c.spaceMemberships = NewSpaceMembershipsClient(c.dispatch)
	c.locales = NewLocalesClient(c.dispatch)
}

// Entries implements cma.Client.Entries.
func (c *Client) Entries() cma.EntriesClient { return c.entries }

// Assets implements cma.Client.Assets.
func (c *Client) Assets() cma.AssetsClient { return c.assets }

// ContentTypes implements cma.Client.ContentTypes.
func (c *Client) ContentTypes() cma.ContentTypesClient { return c.contentTypes }

// Webhooks implements cma.Client.Webhooks.
func (c *Client) Webhooks() cma.WebhooksClient { return c.webhooks }

// Roles implements cma.Client.Roles.
func (c *Client) Roles() cma.RolesClient { return c.roles }

// APIKeys implements cma.Client.APIKeys.
func (c *Client) APIKeys() cma.APIKeysClient { return c.apiKeys }

// SpaceMemberships implements cma.Client.SpaceMemberships.
func (c *Client) SpaceMemberships() cma.SpaceMembershipsClient { return c.spaceMemberships }

// Locales implements cma.Client.Locales.
func (c *Client) Locales() cma.LocalesClient { return c.locales }

// Dispatch implements cma.Client.Dispatch.
func (c *Client) Dispatch(ctx context.Context, desc *cma.ActionDescriptor) ([]byte, error) {
	raw, err := c.dispatch(ctx, desc)

	return raw, err
}

// requireParams validates that the given name/value pairs are all
// non-empty, returning a synchronous validation error for the first
// missing one. No dispatch happens when validation fails.
func requireParams(pairs ...[2]string) error {
	for _, pair := range pairs {
		if pair[1] == "" {
			return &cma.ValidationError{Field: pair[0], Reason: "must not be empty"}
		}
	}

	return nil
}

// identityParams builds the descriptor params for a space-scoped entity.
func identityParams(spaceID, entityID string) map[string]string {
	params := map[string]string{cma.ParamSpaceID: spaceID}
	if entityID != "" {
		params[cma.ParamEntityID] = entityID
	}

	return params
}

// environmentParams builds the descriptor params for an
// environment-scoped entity.
func environmentParams(spaceID, environmentID, entityID string) map[string]string {
	params := identityParams(spaceID, entityID)
	params[cma.ParamEnvironmentID] = environmentID

	return params
}

// marshalPayload serializes a create payload.
func marshalPayload(payload any) (json.RawMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &cma.MalformedEntityError{Reason: "serializing payload: " + err.Error()}
	}

	return data, nil
}
