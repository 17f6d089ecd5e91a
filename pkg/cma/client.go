package cma

import (
	"context"
)

// EntriesClient provides create/get/list access to entries. Mutations
// (update, publish, archive, delete) live on the wrapped Entry itself.
type EntriesClient interface {
	Create(ctx context.Context, spaceID, environmentID, contentTypeID string, fields EntryFields) (*Entry, error)
	Get(ctx context.Context, spaceID, environmentID, entryID string) (*Entry, error)
	List(ctx context.Context, spaceID, environmentID string, params *QueryParams) (*Collection[*Entry], error)
}

// AssetsClient provides create/get/list access to assets.
type AssetsClient interface {
	Create(ctx context.Context, spaceID, environmentID string, fields AssetFields) (*Asset, error)
	Get(ctx context.Context, spaceID, environmentID, assetID string) (*Asset, error)
	List(ctx context.Context, spaceID, environmentID string, params *QueryParams) (*Collection[*Asset], error)
}

// ContentTypesClient provides create/get/list access to content types.
type ContentTypesClient interface {
	Create(ctx context.Context, spaceID, environmentID string, contentType *ContentType) (*ContentType, error)
	Get(ctx context.Context, spaceID, environmentID, contentTypeID string) (*ContentType, error)
	List(ctx context.Context, spaceID, environmentID string, params *QueryParams) (*Collection[*ContentType], error)
}

// WebhooksClient provides create/get/list access to webhook definitions.
// Webhooks live at space scope; there is no environment id.
type WebhooksClient interface {
	Create(ctx context.Context, spaceID string, webhook *Webhook) (*Webhook, error)
	Get(ctx context.Context, spaceID, webhookID string) (*Webhook, error)
	List(ctx context.Context, spaceID string, params *QueryParams) (*Collection[*Webhook], error)
}

// RolesClient provides create/get/list access to space roles.
type RolesClient interface {
	Create(ctx context.Context, spaceID string, role *Role) (*Role, error)
	Get(ctx context.Context, spaceID, roleID string) (*Role, error)
	List(ctx context.Context, spaceID string, params *QueryParams) (*Collection[*Role], error)
}

// APIKeysClient provides create/get/list access to delivery API keys.
type APIKeysClient interface {
	Create(ctx context.Context, spaceID string, key *APIKey) (*APIKey, error)
	Get(ctx context.Context, spaceID, keyID string) (*APIKey, error)
	List(ctx context.Context, spaceID string, params *QueryParams) (*Collection[*APIKey], error)
}

// SpaceMembershipsClient provides get/list access to space memberships.
type SpaceMembershipsClient interface {
	Get(ctx context.Context, spaceID, membershipID string) (*SpaceMembership, error)
	List(ctx context.Context, spaceID string, params *QueryParams) (*Collection[*SpaceMembership], error)
}

// LocalesClient provides create/get/list access to environment locales.
type LocalesClient interface {
	Create(ctx context.Context, spaceID, environmentID string, locale *Locale) (*Locale, error)
	Get(ctx context.Context, spaceID, environmentID, localeID string) (*Locale, error)
	List(ctx context.Context, spaceID, environmentID string, params *QueryParams) (*Collection[*Locale], error)
}

// Client provides access to all resource-specific clients plus the raw
// dispatch function for callers that wrap entities themselves.
type Client interface {
	Entries() EntriesClient
	Assets() AssetsClient
	ContentTypes() ContentTypesClient
	Webhooks() WebhooksClient
	Roles() RolesClient
	APIKeys() APIKeysClient
	SpaceMemberships() SpaceMembershipsClient
	Locales() LocalesClient

	// Dispatch exposes the client's dispatch function.
	Dispatch(ctx context.Context, desc *ActionDescriptor) ([]byte, error)
}
