package client

import (
	"context"
	"fmt"

	"github.com/benomatis/contentful-management/pkg/cma"
)

// APIKeysClient implements cma.APIKeysClient.
type APIKeysClient struct {
	dispatch cma.DispatchFunc
}

// NewAPIKeysClient creates a new API keys client.
func NewAPIKeysClient(dispatch cma.DispatchFunc) *APIKeysClient {
	return &APIKeysClient{dispatch: dispatch}
}

// Create implements cma.APIKeysClient.Create.
func (c *APIKeysClient) Create(ctx context.Context, spaceID string, key *cma.APIKey) (*cma.APIKey, error) {
	if err := requireParams([2]string{"spaceId", spaceID}); err != nil {
		return nil, err
	}

	if key == nil {
		return nil, &cma.ValidationError{Field: "key", Reason: "must not be nil"}
	}

	payload, err := marshalPayload(key)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeAPIKey,
		Action:     cma.ActionCreate,
		Params:     identityParams(spaceID, ""),
		Payload:    payload,
	})
	if err != nil {
		return nil, fmt.Errorf("creating api key: %w", err)
	}

	return cma.WrapAPIKey(c.dispatch, raw)
}

// Get implements cma.APIKeysClient.Get.
func (c *APIKeysClient) Get(ctx context.Context, spaceID, keyID string) (*cma.APIKey, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"keyId", keyID},
	)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeAPIKey,
		Action:     cma.ActionGet,
		Params:     identityParams(spaceID, keyID),
	})
	if err != nil {
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	return cma.WrapAPIKey(c.dispatch, raw)
}

// List implements cma.APIKeysClient.List.
func (c *APIKeysClient) List(ctx context.Context, spaceID string, params *cma.QueryParams) (*cma.Collection[*cma.APIKey], error) {
	if err := requireParams([2]string{"spaceId", spaceID}); err != nil {
		return nil, err
	}

	desc := &cma.ActionDescriptor{
		EntityType: cma.TypeAPIKey,
		Action:     cma.ActionList,
		Params:     identityParams(spaceID, ""),
	}

	if params != nil {
		desc.Query = params.ToMap()
	}

	raw, err := c.dispatch(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("listing api keys: %w", err)
	}

	return cma.WrapAPIKeyCollection(c.dispatch, raw)
}
