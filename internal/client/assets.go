package client

import (
	"context"
	"fmt"

	"github.com/benomatis/contentful-management/pkg/cma"
)

// AssetsClient implements cma.AssetsClient.
type AssetsClient struct {
	dispatch cma.DispatchFunc
}

// NewAssetsClient creates a new assets client.
func NewAssetsClient(dispatch cma.DispatchFunc) *AssetsClient {
	return &AssetsClient{dispatch: dispatch}
}

// Create implements cma.AssetsClient.Create.
func (c *AssetsClient) Create(ctx context.Context, spaceID, environmentID string, fields cma.AssetFields) (*cma.Asset, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
	)
	if err != nil {
		return nil, err
	}

	payload, err := marshalPayload(map[string]any{"fields": fields})
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeAsset,
		Action:     cma.ActionCreate,
		Params:     environmentParams(spaceID, environmentID, ""),
		Payload:    payload,
	})
	if err != nil {
		return nil, fmt.Errorf("creating asset: %w", err)
	}

	return cma.WrapAsset(c.dispatch, raw)
}

// Get implements cma.AssetsClient.Get.
func (c *AssetsClient) Get(ctx context.Context, spaceID, environmentID, assetID string) (*cma.Asset, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
		[2]string{"assetId", assetID},
	)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeAsset,
		Action:     cma.ActionGet,
		Params:     environmentParams(spaceID, environmentID, assetID),
	})
	if err != nil {
		return nil, fmt.Errorf("getting asset: %w", err)
	}

	return cma.WrapAsset(c.dispatch, raw)
}

// List implements cma.AssetsClient.List.
func (c *AssetsClient) List(ctx context.Context, spaceID, environmentID string, params *cma.QueryParams) (*cma.Collection[*cma.Asset], error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
	)
	if err != nil {
		return nil, err
	}

	desc := &cma.ActionDescriptor{
		EntityType: cma.TypeAsset,
		Action:     cma.ActionList,
		Params:     environmentParams(spaceID, environmentID, ""),
	}

	if params != nil {
		desc.Query = params.ToMap()
	}

	raw, err := c.dispatch(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	return cma.WrapAssetCollection(c.dispatch, raw)
}
