package client

import (
	"context"
	"fmt"

	"github.com/benomatis/contentful-management/internal/constants"
	"github.com/benomatis/contentful-management/pkg/cma"
)

// EntriesClient implements cma.EntriesClient.
type EntriesClient struct {
	dispatch cma.DispatchFunc
}

// NewEntriesClient creates a new entries client.
func NewEntriesClient(dispatch cma.DispatchFunc) *EntriesClient {
	return &EntriesClient{dispatch: dispatch}
}

// Create implements cma.EntriesClient.Create. The content type id is
// carried in a header, per the management API contract.
func (c *EntriesClient) Create(ctx context.Context, spaceID, environmentID, contentTypeID string, fields cma.EntryFields) (*cma.Entry, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
		[2]string{"contentTypeId", contentTypeID},
	)
	if err != nil {
		return nil, err
	}

	payload, err := marshalPayload(map[string]any{"fields": fields})
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeEntry,
		Action:     cma.ActionCreate,
		Params:     environmentParams(spaceID, environmentID, ""),
		Payload:    payload,
		Headers:    map[string]string{constants.HeaderContentType: contentTypeID},
	})
	if err != nil {
		return nil, fmt.Errorf("creating entry: %w", err)
	}

	return cma.WrapEntry(c.dispatch, raw)
}

// Get implements cma.EntriesClient.Get.
func (c *EntriesClient) Get(ctx context.Context, spaceID, environmentID, entryID string) (*cma.Entry, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
		[2]string{"entryId", entryID},
	)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeEntry,
		Action:     cma.ActionGet,
		Params:     environmentParams(spaceID, environmentID, entryID),
	})
	if err != nil {
		return nil, fmt.Errorf("getting entry: %w", err)
	}

	return cma.WrapEntry(c.dispatch, raw)
}

// List implements cma.EntriesClient.List.
func (c *EntriesClient) List(ctx context.Context, spaceID, environmentID string, params *cma.QueryParams) (*cma.Collection[*cma.Entry], error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
	)
	if err != nil {
		return nil, err
	}

	desc := &cma.ActionDescriptor{
		EntityType: cma.TypeEntry,
		Action:     cma.ActionList,
		Params:     environmentParams(spaceID, environmentID, ""),
	}

	if params != nil {
		desc.Query = params.ToMap()
	}

	raw, err := c.dispatch(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	return cma.WrapEntryCollection(c.dispatch, raw)
}
