package client

import (
	"context"
	"fmt"

	"github.com/benomatis/contentful-management/pkg/cma"
)

// ContentTypesClient implements cma.ContentTypesClient.
type ContentTypesClient struct {
	dispatch cma.DispatchFunc
}

// NewContentTypesClient creates a new content types client.
func NewContentTypesClient(dispatch cma.DispatchFunc) *ContentTypesClient {
	return &ContentTypesClient{dispatch: dispatch}
}

// Create implements cma.ContentTypesClient.Create.
func (c *ContentTypesClient) Create(ctx context.Context, spaceID, environmentID string, contentType *cma.ContentType) (*cma.ContentType, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
	)
	if err != nil {
		return nil, err
	}

	if contentType == nil {
		return nil, &cma.ValidationError{Field: "contentType", Reason: "must not be nil"}
	}

	payload, err := marshalPayload(contentType)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeContentType,
		Action:     cma.ActionCreate,
		Params:     environmentParams(spaceID, environmentID, ""),
		Payload:    payload,
	})
	if err != nil {
		return nil, fmt.Errorf("creating content type: %w", err)
	}

	return cma.WrapContentType(c.dispatch, raw)
}

// Get implements cma.ContentTypesClient.Get.
func (c *ContentTypesClient) Get(ctx context.Context, spaceID, environmentID, contentTypeID string) (*cma.ContentType, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
		[2]string{"contentTypeId", contentTypeID},
	)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeContentType,
		Action:     cma.ActionGet,
		Params:     environmentParams(spaceID, environmentID, contentTypeID),
	})
	if err != nil {
		return nil, fmt.Errorf("getting content type: %w", err)
	}

	return cma.WrapContentType(c.dispatch, raw)
}

// List implements cma.ContentTypesClient.List.
func (c *ContentTypesClient) List(ctx context.Context, spaceID, environmentID string, params *cma.QueryParams) (*cma.Collection[*cma.ContentType], error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
	)
	if err != nil {
		return nil, err
	}

	desc := &cma.ActionDescriptor{
		EntityType: cma.TypeContentType,
		Action:     cma.ActionList,
		Params:     environmentParams(spaceID, environmentID, ""),
	}

	if params != nil {
		desc.Query = params.ToMap()
	}

	raw, err := c.dispatch(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("listing content types: %w", err)
	}

	return cma.WrapContentTypeCollection(c.dispatch, raw)
}
