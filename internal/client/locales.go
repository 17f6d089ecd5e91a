package client

import (
	"context"
	"fmt"

	"github.com/benomatis/contentful-management/pkg/cma"
)

// LocalesClient implements cma.LocalesClient.
type LocalesClient struct {
	dispatch cma.DispatchFunc
}

// NewLocalesClient creates a new locales client.
func NewLocalesClient(dispatch cma.DispatchFunc) *LocalesClient {
	return &LocalesClient{dispatch: dispatch}
}

// Create implements cma.LocalesClient.Create.
func (c *LocalesClient) Create(ctx context.Context, spaceID, environmentID string, locale *cma.Locale) (*cma.Locale, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
	)
	if err != nil {
		return nil, err
	}

	if locale == nil {
		return nil, &cma.ValidationError{Field: "locale", Reason: "must not be nil"}
	}

	payload, err := marshalPayload(locale)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeLocale,
		Action:     cma.ActionCreate,
		Params:     environmentParams(spaceID, environmentID, ""),
		Payload:    payload,
	})
	if err != nil {
		return nil, fmt.Errorf("creating locale: %w", err)
	}

	return cma.WrapLocale(c.dispatch, raw)
}

// Get implements cma.LocalesClient.Get.
func (c *LocalesClient) Get(ctx context.Context, spaceID, environmentID, localeID string) (*cma.Locale, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
		[2]string{"localeId", localeID},
	)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeLocale,
		Action:     cma.ActionGet,
		Params:     environmentParams(spaceID, environmentID, localeID),
	})
	if err != nil {
		return nil, fmt.Errorf("getting locale: %w", err)
	}

	return cma.WrapLocale(c.dispatch, raw)
}

// List implements cma.LocalesClient.List.
func (c *LocalesClient) List(ctx context.Context, spaceID, environmentID string, params *cma.QueryParams) (*cma.Collection[*cma.Locale], error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"environmentId", environmentID},
	)
	if err != nil {
		return nil, err
	}

	desc := &cma.ActionDescriptor{
		EntityType: cma.TypeLocale,
		Action:     cma.ActionList,
		Params:     environmentParams(spaceID, environmentID, ""),
	}

	if params != nil {
		desc.Query = params.ToMap()
	}

	raw, err := c.dispatch(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("listing locales: %w", err)
	}

	return cma.WrapLocaleCollection(c.dispatch, raw)
}
