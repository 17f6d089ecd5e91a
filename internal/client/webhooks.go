package client

import (
	"context"
	"fmt"

	"github.com/benomatis/contentful-management/pkg/cma"
)

// WebhooksClient implements cma.WebhooksClient.
type WebhooksClient struct {
	dispatch cma.DispatchFunc
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(dispatch cma.DispatchFunc) *WebhooksClient {
	return &WebhooksClient{dispatch: dispatch}
}

// Create implements cma.WebhooksClient.Create.
func (c *WebhooksClient) Create(ctx context.Context, spaceID string, webhook *cma.Webhook) (*cma.Webhook, error) {
	if err := requireParams([2]string{"spaceId", spaceID}); err != nil {
		return nil, err
	}

	if webhook == nil {
		return nil, &cma.ValidationError{Field: "webhook", Reason: "must not be nil"}
	}

	payload, err := marshalPayload(webhook)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeWebhook,
		Action:     cma.ActionCreate,
		Params:     identityParams(spaceID, ""),
		Payload:    payload,
	})
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	return cma.WrapWebhook(c.dispatch, raw)
}

// Get implements cma.WebhooksClient.Get.
func (c *WebhooksClient) Get(ctx context.Context, spaceID, webhookID string) (*cma.Webhook, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"webhookId", webhookID},
	)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeWebhook,
		Action:     cma.ActionGet,
		Params:     identityParams(spaceID, webhookID),
	})
	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	return cma.WrapWebhook(c.dispatch, raw)
}

// List implements cma.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context, spaceID string, params *cma.QueryParams) (*cma.Collection[*cma.Webhook], error) {
	if err := requireParams([2]string{"spaceId", spaceID}); err != nil {
		return nil, err
	}

	desc := &cma.ActionDescriptor{
		EntityType: cma.TypeWebhook,
		Action:     cma.ActionList,
		Params:     identityParams(spaceID, ""),
	}

	if params != nil {
		desc.Query = params.ToMap()
	}

	raw, err := c.dispatch(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	return cma.WrapWebhookCollection(c.dispatch, raw)
}
