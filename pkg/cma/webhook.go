package cma

import (
	"context"
	"encoding/json"
)

// WebhookHeader is one custom header sent with webhook calls. Secret
// headers are write-only: the server never returns their values.
type WebhookHeader struct {
	Key    string `json:"key"              yaml:"key"`
	Value  string `json:"value,omitempty"  yaml:"value,omitempty"`
	Secret bool   `json:"secret,omitempty" yaml:"secret,omitempty"`
}

// Webhook is a wrapped webhook definition. Webhooks live at space scope
// and are never published or archived; their operation set is update and
// delete only.
type Webhook struct {
	entity

	Name              string
	URL               string
	Topics            []string
	HTTPBasicUsername string
	Headers           []WebhookHeader
	Filters           []map[string]any
	Transformation    map[string]any
	Active            bool
}

type webhookEnvelope struct {
	Sys               Sys              `json:"sys"`
	Name              string           `json:"name"`
	URL               string           `json:"url"`
	Topics            []string         `json:"topics"`
	HTTPBasicUsername string           `json:"httpBasicUsername,omitempty"`
	Headers           []WebhookHeader  `json:"headers,omitempty"`
	Filters           []map[string]any `json:"filters,omitempty"`
	Transformation    map[string]any   `json:"transformation,omitempty"`
	Active            bool             `json:"active"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *Webhook) UnmarshalJSON(data []byte) error {
	var envelope webhookEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	w.sys = envelope.Sys
	w.Name = envelope.Name
	w.URL = envelope.URL
	w.Topics = envelope.Topics
	w.HTTPBasicUsername = envelope.HTTPBasicUsername
	w.Headers = envelope.Headers
	w.Filters = envelope.Filters
	w.Transformation = envelope.Transformation
	w.Active = envelope.Active

	return nil
}

// MarshalJSON implements json.Marshaler.
func (w *Webhook) MarshalJSON() ([]byte, error) {
	return json.Marshal(webhookEnvelope{
		Sys:               w.sys,
		Name:              w.Name,
		URL:               w.URL,
		Topics:            w.Topics,
		HTTPBasicUsername: w.HTTPBasicUsername,
		Headers:           w.Headers,
		Filters:           w.Filters,
		Transformation:    w.Transformation,
		Active:            w.Active,
	})
}

// WrapWebhook wraps raw server JSON as a Webhook.
func WrapWebhook(dispatch DispatchFunc, raw json.RawMessage) (*Webhook, error) {
	return Wrap[Webhook](dispatch, raw)
}

// WrapWebhookCollection wraps a raw list response as a collection of
// webhooks.
var WrapWebhookCollection = WrapCollection(WrapWebhook)

// Update sends the webhook's current snapshot.
func (w *Webhook) Update(ctx context.Context) (*Webhook, error) {
	return roundTrip[Webhook](ctx, &w.entity, TypeWebhook, ActionUpdate, w, w.versionHeader())
}

// Delete removes the webhook definition.
func (w *Webhook) Delete(ctx context.Context) error {
	_, err := w.perform(ctx, TypeWebhook, ActionDelete, nil, nil)

	return err
}
