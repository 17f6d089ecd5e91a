package cma

import (
	"context"
	"encoding/json"
)

// APIKey is a wrapped delivery API key. The access token is issued by the
// server on creation and is read-only afterwards.
type APIKey struct {
	entity

	Name          string
	Description   string
	AccessToken   string
	Environments  []Link
	PreviewAPIKey *Link
}

type apiKeyEnvelope struct {
	Sys           Sys    `json:"sys"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	AccessToken   string `json:"accessToken,omitempty"`
	Environments  []Link `json:"environments,omitempty"`
	PreviewAPIKey *Link  `json:"preview_api_key,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *APIKey) UnmarshalJSON(data []byte) error {
	var envelope apiKeyEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	k.sys = envelope.Sys
	k.Name = envelope.Name
	k.Description = envelope.Description
	k.AccessToken = envelope.AccessToken
	k.Environments = envelope.Environments
	k.PreviewAPIKey = envelope.PreviewAPIKey

	return nil
}

// MarshalJSON implements json.Marshaler.
func (k *APIKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(apiKeyEnvelope{
		Sys:           k.sys,
		Name:          k.Name,
		Description:   k.Description,
		AccessToken:   k.AccessToken,
		Environments:  k.Environments,
		PreviewAPIKey: k.PreviewAPIKey,
	})
}

// WrapAPIKey wraps raw server JSON as an APIKey.
func WrapAPIKey(dispatch DispatchFunc, raw json.RawMessage) (*APIKey, error) {
	return Wrap[APIKey](dispatch, raw)
}

// WrapAPIKeyCollection wraps a raw list response as a collection of API
// keys.
var WrapAPIKeyCollection = WrapCollection(WrapAPIKey)

// Update sends the API key's current snapshot.
func (k *APIKey) Update(ctx context.Context) (*APIKey, error) {
	return roundTrip[APIKey](ctx, &k.entity, TypeAPIKey, ActionUpdate, k, k.versionHeader())
}

// Delete removes the API key.
func (k *APIKey) Delete(ctx context.Context) error {
	_, err := k.perform(ctx, TypeAPIKey, ActionDelete, nil, nil)

	return err
}
