package cma

import (
	"context"
	"encoding/json"
)

// Locale is a wrapped environment locale.
type Locale struct {
	entity

	Name         string
	Code         string
	FallbackCode *string
	Default      bool
	Optional     bool
	// ContentDeliveryAPI and ContentManagementAPI control which APIs
	// serve this locale's values.
	ContentDeliveryAPI   bool
	ContentManagementAPI bool
}

type localeEnvelope struct {
	Sys                  Sys     `json:"sys"`
	Name                 string  `json:"name"`
	Code                 string  `json:"code"`
	FallbackCode         *string `json:"fallbackCode"`
	Default              bool    `json:"default,omitempty"`
	Optional             bool    `json:"optional,omitempty"`
	ContentDeliveryAPI   bool    `json:"contentDeliveryApi"`
	ContentManagementAPI bool    `json:"contentManagementApi"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Locale) UnmarshalJSON(data []byte) error {
	var envelope localeEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	l.sys = envelope.Sys
	l.Name = envelope.Name
	l.Code = envelope.Code
	l.FallbackCode = envelope.FallbackCode
	l.Default = envelope.Default
	l.Optional = envelope.Optional
	l.ContentDeliveryAPI = envelope.ContentDeliveryAPI
	l.ContentManagementAPI = envelope.ContentManagementAPI

	return nil
}

// MarshalJSON implements json.Marshaler.
func (l *Locale) MarshalJSON() ([]byte, error) {
	return json.Marshal(localeEnvelope{
		Sys:                  l.sys,
		Name:                 l.Name,
		Code:                 l.Code,
		FallbackCode:         l.FallbackCode,
		Default:              l.Default,
		Optional:             l.Optional,
		ContentDeliveryAPI:   l.ContentDeliveryAPI,
		ContentManagementAPI: l.ContentManagementAPI,
	})
}

// WrapLocale wraps raw server JSON as a Locale.
func WrapLocale(dispatch DispatchFunc, raw json.RawMessage) (*Locale, error) {
	return Wrap[Locale](dispatch, raw)
}

// WrapLocaleCollection wraps a raw list response as a collection of
// locales.
var WrapLocaleCollection = WrapCollection(WrapLocale)

// Update sends the locale's current snapshot.
func (l *Locale) Update(ctx context.Context) (*Locale, error) {
	return roundTrip[Locale](ctx, &l.entity, TypeLocale, ActionUpdate, l, l.versionHeader())
}

// Delete removes the locale.
func (l *Locale) Delete(ctx context.Context) error {
	_, err := l.perform(ctx, TypeLocale, ActionDelete, nil, nil)

	return err
}
