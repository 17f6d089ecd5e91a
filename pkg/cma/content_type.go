package cma

import (
	"context"
	"encoding/json"
)

// ContentTypeField defines one field of a content type.
type ContentTypeField struct {
	ID           string                `json:"id"                    yaml:"id"`
	Name         string                `json:"name"                  yaml:"name"`
	Type         string                `json:"type"                  yaml:"type"`
	LinkType     string                `json:"linkType,omitempty"    yaml:"linkType,omitempty"`
	Items        *ContentTypeFieldItem `json:"items,omitempty"       yaml:"items,omitempty"`
	Required     bool                  `json:"required,omitempty"    yaml:"required,omitempty"`
	Localized    bool                  `json:"localized,omitempty"   yaml:"localized,omitempty"`
	Disabled     bool                  `json:"disabled,omitempty"    yaml:"disabled,omitempty"`
	Omitted      bool                  `json:"omitted,omitempty"     yaml:"omitted,omitempty"`
	Validations  []map[string]any      `json:"validations,omitempty" yaml:"validations,omitempty"`
	DefaultValue map[string]any        `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
}

// ContentTypeFieldItem defines the element type of an Array field.
type ContentTypeFieldItem struct {
	Type        string           `json:"type"                  yaml:"type"`
	LinkType    string           `json:"linkType,omitempty"    yaml:"linkType,omitempty"`
	Validations []map[string]any `json:"validations,omitempty" yaml:"validations,omitempty"`
}

// ContentType is a wrapped content type.
type ContentType struct {
	entity

	Name         string
	Description  string
	DisplayField string
	Fields       []ContentTypeField
}

type contentTypeEnvelope struct {
	Sys          Sys                `json:"sys"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	DisplayField string             `json:"displayField,omitempty"`
	Fields       []ContentTypeField `json:"fields"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ContentType) UnmarshalJSON(data []byte) error {
	var envelope contentTypeEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	c.sys = envelope.Sys
	c.Name = envelope.Name
	c.Description = envelope.Description
	c.DisplayField = envelope.DisplayField
	c.Fields = envelope.Fields

	return nil
}

// MarshalJSON implements json.Marshaler.
func (c *ContentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(contentTypeEnvelope{
		Sys:          c.sys,
		Name:         c.Name,
		Description:  c.Description,
		DisplayField: c.DisplayField,
		Fields:       c.Fields,
	})
}

// WrapContentType wraps raw server JSON as a ContentType.
func WrapContentType(dispatch DispatchFunc, raw json.RawMessage) (*ContentType, error) {
	return Wrap[ContentType](dispatch, raw)
}

// WrapContentTypeCollection wraps a raw list response as a collection of
// content types.
var WrapContentTypeCollection = WrapCollection(WrapContentType)

// Update sends the content type's current snapshot.
func (c *ContentType) Update(ctx context.Context) (*ContentType, error) {
	return roundTrip[ContentType](ctx, &c.entity, TypeContentType, ActionUpdate, c, c.versionHeader())
}

// Delete removes the content type. Only unpublished content types can be
// deleted.
func (c *ContentType) Delete(ctx context.Context) error {
	_, err := c.perform(ctx, TypeContentType, ActionDelete, nil, c.versionHeader())

	return err
}

// Publish activates the content type at its current version.
func (c *ContentType) Publish(ctx context.Context) (*ContentType, error) {
	return roundTrip[ContentType](ctx, &c.entity, TypeContentType, ActionPublish, nil, c.versionHeader())
}

// Unpublish deactivates the content type.
func (c *ContentType) Unpublish(ctx context.Context) (*ContentType, error) {
	return roundTrip[ContentType](ctx, &c.entity, TypeContentType, ActionUnpublish, nil, nil)
}
