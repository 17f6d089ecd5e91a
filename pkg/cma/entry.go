package cma

import (
	"context"
	"encoding/json"
)

// EntryFields maps field id to a locale-indexed value. The value shape is
// defined by the entry's content type and is opaque to the wrapper.
type EntryFields map[string]map[string]any

// Entry is a wrapped entry. Fields and Metadata stay caller-mutable;
// Update sends whatever they hold at call time.
type Entry struct {
	entity

	Fields   EntryFields
	Metadata *Metadata
}

type entryEnvelope struct {
	Sys      Sys         `json:"sys"`
	Fields   EntryFields `json:"fields,omitempty"`
	Metadata *Metadata   `json:"metadata,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var envelope entryEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	e.sys = envelope.Sys
	e.Fields = envelope.Fields
	e.Metadata = envelope.Metadata

	return nil
}

// MarshalJSON implements json.Marshaler. The output is the entry's plain
// snapshot: sys plus the current field values.
func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryEnvelope{Sys: e.sys, Fields: e.Fields, Metadata: e.Metadata})
}

// WrapEntry wraps raw server JSON as an Entry.
func WrapEntry(dispatch DispatchFunc, raw json.RawMessage) (*Entry, error) {
	return Wrap[Entry](dispatch, raw)
}

// WrapEntryCollection wraps a raw list response as a collection of entries.
var WrapEntryCollection = WrapCollection(WrapEntry)

// Update sends the entry's current snapshot and returns the fresh entry
// the server responded with. The receiver is not mutated.
func (e *Entry) Update(ctx context.Context) (*Entry, error) {
	return roundTrip[Entry](ctx, &e.entity, TypeEntry, ActionUpdate, e, e.versionHeader())
}

// Delete removes the entry. The wrapped value must not be reused for
// further server calls afterwards.
func (e *Entry) Delete(ctx context.Context) error {
	_, err := e.perform(ctx, TypeEntry, ActionDelete, nil, e.versionHeader())

	return err
}

// Publish publishes the entry at its current version.
func (e *Entry) Publish(ctx context.Context) (*Entry, error) {
	return roundTrip[Entry](ctx, &e.entity, TypeEntry, ActionPublish, nil, e.versionHeader())
}

// Unpublish removes the published version.
func (e *Entry) Unpublish(ctx context.Context) (*Entry, error) {
	return roundTrip[Entry](ctx, &e.entity, TypeEntry, ActionUnpublish, nil, nil)
}

// Archive archives the entry. Only unpublished entries can be archived.
func (e *Entry) Archive(ctx context.Context) (*Entry, error) {
	return roundTrip[Entry](ctx, &e.entity, TypeEntry, ActionArchive, nil, nil)
}

// Unarchive restores an archived entry to draft.
func (e *Entry) Unarchive(ctx context.Context) (*Entry, error) {
	return roundTrip[Entry](ctx, &e.entity, TypeEntry, ActionUnarchive, nil, nil)
}
