package cma

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/benomatis/contentful-management/internal/constants"
)

// entity is the shared core embedded in every wrapped entity type. It
// holds the frozen sys block and the closed-over dispatch function. The
// sys block is unexported and reachable only through Sys(), which returns
// a copy, so callers cannot change server-owned metadata through the
// wrapper.
type entity struct {
	sys      Sys
	dispatch DispatchFunc
}

// wrappable is what the generic wrap machinery needs from an entity type.
type wrappable interface {
	attach(dispatch DispatchFunc)
	checkSys() error
}

func (e *entity) attach(dispatch DispatchFunc) {
	e.dispatch = dispatch
}

func (e *entity) checkSys() error {
	if e.sys.ID == "" {
		return &MalformedEntityError{EntityType: e.sys.Type, Reason: "sys.id is missing"}
	}

	if e.sys.Type == "" {
		return &MalformedEntityError{Reason: "sys.type is missing"}
	}

	return nil
}

// Sys returns a copy of the entity's metadata block. Mutating the copy
// has no effect on the wrapped entity.
func (e *entity) Sys() Sys {
	return e.sys
}

// ID returns the entity's id.
func (e *entity) ID() string {
	return e.sys.ID
}

// Version returns the entity's current version.
func (e *entity) Version() int {
	return e.sys.Version
}

// IsPublished reports whether the entity has a published version.
func (e *entity) IsPublished() bool {
	return e.sys.PublishedVersion > 0
}

// IsUpdated reports whether the entity is published and has unpublished
// changes on top of the published version.
func (e *entity) IsUpdated() bool {
	return e.sys.PublishedVersion > 0 && e.sys.Version > e.sys.PublishedVersion+1
}

// IsDraft reports whether the entity has never been published.
func (e *entity) IsDraft() bool {
	return e.sys.PublishedVersion == 0
}

// IsArchived reports whether the entity is archived.
func (e *entity) IsArchived() bool {
	return e.sys.ArchivedVersion > 0
}

// identity collects the identifying params for a dispatch: entity id plus
// the space/environment/organization back-references present in sys.
func (e *entity) identity() map[string]string {
	params := map[string]string{ParamEntityID: e.sys.ID}

	if id := e.sys.SpaceID(); id != "" {
		params[ParamSpaceID] = id
	}

	if id := e.sys.EnvironmentID(); id != "" {
		params[ParamEnvironmentID] = id
	}

	if id := e.sys.OrganizationID(); id != "" {
		params[ParamOrganizationID] = id
	}

	return params
}

// versionHeader returns the optimistic-concurrency header for the
// entity's current version.
func (e *entity) versionHeader() map[string]string {
	return map[string]string{constants.HeaderVersion: strconv.Itoa(e.sys.Version)}
}

// perform serializes the snapshot (nil for payload-less actions), builds
// one action descriptor from the entity's identity, and dispatches it
// exactly once. The snapshot is marshaled at call time, so fields mutated
// after wrapping are what the dispatcher sees.
func (e *entity) perform(ctx context.Context, entityType, action string, snapshot any, headers map[string]string) (json.RawMessage, error) {
	if e.dispatch == nil {
		return nil, ErrNoDispatcher
	}

	var payload json.RawMessage

	if snapshot != nil {
		data, err := json.Marshal(snapshot)
		if err != nil {
			return nil, fmt.Errorf("serializing %s snapshot: %w", entityType, err)
		}

		payload = data
	}

	return e.dispatch(ctx, &ActionDescriptor{
		EntityType: entityType,
		Action:     action,
		Params:     e.identity(),
		Payload:    payload,
		Headers:    headers,
	})
}

// Wrap decodes raw server JSON into the entity type T, validates its sys
// block, and attaches the dispatch function. The raw bytes are decoded
// into a fresh value, so later mutation of the caller's copy of the input
// cannot reach the wrapped entity. No network call happens at wrap time.
func Wrap[T any, P interface {
	*T
	wrappable
}](dispatch DispatchFunc, raw json.RawMessage) (P, error) {
	var value T

	wrapped := P(&value)

	if err := json.Unmarshal(raw, wrapped); err != nil {
		return nil, &MalformedEntityError{Reason: fmt.Sprintf("decoding raw data: %v", err)}
	}

	if err := wrapped.checkSys(); err != nil {
		return nil, err
	}

	wrapped.attach(dispatch)

	return wrapped, nil
}

// roundTrip performs one action and re-wraps the dispatcher's response as
// a fresh entity. The receiving entity is left untouched.
func roundTrip[T any, P interface {
	*T
	wrappable
}](ctx context.Context, e *entity, entityType, action string, snapshot any, headers map[string]string) (P, error) {
	raw, err := e.perform(ctx, entityType, action, snapshot, headers)
	if err != nil {
		return nil, err
	}

	return Wrap[T, P](e.dispatch, raw)
}
