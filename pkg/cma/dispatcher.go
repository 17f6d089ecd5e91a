package cma

import (
	"context"
	"encoding/json"
)

// Actions an entity operation can describe. Every mutating method on a
// wrapped entity builds exactly one descriptor and calls dispatch once.
const (
	ActionCreate    = "create"
	ActionGet       = "get"
	ActionList      = "list"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionPublish   = "publish"
	ActionUnpublish = "unpublish"
	ActionArchive   = "archive"
	ActionUnarchive = "unarchive"
	ActionProcess   = "process"
)

// Param keys used in ActionDescriptor.Params.
const (
	ParamSpaceID        = "spaceId"
	ParamEnvironmentID  = "environmentId"
	ParamOrganizationID = "organizationId"
	ParamEntityID       = "entityId"
	ParamLocale         = "locale"
)

// ActionDescriptor describes one server round-trip: which entity type,
// which action, the identifying params, and the optional payload and
// extra headers. The descriptor never contains URLs; translating it into
// an HTTP request is the dispatcher's job.
type ActionDescriptor struct {
	EntityType string
	Action     string
	Params     map[string]string
	Payload    json.RawMessage
	Query      map[string]string
	Headers    map[string]string
}

// DispatchFunc performs the round-trip for a described action and returns
// the raw response body. It is the sole boundary to the transport: the
// entity layer never constructs URLs, never adds auth, and never retries
// transport failures. Errors are propagated to the caller unchanged.
type DispatchFunc func(ctx context.Context, desc *ActionDescriptor) (json.RawMessage, error)
