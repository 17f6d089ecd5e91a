package client

import (
	"context"
	"encoding/json"
	"fmt"
	stdhttp "net/http"
	"net/url"

	"github.com/benomatis/contentful-management/internal/http"
	"github.com/benomatis/contentful-management/pkg/cma"
)

// entityRoute describes where an entity type lives in the management API
// URL layout and which lifecycle actions it supports.
type entityRoute struct {
	segment     string
	environment bool
	publishable bool
	archivable  bool
	processable bool
}

var entityRoutes = map[string]entityRoute{
	cma.TypeEntry:           {segment: "entries", environment: true, publishable: true, archivable: true},
	cma.TypeAsset:           {segment: "assets", environment: true, publishable: true, archivable: true, processable: true},
	cma.TypeContentType:     {segment: "content_types", environment: true, publishable: true},
	cma.TypeLocale:          {segment: "locales", environment: true},
	cma.TypeWebhook:         {segment: "webhook_definitions"},
	cma.TypeRole:            {segment: "roles"},
	cma.TypeAPIKey:          {segment: "api_keys"},
	cma.TypeSpaceMembership: {segment: "space_memberships"},
}

// Dispatcher translates action descriptors into management API requests.
// It implements the cma.DispatchFunc contract via its Dispatch method and
// is the single place that knows the API's URL layout.
type Dispatcher struct {
	rest *http.Client
}

// NewDispatcher creates a dispatcher over the given transport.
func NewDispatcher(rest *http.Client) *Dispatcher {
	return &Dispatcher{rest: rest}
}

// Dispatch resolves the descriptor to a method and path, performs the
// request, and returns the raw response body. Transport and API errors
// propagate unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, desc *cma.ActionDescriptor) (json.RawMessage, error) {
	method, path, err := resolveRoute(desc)
	if err != nil {
		return nil, err
	}

	var query url.Values

	if len(desc.Query) > 0 {
		query = url.Values{}
		for key, value := range desc.Query {
			query.Set(key, value)
		}
	}

	var body any
	if desc.Payload != nil {
		body = desc.Payload
	}

	resp, err := d.rest.Do(ctx, &http.Request{
		Method:  method,
		Path:    path,
		Query:   query,
		Body:    body,
		Headers: desc.Headers,
	})
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// resolveRoute maps a descriptor to an HTTP method and path, validating
// that the required identifying params are present and that the entity
// type supports the action.
func resolveRoute(desc *cma.ActionDescriptor) (string, string, error) {
	route, ok := entityRoutes[desc.EntityType]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", cma.ErrUnknownEntityType, desc.EntityType)
	}

	spaceID := desc.Params[cma.ParamSpaceID]
	if spaceID == "" {
		return "", "", &cma.ValidationError{Field: "params." + cma.ParamSpaceID, Reason: "a space id is required"}
	}

	base := "/spaces/" + spaceID

	if route.environment {
		environmentID := desc.Params[cma.ParamEnvironmentID]
		if environmentID == "" {
			return "", "", &cma.ValidationError{Field: "params." + cma.ParamEnvironmentID, Reason: "an environment id is required"}
		}

		base += "/environments/" + environmentID
	}

	base += "/" + route.segment

	switch desc.Action {
	case cma.ActionCreate:
		return stdhttp.MethodPost, base, nil
	case cma.ActionList:
		return stdhttp.MethodGet, base, nil
	}

	entityID := desc.Params[cma.ParamEntityID]
	if entityID == "" {
		return "", "", &cma.ValidationError{Field: "params." + cma.ParamEntityID, Reason: "an entity id is required"}
	}

	item := base + "/" + entityID

	switch desc.Action {
	case cma.ActionGet:
		return stdhttp.MethodGet, item, nil
	case cma.ActionUpdate:
		return stdhttp.MethodPut, item, nil
	case cma.ActionDelete:
		return stdhttp.MethodDelete, item, nil
	case cma.ActionPublish, cma.ActionUnpublish:
		if !route.publishable {
			return "", "", fmt.Errorf("%w: %s does not support %s", cma.ErrUnknownAction, desc.EntityType, desc.Action)
		}

		if desc.Action == cma.ActionPublish {
			return stdhttp.MethodPut, item + "/published", nil
		}

		return stdhttp.MethodDelete, item + "/published", nil
	case cma.ActionArchive, cma.ActionUnarchive:
		if !route.archivable {
			return "", "", fmt.Errorf("%w: %s does not support %s", cma.ErrUnknownAction, desc.EntityType, desc.Action)
		}

		if desc.Action == cma.ActionArchive {
			return stdhttp.MethodPut, item + "/archived", nil
		}

		return stdhttp.MethodDelete, item + "/archived", nil
	case cma.ActionProcess:
		if !route.processable {
			return "", "", fmt.Errorf("%w: %s does not support %s", cma.ErrUnknownAction, desc.EntityType, desc.Action)
		}

		locale := desc.Params[cma.ParamLocale]
		if locale == "" {
			return "", "", &cma.ValidationError{Field: "params." + cma.ParamLocale, Reason: "a locale code is required"}
		}

		return stdhttp.MethodPut, item + "/files/" + locale + "/process", nil
	}

	return "", "", fmt.Errorf("%w: %s", cma.ErrUnknownAction, desc.Action)
}
