package client

import (
	"context"
	"fmt"

	"github.com/benomatis/contentful-management/pkg/cma"
)

// RolesClient implements cma.RolesClient.
type RolesClient struct {
	dispatch cma.DispatchFunc
}

// NewRolesClient creates a new roles client.
func NewRolesClient(dispatch cma.DispatchFunc) *RolesClient {
	return &RolesClient{dispatch: dispatch}
}

// Create implements cma.RolesClient.Create.
func (c *RolesClient) Create(ctx context.Context, spaceID string, role *cma.Role) (*cma.Role, error) {
	if err := requireParams([2]string{"spaceId", spaceID}); err != nil {
		return nil, err
	}

	if role == nil {
		return nil, &cma.ValidationError{Field: "role", Reason: "must not be nil"}
	}

	payload, err := marshalPayload(role)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeRole,
		Action:     cma.ActionCreate,
		Params:     identityParams(spaceID, ""),
		Payload:    payload,
	})
	if err != nil {
		return nil, fmt.Errorf("creating role: %w", err)
	}

	return cma.WrapRole(c.dispatch, raw)
}

// Get implements cma.RolesClient.Get.
func (c *RolesClient) Get(ctx context.Context, spaceID, roleID string) (*cma.Role, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"roleId", roleID},
	)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeRole,
		Action:     cma.ActionGet,
		Params:     identityParams(spaceID, roleID),
	})
	if err != nil {
		return nil, fmt.Errorf("getting role: %w", err)
	}

	return cma.WrapRole(c.dispatch, raw)
}

// List implements cma.RolesClient.List.
func (c *RolesClient) List(ctx context.Context, spaceID string, params *cma.QueryParams) (*cma.Collection[*cma.Role], error) {
	if err := requireParams([2]string{"spaceId", spaceID}); err != nil {
		return nil, err
	}

	desc := &cma.ActionDescriptor{
		EntityType: cma.TypeRole,
		Action:     cma.ActionList,
		Params:     identityParams(spaceID, ""),
	}

	if params != nil {
		desc.Query = params.ToMap()
	}

	raw, err := c.dispatch(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}

	return cma.WrapRoleCollection(c.dispatch, raw)
}
