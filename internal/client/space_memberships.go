package client

import (
	"context"
	"fmt"

	"github.com/benomatis/contentful-management/pkg/cma"
)

// SpaceMembershipsClient implements cma.SpaceMembershipsClient.
type SpaceMembershipsClient struct {
	dispatch cma.DispatchFunc
}

// NewSpaceMembershipsClient creates a new space memberships client.
func NewSpaceMembershipsClient(dispatch cma.DispatchFunc) *SpaceMembershipsClient {
	return &SpaceMembershipsClient{dispatch: dispatch}
}

// Get implements cma.SpaceMembershipsClient.Get.
func (c *SpaceMembershipsClient) Get(ctx context.Context, spaceID, membershipID string) (*cma.SpaceMembership, error) {
	err := requireParams(
		[2]string{"spaceId", spaceID},
		[2]string{"membershipId", membershipID},
	)
	if err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, &cma.ActionDescriptor{
		EntityType: cma.TypeSpaceMembership,
		Action:     cma.ActionGet,
		Params:     identityParams(spaceID, membershipID),
	})
	if err != nil {
		return nil, fmt.Errorf("getting space membership: %w", err)
	}

	return cma.WrapSpaceMembership(c.dispatch, raw)
}

// List implements cma.SpaceMembershipsClient.List.
func (c *SpaceMembershipsClient) List(ctx context.Context, spaceID string, params *cma.QueryParams) (*cma.Collection[*cma.SpaceMembership], error) {
	if err := requireParams([2]string{"spaceId", spaceID}); err != nil {
		return nil, err
	}

	desc := &cma.ActionDescriptor{
		EntityType: cma.TypeSpaceMembership,
		Action:     cma.ActionList,
		Params:     identityParams(spaceID, ""),
	}

	if params != nil {
		desc.Query = params.ToMap()
	}

	raw, err := c.dispatch(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("listing space memberships: %w", err)
	}

	return cma.WrapSpaceMembershipCollection(c.dispatch, raw)
}
