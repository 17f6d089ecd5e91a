package cma

import (
	"context"
	"encoding/json"
)

// SpaceMembership is a wrapped space membership: one user's admin flag
// and role links within a space. The user back-reference lives in sys.
type SpaceMembership struct {
	entity

	Admin bool
	Roles []Link
	User  *Link
}

type spaceMembershipEnvelope struct {
	Sys   Sys    `json:"sys"`
	Admin bool   `json:"admin"`
	Roles []Link `json:"roles,omitempty"`
	User  *Link  `json:"user,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *SpaceMembership) UnmarshalJSON(data []byte) error {
	var envelope spaceMembershipEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	m.sys = envelope.Sys
	m.Admin = envelope.Admin
	m.Roles = envelope.Roles
	m.User = envelope.User

	return nil
}

// MarshalJSON implements json.Marshaler.
func (m *SpaceMembership) MarshalJSON() ([]byte, error) {
	return json.Marshal(spaceMembershipEnvelope{
		Sys:   m.sys,
		Admin: m.Admin,
		Roles: m.Roles,
		User:  m.User,
	})
}

// WrapSpaceMembership wraps raw server JSON as a SpaceMembership.
func WrapSpaceMembership(dispatch DispatchFunc, raw json.RawMessage) (*SpaceMembership, error) {
	return Wrap[SpaceMembership](dispatch, raw)
}

// WrapSpaceMembershipCollection wraps a raw list response as a collection
// of space memberships.
var WrapSpaceMembershipCollection = WrapCollection(WrapSpaceMembership)

// Update sends the membership's current snapshot.
func (m *SpaceMembership) Update(ctx context.Context) (*SpaceMembership, error) {
	return roundTrip[SpaceMembership](ctx, &m.entity, TypeSpaceMembership, ActionUpdate, m, m.versionHeader())
}

// Delete removes the membership.
func (m *SpaceMembership) Delete(ctx context.Context) error {
	_, err := m.perform(ctx, TypeSpaceMembership, ActionDelete, nil, nil)

	return err
}
