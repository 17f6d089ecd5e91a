package cma

import (
	"context"
	"encoding/json"
)

// RolePolicy is one allow/deny rule of a role.
type RolePolicy struct {
	Effect     string         `json:"effect"               yaml:"effect"`
	Actions    any            `json:"actions"              yaml:"actions"`
	Constraint map[string]any `json:"constraint,omitempty" yaml:"constraint,omitempty"`
}

// Role is a wrapped space role.
type Role struct {
	entity

	Name        string
	Description string
	Permissions map[string]any
	Policies    []RolePolicy
}

type roleEnvelope struct {
	Sys         Sys            `json:"sys"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Permissions map[string]any `json:"permissions,omitempty"`
	Policies    []RolePolicy   `json:"policies,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Role) UnmarshalJSON(data []byte) error {
	var envelope roleEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	r.sys = envelope.Sys
	r.Name = envelope.Name
	r.Description = envelope.Description
	r.Permissions = envelope.Permissions
	r.Policies = envelope.Policies

	return nil
}

// MarshalJSON implements json.Marshaler.
func (r *Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(roleEnvelope{
		Sys:         r.sys,
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		Policies:    r.Policies,
	})
}

// WrapRole wraps raw server JSON as a Role.
func WrapRole(dispatch DispatchFunc, raw json.RawMessage) (*Role, error) {
	return Wrap[Role](dispatch, raw)
}

// WrapRoleCollection wraps a raw list response as a collection of roles.
var WrapRoleCollection = WrapCollection(WrapRole)

// Update sends the role's current snapshot.
func (r *Role) Update(ctx context.Context) (*Role, error) {
	return roundTrip[Role](ctx, &r.entity, TypeRole, ActionUpdate, r, r.versionHeader())
}

// Delete removes the role.
func (r *Role) Delete(ctx context.Context) error {
	_, err := r.perform(ctx, TypeRole, ActionDelete, nil, nil)

	return err
}
