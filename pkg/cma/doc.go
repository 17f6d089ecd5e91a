// Package cma defines the public types and interfaces for the content
// management API client.
//
// The package centers on wrapped entities: plain data structures decoded
// from server JSON with a fixed set of operations attached (Update,
// Delete, Publish, Unpublish, Archive, Unarchive, and asset processing).
// Every operation serializes the entity's current state, performs exactly
// one round-trip through an injected DispatchFunc, and returns a freshly
// wrapped entity built from the server's response. The original value is
// never mutated by a round-trip; the server-owned sys block is exposed
// only by value and cannot be changed through the wrapper.
//
// Use the pkg/cmaclient package to construct a working client:
//
//	client, err := cmaclient.New(ctx, &cma.Config{
//		Endpoint:    "https://api.contentful.com",
//		AccessToken: "CFPAT-...",
//	})
//	entry, err := client.Entries().Get(ctx, "space", "master", "entry-id")
//	entry.Fields["title"]["en-US"] = "Updated title"
//	entry, err = entry.Update(ctx)
//	entry, err = entry.Publish(ctx)
package cma
