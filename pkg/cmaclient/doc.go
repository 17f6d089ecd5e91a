// Package cmaclient provides the main entry point for creating content
// management API clients.
//
// Usage:
//
//	client, err := cmaclient.NewWithToken(ctx, "cma.example.com", token)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	entry, err := client.Entries().Get(ctx, "space", "master", "entry-id")
package cmaclient
