package cmaclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benomatis/contentful-management/pkg/cma"
	"github.com/benomatis/contentful-management/pkg/cmaclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := cmaclient.New(context.Background(), nil)
		require.ErrorIs(t, err, cma.ErrConfigRequired)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := cmaclient.New(context.Background(), &cma.Config{AccessToken: "token"})
		require.ErrorIs(t, err, cma.ErrEndpointRequired)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		_, err := cmaclient.New(context.Background(), &cma.Config{Endpoint: "https://api.example.com"})
		require.ErrorIs(t, err, cma.ErrAccessTokenRequired)
	})

	t.Run("normalizes trailing slash", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			// Without normalization this would arrive as //spaces/...
			assert.Equal(t, "/spaces/space-1/environments/master/entries/entry-1", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(map[string]any{
				"sys": map[string]any{"id": "entry-1", "type": "Entry", "version": 1},
			})
		}))
		defer server.Close()

		client, err := cmaclient.NewWithToken(context.Background(), server.URL+"/", "token")
		require.NoError(t, err)

		entry, err := client.Entries().Get(context.Background(), "space-1", "master", "entry-1")
		require.NoError(t, err)
		assert.Equal(t, "entry-1", entry.Sys().ID)
	})
}

func TestClientEndToEnd(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()

	mux.HandleFunc("/spaces/space-1/environments/master/entries", func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost {
			http.Error(writer, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		assert.Equal(t, "Bearer cma-token", request.Header.Get("Authorization"))
		assert.Equal(t, "blogPost", request.Header.Get("X-Contentful-Content-Type"))

		var body struct {
			Fields cma.EntryFields `json:"fields"`
		}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(map[string]any{
			"sys": map[string]any{
				"id":      "entry-1",
				"type":    "Entry",
				"version": 1,
				"space": map[string]any{
					"sys": map[string]any{"id": "space-1", "type": "Link", "linkType": "Space"},
				},
				"environment": map[string]any{
					"sys": map[string]any{"id": "master", "type": "Link", "linkType": "Environment"},
				},
			},
			"fields": body.Fields,
		})
	})

	mux.HandleFunc("/spaces/space-1/environments/master/entries/entry-1/published", func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPut {
			http.Error(writer, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		assert.Equal(t, "1", request.Header.Get("X-Contentful-Version"))

		_ = json.NewEncoder(writer).Encode(map[string]any{
			"sys": map[string]any{
				"id":               "entry-1",
				"type":             "Entry",
				"version":          2,
				"publishedVersion": 1,
				"space": map[string]any{
					"sys": map[string]any{"id": "space-1", "type": "Link", "linkType": "Space"},
				},
				"environment": map[string]any{
					"sys": map[string]any{"id": "master", "type": "Link", "linkType": "Environment"},
				},
			},
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := cmaclient.NewWithToken(context.Background(), server.URL, "cma-token")
	require.NoError(t, err)

	ctx := context.Background()

	entry, err := client.Entries().Create(ctx, "space-1", "master", "blogPost", cma.EntryFields{
		"title": {"en-US": "Hello"},
	})
	require.NoError(t, err)
	assert.True(t, entry.IsDraft())

	published, err := entry.Publish(ctx)
	require.NoError(t, err)
	assert.True(t, published.IsPublished())
	assert.Equal(t, 1, published.Sys().PublishedVersion)

	// The original wrapper keeps its pre-publish snapshot.
	assert.True(t, entry.IsDraft())
}
