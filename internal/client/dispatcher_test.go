package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benomatis/contentful-management/internal/client"
	cmahttp "github.com/benomatis/contentful-management/internal/http"
	"github.com/benomatis/contentful-management/pkg/cma"
)

// newEchoDispatcher returns a dispatcher backed by a server that echoes
// the method and path of every request.
func newEchoDispatcher(t *testing.T) *client.Dispatcher {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_ = json.NewEncoder(writer).Encode(map[string]string{
			"method": request.Method,
			"path":   request.URL.Path,
			"query":  request.URL.RawQuery,
		})
	}))
	t.Cleanup(server.Close)

	return client.NewDispatcher(cmahttp.NewClient(server.URL, "test-token"))
}

func echoed(t *testing.T, raw json.RawMessage) (method, path, query string) {
	t.Helper()

	var result map[string]string

	require.NoError(t, json.Unmarshal(raw, &result))

	return result["method"], result["path"], result["query"]
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDispatcherRouting(t *testing.T) {
	t.Parallel()

	environmentScoped := map[string]string{
		cma.ParamSpaceID:       "space-1",
		cma.ParamEnvironmentID: "master",
		cma.ParamEntityID:      "id-1",
	}
	spaceScoped := map[string]string{
		cma.ParamSpaceID:  "space-1",
		cma.ParamEntityID: "id-1",
	}

	tests := []struct {
		name       string
		desc       *cma.ActionDescriptor
		wantMethod string
		wantPath   string
	}{
		{
			name: "create entry",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeEntry,
				Action:     cma.ActionCreate,
				Params:     map[string]string{cma.ParamSpaceID: "space-1", cma.ParamEnvironmentID: "master"},
			},
			wantMethod: http.MethodPost,
			wantPath:   "/spaces/space-1/environments/master/entries",
		},
		{
			name: "list assets",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeAsset,
				Action:     cma.ActionList,
				Params:     map[string]string{cma.ParamSpaceID: "space-1", cma.ParamEnvironmentID: "master"},
			},
			wantMethod: http.MethodGet,
			wantPath:   "/spaces/space-1/environments/master/assets",
		},
		{
			name: "get entry",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeEntry,
				Action:     cma.ActionGet,
				Params:     environmentScoped,
			},
			wantMethod: http.MethodGet,
			wantPath:   "/spaces/space-1/environments/master/entries/id-1",
		},
		{
			name: "update content type",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeContentType,
				Action:     cma.ActionUpdate,
				Params:     environmentScoped,
				Payload:    json.RawMessage(`{"name": "Post"}`),
			},
			wantMethod: http.MethodPut,
			wantPath:   "/spaces/space-1/environments/master/content_types/id-1",
		},
		{
			name: "delete locale",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeLocale,
				Action:     cma.ActionDelete,
				Params:     environmentScoped,
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/spaces/space-1/environments/master/locales/id-1",
		},
		{
			name: "publish entry",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeEntry,
				Action:     cma.ActionPublish,
				Params:     environmentScoped,
			},
			wantMethod: http.MethodPut,
			wantPath:   "/spaces/space-1/environments/master/entries/id-1/published",
		},
		{
			name: "unpublish asset",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeAsset,
				Action:     cma.ActionUnpublish,
				Params:     environmentScoped,
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/spaces/space-1/environments/master/assets/id-1/published",
		},
		{
			name: "archive entry",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeEntry,
				Action:     cma.ActionArchive,
				Params:     environmentScoped,
			},
			wantMethod: http.MethodPut,
			wantPath:   "/spaces/space-1/environments/master/entries/id-1/archived",
		},
		{
			name: "unarchive entry",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeEntry,
				Action:     cma.ActionUnarchive,
				Params:     environmentScoped,
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/spaces/space-1/environments/master/entries/id-1/archived",
		},
		{
			name: "process asset file",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeAsset,
				Action:     cma.ActionProcess,
				Params: map[string]string{
					cma.ParamSpaceID:       "space-1",
					cma.ParamEnvironmentID: "master",
					cma.ParamEntityID:      "id-1",
					cma.ParamLocale:        "en-US",
				},
			},
			wantMethod: http.MethodPut,
			wantPath:   "/spaces/space-1/environments/master/assets/id-1/files/en-US/process",
		},
		{
			name: "webhooks live at space scope",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeWebhook,
				Action:     cma.ActionGet,
				Params:     spaceScoped,
			},
			wantMethod: http.MethodGet,
			wantPath:   "/spaces/space-1/webhook_definitions/id-1",
		},
		{
			name: "roles live at space scope",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeRole,
				Action:     cma.ActionList,
				Params:     map[string]string{cma.ParamSpaceID: "space-1"},
			},
			wantMethod: http.MethodGet,
			wantPath:   "/spaces/space-1/roles",
		},
		{
			name: "api keys live at space scope",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeAPIKey,
				Action:     cma.ActionCreate,
				Params:     map[string]string{cma.ParamSpaceID: "space-1"},
				Payload:    json.RawMessage(`{"name": "key"}`),
			},
			wantMethod: http.MethodPost,
			wantPath:   "/spaces/space-1/api_keys",
		},
		{
			name: "space memberships live at space scope",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeSpaceMembership,
				Action:     cma.ActionGet,
				Params:     spaceScoped,
			},
			wantMethod: http.MethodGet,
			wantPath:   "/spaces/space-1/space_memberships/id-1",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			dispatcher := newEchoDispatcher(t)

			raw, err := dispatcher.Dispatch(context.Background(), testCase.desc)
			require.NoError(t, err)

			method, path, _ := echoed(t, raw)
			assert.Equal(t, testCase.wantMethod, method)
			assert.Equal(t, testCase.wantPath, path)
		})
	}
}

func TestDispatcherValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		desc      *cma.ActionDescriptor
		wantField string
	}{
		{
			name: "missing space id",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeEntry,
				Action:     cma.ActionList,
				Params:     map[string]string{cma.ParamEnvironmentID: "master"},
			},
			wantField: "params.spaceId",
		},
		{
			name: "missing environment id",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeEntry,
				Action:     cma.ActionList,
				Params:     map[string]string{cma.ParamSpaceID: "space-1"},
			},
			wantField: "params.environmentId",
		},
		{
			name: "missing entity id",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeEntry,
				Action:     cma.ActionGet,
				Params:     map[string]string{cma.ParamSpaceID: "space-1", cma.ParamEnvironmentID: "master"},
			},
			wantField: "params.entityId",
		},
		{
			name: "missing locale for process",
			desc: &cma.ActionDescriptor{
				EntityType: cma.TypeAsset,
				Action:     cma.ActionProcess,
				Params: map[string]string{
					cma.ParamSpaceID:       "space-1",
					cma.ParamEnvironmentID: "master",
					cma.ParamEntityID:      "id-1",
				},
			},
			wantField: "params.locale",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			dispatcher := newEchoDispatcher(t)

			_, err := dispatcher.Dispatch(context.Background(), testCase.desc)

			validationErr := &cma.ValidationError{}
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, testCase.wantField, validationErr.Field)
		})
	}
}

func TestDispatcherUnsupported(t *testing.T) {
	t.Parallel()
	t.Run("unknown entity type", func(t *testing.T) {
		t.Parallel()

		dispatcher := newEchoDispatcher(t)

		_, err := dispatcher.Dispatch(context.Background(), &cma.ActionDescriptor{
			EntityType: "Mystery",
			Action:     cma.ActionGet,
			Params:     map[string]string{cma.ParamSpaceID: "space-1"},
		})
		require.ErrorIs(t, err, cma.ErrUnknownEntityType)
	})

	t.Run("publish on non-publishable type", func(t *testing.T) {
		t.Parallel()

		dispatcher := newEchoDispatcher(t)

		_, err := dispatcher.Dispatch(context.Background(), &cma.ActionDescriptor{
			EntityType: cma.TypeWebhook,
			Action:     cma.ActionPublish,
			Params: map[string]string{
				cma.ParamSpaceID:  "space-1",
				cma.ParamEntityID: "id-1",
			},
		})
		require.ErrorIs(t, err, cma.ErrUnknownAction)
	})

	t.Run("process on non-processable type", func(t *testing.T) {
		t.Parallel()

		dispatcher := newEchoDispatcher(t)

		_, err := dispatcher.Dispatch(context.Background(), &cma.ActionDescriptor{
			EntityType: cma.TypeEntry,
			Action:     cma.ActionProcess,
			Params: map[string]string{
				cma.ParamSpaceID:       "space-1",
				cma.ParamEnvironmentID: "master",
				cma.ParamEntityID:      "id-1",
				cma.ParamLocale:        "en-US",
			},
		})
		require.ErrorIs(t, err, cma.ErrUnknownAction)
	})
}

func TestDispatcherQueryAndPayload(t *testing.T) {
	t.Parallel()

	var (
		gotQuery string
		gotBody  []byte
	)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotQuery = request.URL.RawQuery
		gotBody, _ = io.ReadAll(request.Body)
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	dispatcher := client.NewDispatcher(cmahttp.NewClient(server.URL, "test-token"))

	_, err := dispatcher.Dispatch(context.Background(), &cma.ActionDescriptor{
		EntityType: cma.TypeEntry,
		Action:     cma.ActionList,
		Params:     map[string]string{cma.ParamSpaceID: "space-1", cma.ParamEnvironmentID: "master"},
		Query:      map[string]string{"limit": "10", "content_type": "blogPost"},
	})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "limit=10")
	assert.Contains(t, gotQuery, "content_type=blogPost")

	_, err = dispatcher.Dispatch(context.Background(), &cma.ActionDescriptor{
		EntityType: cma.TypeEntry,
		Action:     cma.ActionCreate,
		Params:     map[string]string{cma.ParamSpaceID: "space-1", cma.ParamEnvironmentID: "master"},
		Payload:    json.RawMessage(`{"fields": {}}`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"fields": {}}`, string(gotBody))
}
