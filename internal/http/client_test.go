package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmahttp "github.com/benomatis/contentful-management/internal/http"
	"github.com/benomatis/contentful-management/pkg/cma"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/spaces/space-1/entries", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"name": "test"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := cmahttp.NewClient(server.URL, "test-token")

		resp, err := client.Do(context.Background(), &cmahttp.Request{
			Method: "GET",
			Path:   "/spaces/space-1/entries",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "test", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "limit=10&skip=20", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := cmahttp.NewClient(server.URL, "test-token")

		query := url.Values{}
		query.Set("limit", "10")
		query.Set("skip", "20")

		_, err := client.Do(context.Background(), &cmahttp.Request{
			Method: "GET",
			Path:   "/spaces/space-1/entries",
			Query:  query,
		})
		require.NoError(t, err)
	})

	t.Run("request with body sets content type", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "application/vnd.contentful.management.v1+json", request.Header.Get("Content-Type"))

			var body map[string]any

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "value", body["field"])

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := cmahttp.NewClient(server.URL, "test-token")

		resp, err := client.Do(context.Background(), &cmahttp.Request{
			Method: "POST",
			Path:   "/spaces/space-1/entries",
			Body:   map[string]string{"field": "value"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("custom headers pass through", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "7", request.Header.Get("X-Contentful-Version"))
			assert.Equal(t, "blogPost", request.Header.Get("X-Contentful-Content-Type"))
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := cmahttp.NewClient(server.URL, "test-token")

		_, err := client.Do(context.Background(), &cmahttp.Request{
			Method: "PUT",
			Path:   "/spaces/space-1/entries/entry-1",
			Headers: map[string]string{
				"X-Contentful-Version":      "7",
				"X-Contentful-Content-Type": "blogPost",
			},
		})
		require.NoError(t, err)
	})

	t.Run("api error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{
				"sys": {"type": "Error", "id": "NotFound"},
				"message": "The resource could not be found.",
				"requestId": "req-404"
			}`))
		}))
		defer server.Close()

		client := cmahttp.NewClient(server.URL, "test-token")

		resp, err := client.Do(context.Background(), &cmahttp.Request{
			Method: "GET",
			Path:   "/spaces/space-1/entries/missing",
		})
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		apiErr := &cma.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "NotFound", apiErr.ID)
		assert.Equal(t, "req-404", apiErr.RequestID)
		assert.True(t, cma.IsNotFound(err))
	})

	t.Run("retries transient server errors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if calls.Add(1) < 3 {
				writer.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := cmahttp.NewClient(server.URL, "test-token",
			cmahttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

		resp, err := client.Do(context.Background(), &cmahttp.Request{
			Method: "GET",
			Path:   "/spaces/space-1/entries",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = writer.Write([]byte(`{"sys": {"type": "Error", "id": "ValidationFailed"}, "message": "bad fields"}`))
		}))
		defer server.Close()

		client := cmahttp.NewClient(server.URL, "test-token",
			cmahttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

		_, err := client.Do(context.Background(), &cmahttp.Request{
			Method: "POST",
			Path:   "/spaces/space-1/entries",
			Body:   map[string]string{},
		})
		require.Error(t, err)
		assert.True(t, cma.IsValidationFailed(err))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("surfaces api error after retry budget", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusTooManyRequests)
			_, _ = writer.Write([]byte(`{"sys": {"type": "Error", "id": "RateLimitExceeded"}, "message": "slow down"}`))
		}))
		defer server.Close()

		client := cmahttp.NewClient(server.URL, "test-token",
			cmahttp.WithRetryConfig(1, time.Millisecond, 5*time.Millisecond))

		_, err := client.Do(context.Background(), &cmahttp.Request{
			Method: "GET",
			Path:   "/spaces/space-1/entries",
		})
		require.Error(t, err)
		assert.True(t, cma.IsRateLimited(err))
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-agent/1.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := cmahttp.NewClient(server.URL, "test-token", cmahttp.WithUserAgent("custom-agent/1.0"))

		_, err := client.Do(context.Background(), &cmahttp.Request{Method: "GET", Path: "/"})
		require.NoError(t, err)
	})

	t.Run("debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := cmahttp.NewClient(server.URL, "test-token",
			cmahttp.WithLogger(logger), cmahttp.WithDebug(true))

		_, err := client.Do(context.Background(), &cmahttp.Request{Method: "GET", Path: "/spaces/space-1"})
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_Helpers(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case http.MethodGet, http.MethodDelete:
			writer.WriteHeader(http.StatusOK)
		case http.MethodPost, http.MethodPut:
			writer.WriteHeader(http.StatusCreated)
		}

		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := cmahttp.NewClient(server.URL, "test-token")
	ctx := context.Background()

	resp, err := client.Get(ctx, "/spaces/space-1", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Post(ctx, "/spaces/space-1/entries", map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = client.Put(ctx, "/spaces/space-1/entries/entry-1", map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = client.Delete(ctx, "/spaces/space-1/entries/entry-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
