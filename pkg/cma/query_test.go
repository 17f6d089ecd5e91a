package cma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benomatis/contentful-management/pkg/cma"
)

func TestQueryParams(t *testing.T) {
	t.Parallel()
	t.Run("empty params produce no values", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, cma.NewQueryParams().ToMap())
	})

	t.Run("builders chain", func(t *testing.T) {
		t.Parallel()

		params := cma.NewQueryParams().
			WithLimit(50).
			WithSkip(100).
			WithOrder("-sys.updatedAt").
			WithContentType("blogPost").
			WithFilter("fields.title[match]", "cat")

		values := params.ToMap()
		assert.Equal(t, "50", values["limit"])
		assert.Equal(t, "100", values["skip"])
		assert.Equal(t, "-sys.updatedAt", values["order"])
		assert.Equal(t, "blogPost", values["content_type"])
		assert.Equal(t, "cat", values["fields.title[match]"])
	})

	t.Run("filter on zero-value struct", func(t *testing.T) {
		t.Parallel()

		params := &cma.QueryParams{}
		params.WithFilter("sys.id[in]", "a,b")

		assert.Equal(t, "a,b", params.ToMap()["sys.id[in]"])
	})
}
