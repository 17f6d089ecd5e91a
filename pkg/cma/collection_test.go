package cma_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benomatis/contentful-management/pkg/cma"
)

func collectionJSON(total, skip, limit int, items ...json.RawMessage) json.RawMessage {
	rawItems := items
	if rawItems == nil {
		rawItems = []json.RawMessage{}
	}

	data, _ := json.Marshal(map[string]any{
		"sys":   map[string]any{"type": "Array"},
		"total": total,
		"skip":  skip,
		"limit": limit,
		"items": rawItems,
	})

	return data
}

func TestWrapEntryCollection(t *testing.T) {
	t.Parallel()
	t.Run("preserves order and pagination", func(t *testing.T) {
		t.Parallel()

		raw := collectionJSON(50, 10, 2,
			entryJSON("entry-b", 1, 0),
			entryJSON("entry-a", 2, 0),
		)

		collection, err := cma.WrapEntryCollection(nil, raw)
		require.NoError(t, err)

		assert.Equal(t, "Array", collection.Sys.Type)
		assert.Equal(t, 50, collection.Total)
		assert.Equal(t, 10, collection.Skip)
		assert.Equal(t, 2, collection.Limit)

		// Server order, not sorted.
		require.Len(t, collection.Items, 2)
		assert.Equal(t, "entry-b", collection.Items[0].Sys().ID)
		assert.Equal(t, "entry-a", collection.Items[1].Sys().ID)
	})

	t.Run("empty page", func(t *testing.T) {
		t.Parallel()

		collection, err := cma.WrapEntryCollection(nil, collectionJSON(0, 0, 100))
		require.NoError(t, err)
		assert.Empty(t, collection.Items)
		assert.Equal(t, 0, collection.Total)
	})

	t.Run("total may exceed page size", func(t *testing.T) {
		t.Parallel()

		collection, err := cma.WrapEntryCollection(nil, collectionJSON(1000, 0, 1, entryJSON("entry-1", 1, 0)))
		require.NoError(t, err)
		assert.Equal(t, 1000, collection.Total)
		assert.Len(t, collection.Items, 1)
	})

	t.Run("malformed item fails the whole page", func(t *testing.T) {
		t.Parallel()

		raw := collectionJSON(2, 0, 100,
			entryJSON("entry-1", 1, 0),
			json.RawMessage(`{"sys": {"type": "Entry"}}`),
		)

		_, err := cma.WrapEntryCollection(nil, raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item 1")

		malformed := &cma.MalformedEntityError{}
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("unparseable envelope", func(t *testing.T) {
		t.Parallel()

		_, err := cma.WrapEntryCollection(nil, json.RawMessage(`[1, 2`))

		malformed := &cma.MalformedEntityError{}
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("items carry a working dispatcher", func(t *testing.T) {
		t.Parallel()

		dispatcher := &recordingDispatcher{responses: []json.RawMessage{entryJSON("entry-1", 2, 1)}}

		collection, err := cma.WrapEntryCollection(dispatcher.Dispatch, collectionJSON(1, 0, 100, entryJSON("entry-1", 1, 0)))
		require.NoError(t, err)
		require.Len(t, collection.Items, 1)

		published, err := collection.Items[0].Publish(context.Background())
		require.NoError(t, err)
		assert.True(t, published.IsPublished())
		require.Len(t, dispatcher.descriptors, 1)
	})
}

func TestWrapCollectionGeneric(t *testing.T) {
	t.Parallel()

	// A wrapper over plain ids, to pin down that the combinator does not
	// depend on the entity machinery.
	wrapID := func(_ cma.DispatchFunc, raw json.RawMessage) (string, error) {
		var value struct {
			ID string `json:"id"`
		}

		if err := json.Unmarshal(raw, &value); err != nil {
			return "", fmt.Errorf("decoding id: %w", err)
		}

		return value.ID, nil
	}

	wrapIDs := cma.WrapCollection(wrapID)

	collection, err := wrapIDs(nil, collectionJSON(2, 0, 100,
		json.RawMessage(`{"id": "first"}`),
		json.RawMessage(`{"id": "second"}`),
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, collection.Items)
}
