package cma

import (
	"encoding/json"
	"fmt"
)

// CollectionSys is the metadata block of a list response.
type CollectionSys struct {
	Type string `json:"type" yaml:"type"`
}

// Collection is an ordered page of wrapped entities plus the pagination
// window it was fetched with. Collections are created fresh per list call
// and are read-only; pagination fields pass through from the server
// unchanged.
type Collection[T any] struct {
	Sys   CollectionSys `json:"sys"   yaml:"sys"`
	Total int           `json:"total" yaml:"total"`
	Skip  int           `json:"skip"  yaml:"skip"`
	Limit int           `json:"limit" yaml:"limit"`
	Items []T           `json:"items" yaml:"items"`
}

// WrapCollection lifts a single-entity wrapper into a collection wrapper.
// Each item of the raw list is wrapped independently, in server order.
func WrapCollection[T any](wrapOne func(DispatchFunc, json.RawMessage) (T, error)) func(DispatchFunc, json.RawMessage) (*Collection[T], error) {
	return func(dispatch DispatchFunc, raw json.RawMessage) (*Collection[T], error) {
		var envelope struct {
			Sys   CollectionSys     `json:"sys"`
			Total int               `json:"total"`
			Skip  int               `json:"skip"`
			Limit int               `json:"limit"`
			Items []json.RawMessage `json:"items"`
		}

		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, &MalformedEntityError{EntityType: TypeArray, Reason: fmt.Sprintf("decoding collection: %v", err)}
		}

		collection := &Collection[T]{
			Sys:   envelope.Sys,
			Total: envelope.Total,
			Skip:  envelope.Skip,
			Limit: envelope.Limit,
			Items: make([]T, 0, len(envelope.Items)),
		}

		for i, item := range envelope.Items {
			wrapped, err := wrapOne(dispatch, item)
			if err != nil {
				return nil, fmt.Errorf("wrapping collection item %d: %w", i, err)
			}

			collection.Items = append(collection.Items, wrapped)
		}

		return collection, nil
	}
}
