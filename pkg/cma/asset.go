package cma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/benomatis/contentful-management/internal/constants"
)

// AssetFields are the localized fields of an asset. Title and Description
// map locale code to text; File maps locale code to the file block for
// that locale.
type AssetFields struct {
	Title       map[string]string     `json:"title,omitempty"       yaml:"title,omitempty"`
	Description map[string]string     `json:"description,omitempty" yaml:"description,omitempty"`
	File        map[string]*AssetFile `json:"file,omitempty"        yaml:"file,omitempty"`
}

// AssetFile describes one locale's file. Before processing it carries an
// upload source; after processing the server replaces it with a url and
// details.
type AssetFile struct {
	ContentType string       `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	FileName    string       `json:"fileName,omitempty"    yaml:"fileName,omitempty"`
	Upload      string       `json:"upload,omitempty"      yaml:"upload,omitempty"`
	UploadFrom  *Link        `json:"uploadFrom,omitempty"  yaml:"uploadFrom,omitempty"`
	URL         string       `json:"url,omitempty"         yaml:"url,omitempty"`
	Details     *FileDetails `json:"details,omitempty"     yaml:"details,omitempty"`
}

// FileDetails holds size and, for images, dimensions of a processed file.
type FileDetails struct {
	Size  int64         `json:"size,omitempty"  yaml:"size,omitempty"`
	Image *ImageDetails `json:"image,omitempty" yaml:"image,omitempty"`
}

// ImageDetails holds the dimensions of a processed image.
type ImageDetails struct {
	Width  int `json:"width"  yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Asset is a wrapped asset.
type Asset struct {
	entity

	Fields   AssetFields
	Metadata *Metadata
}

type assetEnvelope struct {
	Sys      Sys         `json:"sys"`
	Fields   AssetFields `json:"fields"`
	Metadata *Metadata   `json:"metadata,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Asset) UnmarshalJSON(data []byte) error {
	var envelope assetEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	a.sys = envelope.Sys
	a.Fields = envelope.Fields
	a.Metadata = envelope.Metadata

	return nil
}

// MarshalJSON implements json.Marshaler.
func (a *Asset) MarshalJSON() ([]byte, error) {
	return json.Marshal(assetEnvelope{Sys: a.sys, Fields: a.Fields, Metadata: a.Metadata})
}

// WrapAsset wraps raw server JSON as an Asset.
func WrapAsset(dispatch DispatchFunc, raw json.RawMessage) (*Asset, error) {
	return Wrap[Asset](dispatch, raw)
}

// WrapAssetCollection wraps a raw list response as a collection of assets.
var WrapAssetCollection = WrapCollection(WrapAsset)

// Update sends the asset's current snapshot and returns the fresh asset.
func (a *Asset) Update(ctx context.Context) (*Asset, error) {
	return roundTrip[Asset](ctx, &a.entity, TypeAsset, ActionUpdate, a, a.versionHeader())
}

// Delete removes the asset.
func (a *Asset) Delete(ctx context.Context) error {
	_, err := a.perform(ctx, TypeAsset, ActionDelete, nil, a.versionHeader())

	return err
}

// Publish publishes the asset at its current version.
func (a *Asset) Publish(ctx context.Context) (*Asset, error) {
	return roundTrip[Asset](ctx, &a.entity, TypeAsset, ActionPublish, nil, a.versionHeader())
}

// Unpublish removes the published version.
func (a *Asset) Unpublish(ctx context.Context) (*Asset, error) {
	return roundTrip[Asset](ctx, &a.entity, TypeAsset, ActionUnpublish, nil, nil)
}

// Archive archives the asset.
func (a *Asset) Archive(ctx context.Context) (*Asset, error) {
	return roundTrip[Asset](ctx, &a.entity, TypeAsset, ActionArchive, nil, nil)
}

// Unarchive restores an archived asset to draft.
func (a *Asset) Unarchive(ctx context.Context) (*Asset, error) {
	return roundTrip[Asset](ctx, &a.entity, TypeAsset, ActionUnarchive, nil, nil)
}

// ProcessingOptions tune the bounded poll that waits for file processing.
type ProcessingOptions struct {
	// CheckRetries is the number of times the asset is fetched before
	// giving up. Defaults to 5.
	CheckRetries int

	// CheckWait is the delay between fetches. Defaults to 500ms.
	CheckWait time.Duration
}

func (o *ProcessingOptions) withDefaults() ProcessingOptions {
	resolved := ProcessingOptions{
		CheckRetries: constants.DefaultProcessingCheckRetries,
		CheckWait:    constants.DefaultProcessingCheckWait,
	}

	if o != nil {
		if o.CheckRetries > 0 {
			resolved.CheckRetries = o.CheckRetries
		}

		if o.CheckWait > 0 {
			resolved.CheckWait = o.CheckWait
		}
	}

	return resolved
}

// ProcessForLocale triggers server-side file processing for one locale
// and polls until the processed file carries a url. A trigger failure is
// returned immediately with no retry; the poll itself is bounded by the
// options' retry budget and fails with AssetProcessingTimeoutError once
// exhausted. A timed-out asset may still finish processing server-side.
func (a *Asset) ProcessForLocale(ctx context.Context, locale string, opts *ProcessingOptions) (*Asset, error) {
	if locale == "" {
		return nil, &ValidationError{Field: "locale", Reason: "a locale code is required"}
	}

	if err := a.triggerProcessing(ctx, locale); err != nil {
		return nil, err
	}

	resolved := opts.withDefaults()

	raw, err := a.pollProcessed(ctx, locale, resolved)
	if err != nil {
		return nil, err
	}

	return WrapAsset(a.dispatch, raw)
}

// ProcessForAllLocales triggers processing for every locale that has a
// file and waits for all of them. Per-locale polls run concurrently, each
// with its own retry budget. One locale timing out fails the whole call
// with an aggregate AssetProcessingTimeoutError even if other locales
// succeeded; callers should re-fetch the asset to find the true partial
// state.
func (a *Asset) ProcessForAllLocales(ctx context.Context, opts *ProcessingOptions) (*Asset, error) {
	locales := make([]string, 0, len(a.Fields.File))
	for locale := range a.Fields.File {
		locales = append(locales, locale)
	}

	sort.Strings(locales)

	if len(locales) == 0 {
		return nil, &ValidationError{Field: "fields.file", Reason: "asset has no locales with a file to process"}
	}

	for _, locale := range locales {
		if err := a.triggerProcessing(ctx, locale); err != nil {
			return nil, err
		}
	}

	resolved := opts.withDefaults()

	var waitGroup sync.WaitGroup

	pollErrs := make([]error, len(locales))

	for i, locale := range locales {
		waitGroup.Add(1)

		go func(i int, locale string) {
			defer waitGroup.Done()

			_, pollErrs[i] = a.pollProcessed(ctx, locale, resolved)
		}(i, locale)
	}

	waitGroup.Wait()

	timedOut := false

	for _, err := range pollErrs {
		if err == nil {
			continue
		}

		timeoutErr := &AssetProcessingTimeoutError{}
		if errors.As(err, &timeoutErr) {
			timedOut = true

			continue
		}

		return nil, err
	}

	if timedOut {
		return nil, &AssetProcessingTimeoutError{
			AssetID:  a.sys.ID,
			Locales:  locales,
			Attempts: resolved.CheckRetries,
		}
	}

	// Every locale's poll saw its own url; fetch once more so the caller
	// gets a snapshot covering all locales.
	raw, err := a.perform(ctx, TypeAsset, ActionGet, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching processed asset: %w", err)
	}

	return WrapAsset(a.dispatch, raw)
}

// triggerProcessing issues the single process dispatch for one locale.
func (a *Asset) triggerProcessing(ctx context.Context, locale string) error {
	if a.dispatch == nil {
		return ErrNoDispatcher
	}

	params := a.identity()
	params[ParamLocale] = locale

	_, err := a.dispatch(ctx, &ActionDescriptor{
		EntityType: TypeAsset,
		Action:     ActionProcess,
		Params:     params,
		Headers:    a.versionHeader(),
	})
	if err != nil {
		return fmt.Errorf("triggering processing for locale %q: %w", locale, err)
	}

	return nil
}

// pollProcessed fetches the asset until the file for the given locale
// carries a url, waiting opts.CheckWait between fetches, up to
// opts.CheckRetries fetches total. Returns the raw body of the successful
// fetch.
func (a *Asset) pollProcessed(ctx context.Context, locale string, opts ProcessingOptions) (json.RawMessage, error) {
	for attempt := 0; attempt < opts.CheckRetries; attempt++ {
		if attempt > 0 {
			if err := wait(ctx, opts.CheckWait); err != nil {
				return nil, err
			}
		}

		raw, err := a.dispatch(ctx, &ActionDescriptor{
			EntityType: TypeAsset,
			Action:     ActionGet,
			Params:     a.identity(),
		})
		if err != nil {
			return nil, fmt.Errorf("checking processing status: %w", err)
		}

		processed, err := fileHasURL(raw, locale)
		if err != nil {
			return nil, err
		}

		if processed {
			return raw, nil
		}
	}

	return nil, &AssetProcessingTimeoutError{
		AssetID:  a.sys.ID,
		Locales:  []string{locale},
		Attempts: opts.CheckRetries,
	}
}

// fileHasURL reports whether the raw asset's file block for the locale
// carries a url.
func fileHasURL(raw json.RawMessage, locale string) (bool, error) {
	var envelope assetEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return false, &MalformedEntityError{EntityType: TypeAsset, Reason: fmt.Sprintf("decoding processing status: %v", err)}
	}

	file := envelope.Fields.File[locale]

	return file != nil && file.URL != "", nil
}

// wait sleeps for the given duration or returns early with the context's
// error if it is canceled first.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
