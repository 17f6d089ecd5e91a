package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits for the transport layer.
const (
	// DefaultRetryMax is the default maximum number of transport retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum backoff between transport retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff between transport retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Asset processing poll defaults.
const (
	// DefaultProcessingCheckRetries is the number of times an asset is
	// fetched while waiting for file processing to finish.
	DefaultProcessingCheckRetries = 5

	// DefaultProcessingCheckWait is the delay between processing checks.
	DefaultProcessingCheckWait = 500 * time.Millisecond
)

// Header names used by the management API.
const (
	// HeaderVersion carries the entity version for optimistic concurrency.
	HeaderVersion = "X-Contentful-Version"

	// HeaderContentType carries the content type id on entry creation.
	HeaderContentType = "X-Contentful-Content-Type"

	// HeaderOrganization scopes organization-level requests.
	HeaderOrganization = "X-Contentful-Organization"

	// ContentTypeJSON is the management API media type for request bodies.
	ContentTypeJSON = "application/vnd.contentful.management.v1+json"
)

// Management API error identifiers (sys.id of error responses).
const (
	ErrorIDNotFound           = "NotFound"
	ErrorIDVersionMismatch    = "VersionMismatch"
	ErrorIDValidationFailed   = "ValidationFailed"
	ErrorIDRateLimitExceeded  = "RateLimitExceeded"
	ErrorIDAccessTokenInvalid = "AccessTokenInvalid"
)

// Pagination defaults.
const (
	// DefaultPageLimit is the default number of items per collection page.
	DefaultPageLimit = 100

	// MaxPageLimit is the largest page size the API accepts.
	MaxPageLimit = 1000
)

// File and directory permissions for CLI configuration.
const (
	ConfigDirPerm  = 0750
	ConfigFilePerm = 0600
)
