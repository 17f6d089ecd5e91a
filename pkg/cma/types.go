package cma

import (
	"time"
)

// Entity type tags as they appear in sys.type.
const (
	TypeEntry           = "Entry"
	TypeAsset           = "Asset"
	TypeContentType     = "ContentType"
	TypeWebhook         = "WebhookDefinition"
	TypeRole            = "Role"
	TypeAPIKey          = "ApiKey"
	TypeSpaceMembership = "SpaceMembership"
	TypeLocale          = "Locale"
	TypeArray           = "Array"
)

// Link is a reference to another resource by id, never by ownership.
type Link struct {
	Sys LinkSys `json:"sys" yaml:"sys"`
}

// LinkSys identifies the linked resource.
type LinkSys struct {
	ID       string `json:"id"       yaml:"id"`
	Type     string `json:"type"     yaml:"type"`
	LinkType string `json:"linkType" yaml:"linkType"`
}

// NewLink builds a link to the resource with the given link type and id.
func NewLink(linkType, id string) *Link {
	return &Link{Sys: LinkSys{ID: id, Type: "Link", LinkType: linkType}}
}

// Sys is the server-owned metadata block attached to every entity. The
// version increases by exactly one per successful mutating call; the
// server is the sole source of truth for it.
type Sys struct {
	ID               string     `json:"id"                         yaml:"id"`
	Type             string     `json:"type"                       yaml:"type"`
	Version          int        `json:"version,omitempty"          yaml:"version,omitempty"`
	PublishedVersion int        `json:"publishedVersion,omitempty" yaml:"publishedVersion,omitempty"`
	PublishedCounter int        `json:"publishedCounter,omitempty" yaml:"publishedCounter,omitempty"`
	ArchivedVersion  int        `json:"archivedVersion,omitempty"  yaml:"archivedVersion,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"        yaml:"createdAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"        yaml:"updatedAt,omitempty"`
	PublishedAt      *time.Time `json:"publishedAt,omitempty"      yaml:"publishedAt,omitempty"`
	FirstPublishedAt *time.Time `json:"firstPublishedAt,omitempty" yaml:"firstPublishedAt,omitempty"`
	ArchivedAt       *time.Time `json:"archivedAt,omitempty"       yaml:"archivedAt,omitempty"`
	Space            *Link      `json:"space,omitempty"            yaml:"space,omitempty"`
	Environment      *Link      `json:"environment,omitempty"      yaml:"environment,omitempty"`
	Organization     *Link      `json:"organization,omitempty"     yaml:"organization,omitempty"`
	ContentType      *Link      `json:"contentType,omitempty"      yaml:"contentType,omitempty"`
	CreatedBy        *Link      `json:"createdBy,omitempty"        yaml:"createdBy,omitempty"`
	UpdatedBy        *Link      `json:"updatedBy,omitempty"        yaml:"updatedBy,omitempty"`
	PublishedBy      *Link      `json:"publishedBy,omitempty"      yaml:"publishedBy,omitempty"`
	ArchivedBy       *Link      `json:"archivedBy,omitempty"       yaml:"archivedBy,omitempty"`
}

// SpaceID returns the id of the space back-reference, or "".
func (s *Sys) SpaceID() string {
	if s.Space == nil {
		return ""
	}

	return s.Space.Sys.ID
}

// EnvironmentID returns the id of the environment back-reference, or "".
func (s *Sys) EnvironmentID() string {
	if s.Environment == nil {
		return ""
	}

	return s.Environment.Sys.ID
}

// OrganizationID returns the id of the organization back-reference, or "".
func (s *Sys) OrganizationID() string {
	if s.Organization == nil {
		return ""
	}

	return s.Organization.Sys.ID
}

// Metadata holds auxiliary tags; not present on all entity types.
type Metadata struct {
	Tags     []Link `json:"tags"               yaml:"tags"`
	Concepts []Link `json:"concepts,omitempty" yaml:"concepts,omitempty"`
}

// Logger is the structured logging interface consumed by the transport
// and helpers.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cma.Client.
//
// Endpoint and AccessToken are required; the management API uses static
// bearer tokens (personal access tokens or app tokens), so there is no
// grant negotiation. Retry tuning applies to the transport only: the
// entity layer never retries, except the bounded asset processing poll.
type Config struct {
	// Endpoint: base URL for the management API
	// (e.g. "https://api.contentful.com"). cmaclient.New normalizes this
	// value by trimming a trailing slash and adding "https://" if no
	// scheme is present.
	Endpoint string

	// AccessToken: bearer token sent on every request.
	AccessToken string

	// HTTPTimeout: optional default HTTP timeout. Most calls should rely
	// on context deadlines instead.
	HTTPTimeout time.Duration

	// RetryMax: maximum number of transport retries for transient
	// failures (429 and >=500). If 0, a sensible default is used.
	RetryMax int

	// RetryWaitMin: minimum backoff between transport retries.
	RetryWaitMin time.Duration

	// RetryWaitMax: maximum backoff between transport retries.
	RetryWaitMax time.Duration

	// Debug: enables request/response logging when a Logger is provided.
	Debug bool

	// Logger: optional structured logger used by the transport.
	Logger Logger

	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
