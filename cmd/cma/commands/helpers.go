// Package commands implements the cma CLI commands.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/benomatis/contentful-management/pkg/cma"
	"github.com/benomatis/contentful-management/pkg/cmaclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required (use --api or run 'cma login')")
	ErrTokenRequired       = errors.New("management token is required (use --token or run 'cma login')")
	ErrSpaceRequired       = errors.New("space id is required (use --space)")
)

// createClient builds a management client from the resolved configuration.
func createClient(ctx context.Context) (cma.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	return cmaclient.New(ctx, &cma.Config{
		Endpoint:    endpoint,
		AccessToken: token,
		Debug:       viper.GetBool("verbose"),
	})
}

// resolveSpace returns the space id from flags or config.
func resolveSpace() (string, error) {
	spaceID := viper.GetString("space")
	if spaceID == "" {
		return "", ErrSpaceRequired
	}

	return spaceID, nil
}

// resolveEnvironment returns the environment id, defaulting to master.
func resolveEnvironment() string {
	environmentID := viper.GetString("environment")
	if environmentID == "" {
		environmentID = "master"
	}

	return environmentID
}

// renderJSON writes the value as indented JSON to stdout.
func renderJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}

// renderYAML writes the value as YAML to stdout. The value goes through
// its JSON representation first so entity types keep their wire shape,
// including the sys block their custom JSON marshalers emit.
func renderYAML(value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(os.Stdout)

	return encoder.Encode(generic)
}

// formatTime renders an optional timestamp for table output.
func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.Format("2006-01-02 15:04:05")
}

// entityStatus derives the human-readable lifecycle state from sys.
func entityStatus(sys cma.Sys) string {
	switch {
	case sys.ArchivedVersion > 0:
		return "archived"
	case sys.PublishedVersion == 0:
		return "draft"
	case sys.Version > sys.PublishedVersion+1:
		return "changed"
	default:
		return "published"
	}
}

// buildListParams translates the shared --limit/--skip flags.
func buildListParams(limit, skip int) *cma.QueryParams {
	params := cma.NewQueryParams()

	if limit > 0 {
		params.WithLimit(limit)
	}

	if skip > 0 {
		params.WithSkip(skip)
	}

	return params
}
