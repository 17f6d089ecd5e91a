package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/benomatis/contentful-management/internal/constants"
	"github.com/benomatis/contentful-management/pkg/cma"
	"github.com/benomatis/contentful-management/pkg/cmaclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store management API credentials",
		Long:  "Validate a management token against the API and persist it to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get API endpoint
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return ErrAPIEndpointRequired
			}

			if token == "" {
				fmt.Print("Management token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = string(byteToken)

				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			ctx := context.Background()

			client, err := cmaclient.NewWithToken(ctx, apiEndpoint, token)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the token against the targeted space when one is
			// configured. Without a space there is nothing to probe.
			if spaceID := viper.GetString("space"); spaceID != "" {
				_, err := client.Locales().List(ctx, spaceID, resolveEnvironment(), cma.NewQueryParams().WithLimit(1))
				if err != nil {
					return fmt.Errorf("failed to verify credentials: %w", err)
				}
			}

			if err := saveCredentials(apiEndpoint, token); err != nil {
				return fmt.Errorf("failed to save credentials: %w", err)
			}

			fmt.Println("Credentials saved")

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "api-endpoint", "", "management API endpoint URL")
	cmd.Flags().StringVar(&token, "with-token", "", "management token (prompted when omitted)")

	return cmd
}

// saveCredentials persists the endpoint and token to ~/.cma/config.yml,
// preserving any other settings already in the file.
func saveCredentials(apiEndpoint, token string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".cma")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	settings := map[string]any{}

	if data, err := os.ReadFile(configPath); err == nil {
		_ = yaml.Unmarshal(data, &settings)
	}

	settings["api"] = apiEndpoint
	settings["token"] = token

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(configPath, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
