package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benomatis/contentful-management/pkg/cma"
)

// NewAPIKeysCommand creates the api-keys command group.
func NewAPIKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "api-keys",
		Aliases: []string{"api-key", "keys"},
		Short:   "Manage delivery API keys",
	}

	cmd.AddCommand(newAPIKeysListCommand())
	cmd.AddCommand(newAPIKeysCreateCommand())

	return cmd
}

func newAPIKeysListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			spaceID, err := resolveSpace()
			if err != nil {
				return err
			}

			keys, err := client.APIKeys().List(ctx, spaceID, nil)
			if err != nil {
				return fmt.Errorf("failed to list api keys: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(keys.Items)
			case OutputFormatYAML:
				return renderYAML(keys.Items)
			default:
				if len(keys.Items) == 0 {
					fmt.Println("No API keys found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Description", "Environments")

				for _, key := range keys.Items {
					_ = table.Append(key.Sys().ID, key.Name, key.Description, fmt.Sprintf("%d", len(key.Environments)))
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func newAPIKeysCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			spaceID, err := resolveSpace()
			if err != nil {
				return err
			}

			created, err := client.APIKeys().Create(ctx, spaceID, &cma.APIKey{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create api key: %w", err)
			}

			fmt.Printf("API key %s created\n", created.Sys().ID)
			fmt.Printf("Access token: %s\n", created.AccessToken)

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "key description")

	return cmd
}
