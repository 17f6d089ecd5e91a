package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Manage webhook definitions",
	}

	cmd.AddCommand(newWebhooksListCommand())
	cmd.AddCommand(newWebhooksGetCommand())
	cmd.AddCommand(newWebhooksDeleteCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
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

			webhooks, err := client.Webhooks().List(ctx, spaceID, nil)
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(webhooks.Items)
			case OutputFormatYAML:
				return renderYAML(webhooks.Items)
			default:
				if len(webhooks.Items) == 0 {
					fmt.Println("No webhooks found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "URL", "Topics", "Active")

				for _, webhook := range webhooks.Items {
					_ = table.Append(webhook.Sys().ID, webhook.Name, webhook.URL, strings.Join(webhook.Topics, ", "), fmt.Sprintf("%t", webhook.Active))
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func newWebhooksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get WEBHOOK_ID",
		Short: "Show a webhook",
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

			webhook, err := client.Webhooks().Get(ctx, spaceID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get webhook: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return renderYAML(webhook)
			default:
				return renderJSON(webhook)
			}
		},
	}
}

func newWebhooksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete WEBHOOK_ID",
		Short: "Delete a webhook",
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

			webhook, err := client.Webhooks().Get(ctx, spaceID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get webhook: %w", err)
			}

			if err := webhook.Delete(ctx); err != nil {
				return fmt.Errorf("failed to delete webhook: %w", err)
			}

			fmt.Printf("Webhook %s deleted\n", args[0])

			return nil
		},
	}
}
