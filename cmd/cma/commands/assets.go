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

// NewAssetsCommand creates the assets command group.
func NewAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"asset"},
		Short:   "Manage assets",
		Long:    "List, inspect, process, and change the lifecycle state of assets",
	}

	cmd.AddCommand(newAssetsListCommand())
	cmd.AddCommand(newAssetsGetCommand())
	cmd.AddCommand(newAssetsProcessCommand())
	cmd.AddCommand(newAssetsPublishCommand())
	cmd.AddCommand(newAssetsUnpublishCommand())
	cmd.AddCommand(newAssetsDeleteCommand())

	return cmd
}

func newAssetsListCommand() *cobra.Command {
	var (
		limit int
		skip  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets",
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

			assets, err := client.Assets().List(ctx, spaceID, resolveEnvironment(), buildListParams(limit, skip))
			if err != nil {
				return fmt.Errorf("failed to list assets: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(assets.Items)
			case OutputFormatYAML:
				return renderYAML(assets.Items)
			default:
				if len(assets.Items) == 0 {
					fmt.Println("No assets found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Status", "Files", "Version", "Updated")

				for _, asset := range assets.Items {
					sys := asset.Sys()

					_ = table.Append(sys.ID, entityStatus(sys), fmt.Sprintf("%d", len(asset.Fields.File)), fmt.Sprintf("%d", sys.Version), formatTime(sys.UpdatedAt))
				}

				_ = table.Render()

				fmt.Printf("\nShowing %d of %d assets\n", len(assets.Items), assets.Total)

				return nil
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&skip, "skip", 0, "page offset")

	return cmd
}

func newAssetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ASSET_ID",
		Short: "Show an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			asset, err := fetchAsset(ctx, args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return renderYAML(asset)
			default:
				return renderJSON(asset)
			}
		},
	}
}

func newAssetsProcessCommand() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "process ASSET_ID",
		Short: "Process asset files",
		Long:  "Trigger file processing and wait until the processed URLs are available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			asset, err := fetchAsset(ctx, args[0])
			if err != nil {
				return err
			}

			var processed *cma.Asset
			if locale != "" {
				processed, err = asset.ProcessForLocale(ctx, locale, nil)
			} else {
				processed, err = asset.ProcessForAllLocales(ctx, nil)
			}

			if err != nil {
				return fmt.Errorf("failed to process asset: %w", err)
			}

			fmt.Printf("Asset %s processed\n", processed.Sys().ID)

			for code, file := range processed.Fields.File {
				if file != nil && file.URL != "" {
					fmt.Printf("  %s: %s\n", code, file.URL)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "process a single locale instead of all")

	return cmd
}

func newAssetsPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish ASSET_ID",
		Short: "Publish an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			asset, err := fetchAsset(ctx, args[0])
			if err != nil {
				return err
			}

			published, err := asset.Publish(ctx)
			if err != nil {
				return fmt.Errorf("failed to publish asset: %w", err)
			}

			fmt.Printf("Asset %s published (version %d)\n", published.Sys().ID, published.Sys().PublishedVersion)

			return nil
		},
	}
}

func newAssetsUnpublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpublish ASSET_ID",
		Short: "Unpublish an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			asset, err := fetchAsset(ctx, args[0])
			if err != nil {
				return err
			}

			draft, err := asset.Unpublish(ctx)
			if err != nil {
				return fmt.Errorf("failed to unpublish asset: %w", err)
			}

			fmt.Printf("Asset %s unpublished\n", draft.Sys().ID)

			return nil
		},
	}
}

func newAssetsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ASSET_ID",
		Short: "Delete an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			asset, err := fetchAsset(ctx, args[0])
			if err != nil {
				return err
			}

			if err := asset.Delete(ctx); err != nil {
				return fmt.Errorf("failed to delete asset: %w", err)
			}

			fmt.Printf("Asset %s deleted\n", args[0])

			return nil
		},
	}
}

// fetchAsset resolves the space/environment flags and fetches the asset.
func fetchAsset(ctx context.Context, assetID string) (*cma.Asset, error) {
	client, err := createClient(ctx)
	if err != nil {
		return nil, err
	}

	spaceID, err := resolveSpace()
	if err != nil {
		return nil, err
	}

	asset, err := client.Assets().Get(ctx, spaceID, resolveEnvironment(), assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return asset, nil
}
