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

// NewContentTypesCommand creates the content-types command group.
func NewContentTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "content-types",
		Aliases: []string{"content-type", "ct"},
		Short:   "Manage content types",
	}

	cmd.AddCommand(newContentTypesListCommand())
	cmd.AddCommand(newContentTypesGetCommand())
	cmd.AddCommand(newContentTypesPublishCommand())

	return cmd
}

func newContentTypesListCommand() *cobra.Command {
	var (
		limit int
		skip  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content types",
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

			contentTypes, err := client.ContentTypes().List(ctx, spaceID, resolveEnvironment(), buildListParams(limit, skip))
			if err != nil {
				return fmt.Errorf("failed to list content types: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(contentTypes.Items)
			case OutputFormatYAML:
				return renderYAML(contentTypes.Items)
			default:
				if len(contentTypes.Items) == 0 {
					fmt.Println("No content types found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Display Field", "Fields", "Status")

				for _, contentType := range contentTypes.Items {
					sys := contentType.Sys()

					_ = table.Append(sys.ID, contentType.Name, contentType.DisplayField, fmt.Sprintf("%d", len(contentType.Fields)), entityStatus(sys))
				}

				_ = table.Render()

				return nil
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&skip, "skip", 0, "page offset")

	return cmd
}

func newContentTypesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONTENT_TYPE_ID",
		Short: "Show a content type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			contentType, err := fetchContentType(ctx, args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return renderYAML(contentType)
			default:
				return renderJSON(contentType)
			}
		},
	}
}

func newContentTypesPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish CONTENT_TYPE_ID",
		Short: "Publish a content type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			contentType, err := fetchContentType(ctx, args[0])
			if err != nil {
				return err
			}

			published, err := contentType.Publish(ctx)
			if err != nil {
				return fmt.Errorf("failed to publish content type: %w", err)
			}

			fmt.Printf("Content type %s published (version %d)\n", published.Sys().ID, published.Sys().PublishedVersion)

			return nil
		},
	}
}

func fetchContentType(ctx context.Context, contentTypeID string) (*cma.ContentType, error) {
	client, err := createClient(ctx)
	if err != nil {
		return nil, err
	}

	spaceID, err := resolveSpace()
	if err != nil {
		return nil, err
	}

	contentType, err := client.ContentTypes().Get(ctx, spaceID, resolveEnvironment(), contentTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get content type: %w", err)
	}

	return contentType, nil
}
