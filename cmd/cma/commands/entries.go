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

// NewEntriesCommand creates the entries command group.
func NewEntriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"entry"},
		Short:   "Manage entries",
		Long:    "List, inspect, and change the lifecycle state of entries",
	}

	cmd.AddCommand(newEntriesListCommand())
	cmd.AddCommand(newEntriesGetCommand())
	cmd.AddCommand(newEntriesPublishCommand())
	cmd.AddCommand(newEntriesUnpublishCommand())
	cmd.AddCommand(newEntriesArchiveCommand())
	cmd.AddCommand(newEntriesUnarchiveCommand())
	cmd.AddCommand(newEntriesDeleteCommand())

	return cmd
}

func newEntriesListCommand() *cobra.Command {
	var (
		contentType string
		limit       int
		skip        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries",
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

			params := buildListParams(limit, skip)
			if contentType != "" {
				params.WithContentType(contentType)
			}

			entries, err := client.Entries().List(ctx, spaceID, resolveEnvironment(), params)
			if err != nil {
				return fmt.Errorf("failed to list entries: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(entries.Items)
			case OutputFormatYAML:
				return renderYAML(entries.Items)
			default:
				if len(entries.Items) == 0 {
					fmt.Println("No entries found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Content Type", "Status", "Version", "Updated")

				for _, entry := range entries.Items {
					sys := entry.Sys()

					contentTypeID := ""
					if sys.ContentType != nil {
						contentTypeID = sys.ContentType.Sys.ID
					}

					_ = table.Append(sys.ID, contentTypeID, entityStatus(sys), fmt.Sprintf("%d", sys.Version), formatTime(sys.UpdatedAt))
				}

				_ = table.Render()

				fmt.Printf("\nShowing %d of %d entries\n", len(entries.Items), entries.Total)

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&contentType, "content-type", "", "filter by content type id")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&skip, "skip", 0, "page offset")

	return cmd
}

func newEntriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ENTRY_ID",
		Short: "Show an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entry, err := fetchEntry(ctx, args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return renderYAML(entry)
			default:
				return renderJSON(entry)
			}
		},
	}
}

func newEntriesPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish ENTRY_ID",
		Short: "Publish an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entry, err := fetchEntry(ctx, args[0])
			if err != nil {
				return err
			}

			published, err := entry.Publish(ctx)
			if err != nil {
				return fmt.Errorf("failed to publish entry: %w", err)
			}

			fmt.Printf("Entry %s published (version %d)\n", published.Sys().ID, published.Sys().PublishedVersion)

			return nil
		},
	}
}

func newEntriesUnpublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpublish ENTRY_ID",
		Short: "Unpublish an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entry, err := fetchEntry(ctx, args[0])
			if err != nil {
				return err
			}

			draft, err := entry.Unpublish(ctx)
			if err != nil {
				return fmt.Errorf("failed to unpublish entry: %w", err)
			}

			fmt.Printf("Entry %s unpublished\n", draft.Sys().ID)

			return nil
		},
	}
}

func newEntriesArchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive ENTRY_ID",
		Short: "Archive an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entry, err := fetchEntry(ctx, args[0])
			if err != nil {
				return err
			}

			archived, err := entry.Archive(ctx)
			if err != nil {
				return fmt.Errorf("failed to archive entry: %w", err)
			}

			fmt.Printf("Entry %s archived\n", archived.Sys().ID)

			return nil
		},
	}
}

func newEntriesUnarchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive ENTRY_ID",
		Short: "Unarchive an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entry, err := fetchEntry(ctx, args[0])
			if err != nil {
				return err
			}

			restored, err := entry.Unarchive(ctx)
			if err != nil {
				return fmt.Errorf("failed to unarchive entry: %w", err)
			}

			fmt.Printf("Entry %s unarchived\n", restored.Sys().ID)

			return nil
		},
	}
}

func newEntriesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ENTRY_ID",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entry, err := fetchEntry(ctx, args[0])
			if err != nil {
				return err
			}

			if err := entry.Delete(ctx); err != nil {
				return fmt.Errorf("failed to delete entry: %w", err)
			}

			fmt.Printf("Entry %s deleted\n", args[0])

			return nil
		},
	}
}

// fetchEntry resolves the space/environment flags and fetches the entry.
func fetchEntry(ctx context.Context, entryID string) (*cma.Entry, error) {
	client, err := createClient(ctx)
	if err != nil {
		return nil, err
	}

	spaceID, err := resolveSpace()
	if err != nil {
		return nil, err
	}

	entry, err := client.Entries().Get(ctx, spaceID, resolveEnvironment(), entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return entry, nil
}
