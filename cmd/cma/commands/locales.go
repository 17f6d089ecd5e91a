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

// NewLocalesCommand creates the locales command group.
func NewLocalesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "locales",
		Aliases: []string{"locale"},
		Short:   "Manage environment locales",
	}

	cmd.AddCommand(newLocalesListCommand())
	cmd.AddCommand(newLocalesCreateCommand())

	return cmd
}

func newLocalesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List locales",
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

			locales, err := client.Locales().List(ctx, spaceID, resolveEnvironment(), nil)
			if err != nil {
				return fmt.Errorf("failed to list locales: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(locales.Items)
			case OutputFormatYAML:
				return renderYAML(locales.Items)
			default:
				if len(locales.Items) == 0 {
					fmt.Println("No locales found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Code", "Name", "Default", "Optional", "Fallback")

				for _, locale := range locales.Items {
					fallback := ""
					if locale.FallbackCode != nil {
						fallback = *locale.FallbackCode
					}

					_ = table.Append(locale.Code, locale.Name, fmt.Sprintf("%t", locale.Default), fmt.Sprintf("%t", locale.Optional), fallback)
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func newLocalesCreateCommand() *cobra.Command {
	var (
		name     string
		optional bool
		fallback string
	)

	cmd := &cobra.Command{
		Use:   "create CODE",
		Short: "Create a locale",
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

			locale := &cma.Locale{
				Name:     name,
				Code:     args[0],
				Optional: optional,
			}
			if fallback != "" {
				locale.FallbackCode = &fallback
			}

			created, err := client.Locales().Create(ctx, spaceID, resolveEnvironment(), locale)
			if err != nil {
				return fmt.Errorf("failed to create locale: %w", err)
			}

			fmt.Printf("Locale %s created\n", created.Code)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().BoolVar(&optional, "optional", false, "allow publishing without this locale")
	cmd.Flags().StringVar(&fallback, "fallback", "", "fallback locale code")

	return cmd
}
