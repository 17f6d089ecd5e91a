package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version string `json:"version" yaml:"version"`
				Commit  string `json:"commit" yaml:"commit"`
				Built   string `json:"built" yaml:"built"`
			}

			versionInfo := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(versionInfo)
			case OutputFormatYAML:
				return renderYAML(versionInfo)
			default:
				fmt.Printf("cma version %s\n", versionInfo.Version)
				fmt.Printf("  commit: %s\n", versionInfo.Commit)
				fmt.Printf("  built:  %s\n", versionInfo.Built)

				return nil
			}
		},
	}
}
