package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "billgen",
		Short:   "Scrap and ingot bill generation",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newOpenCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newResetCommand())

	return rootCmd
}
