package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/config"
)

func newInitCommand() *cobra.Command {
	var name string
	var stateDir string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new billing project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, stateDir)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&stateDir, "state-dir", ".billgen", "bill state directory")

	return cmd
}

func runInit(dir, name, stateDir string) error {
	if err := os.MkdirAll(filepath.Join(dir, stateDir), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	cfg := config.Default(name, stateDir)
	if err := config.Save(filepath.Join(dir, "billgen.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	gitignore := stateDir + "/\n*.pdf\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Printf("Initialized billing project at %s\n", dir)
	return nil
}
