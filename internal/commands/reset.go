package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCommand() *cobra.Command {
	var configPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "reset <scrap|ingot>",
		Short: "Clear all in-progress bills for a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindFromArg(args[0])
			if err != nil {
				return err
			}
			if !force {
				return fmt.Errorf("refusing to clear %s bills without --force", args[0])
			}

			cfg := loadConfig(configPath)
			svc, _, err := openSet(cfg, kind)
			if err != nil {
				return err
			}

			svc.Reset()
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s bills\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "billgen.yaml", "config file")
	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	return cmd
}
