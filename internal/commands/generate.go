package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/invoice"
)

func newGenerateCommand() *cobra.Command {
	var configPath string
	var outDir string

	cmd := &cobra.Command{
		Use:   "generate <scrap|ingot>",
		Short: "Generate the bill document from the in-progress set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindFromArg(args[0])
			if err != nil {
				return err
			}

			cfg := loadConfig(configPath)
			svc, _, err := openSet(cfg, kind)
			if err != nil {
				return err
			}

			doc, err := invoice.Project(
				kind, svc.Bills(), svc.Capacity(), svc.CurrentIndex(), svc.Settings())
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, doc.Filename)
			if err := os.WriteFile(path, []byte(invoice.Render(doc)), 0o644); err != nil {
				return fmt.Errorf("writing bill: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "billgen.yaml", "config file")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}
