package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/draft"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
	"github.com/krishgarg-code/BILL-GENRATOR/internal/tui"
)

func newOpenCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "open <scrap|ingot>",
		Short: "Open the interactive bill entry screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindFromArg(args[0])
			if err != nil {
				return err
			}

			cfg := loadConfig(configPath)
			svc, kv, err := openSet(cfg, kind)
			if err != nil {
				return err
			}

			var drafts *draft.Log
			if kind == model.KindScrap {
				drafts = draft.NewLog(kv, kind)
			}

			p := tea.NewProgram(tui.New(svc, drafts), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running entry screen: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "billgen.yaml", "config file")
	return cmd
}
