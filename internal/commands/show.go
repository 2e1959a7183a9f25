package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <scrap|ingot>",
		Short: "Show the in-progress bills and their totals",
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

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d bill(s), %d per page\n", len(svc.Bills()), svc.Capacity())
			for i, bill := range svc.Bills() {
				totals := svc.TotalsAt(i)
				party := bill.FormData.PartyName
				if party == "" {
					party = "(unnamed)"
				}
				marker := " "
				if i == svc.CurrentIndex() {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %d. %-24s items: %-3d grand total: %s\n",
					marker, i+1, party, len(bill.Items), totals.GrandTotal)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "billgen.yaml", "config file")
	return cmd
}
