package cli

import (
	"fmt"

	"github.com/mxc-foundation/zkdeploy/internal/cli/render"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewLedgerCmd creates the ledger command group
func NewLedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect the deployment ledger of a network",
	}

	cmd.AddCommand(newLedgerListCmd(), newLedgerShowCmd(), newLedgerPathCmd())
	return cmd
}

func newLedgerListCmd() *cobra.Command {
	var sortByName bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every contract recorded for the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListLedger.Run(cmd.Context(), usecase.ListLedgerParams{SortByName: sortByName})
			if err != nil {
				return err
			}

			return render.NewLedgerRenderer(cmd.OutOrStdout(), app.Config.JSON).RenderList(result)
		},
	}

	cmd.Flags().BoolVar(&sortByName, "sort", false, "Sort by contract name instead of deployment order")
	return cmd
}

func newLedgerShowCmd() *cobra.Command {
	var live bool

	cmd := &cobra.Command{
		Use:   "show [Contract]",
		Short: "Show the ledger record of one contract",
		Long: `Show the ledger record of one contract. With --live, name2() is read from
the proxy and compared with the recorded expectation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				list, err := app.ListLedger.Run(ctx, usecase.ListLedgerParams{SortByName: true})
				if err != nil {
					return err
				}
				names := make([]string, 0, len(list.Records))
				for _, rec := range list.Records {
					names = append(names, rec.ContractName)
				}
				if len(names) == 0 {
					return fmt.Errorf("no contracts recorded in %s", list.Path)
				}
				name, err = app.Selector.Select(ctx, "Select contract", names)
				if err != nil {
					return err
				}
			}

			result, err := app.ShowRecord.Run(ctx, usecase.ShowRecordParams{ContractName: name, Live: live})
			if err != nil {
				return err
			}

			return render.NewLedgerRenderer(cmd.OutOrStdout(), app.Config.JSON).RenderRecord(result)
		},
	}

	cmd.Flags().BoolVar(&live, "live", false, "Read name2() from the proxy")
	return cmd
}

func newLedgerPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the ledger file path for the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListLedger.Run(cmd.Context(), usecase.ListLedgerParams{})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Path)
			return nil
		},
	}
}
