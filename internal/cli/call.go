package cli

import (
	"fmt"

	"github.com/mxc-foundation/zkdeploy/internal/cli/render"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewCallCmd creates the call command
func NewCallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <Contract> <method> [args...]",
		Short: "Send a transaction to a method of a deployed contract",
		Long: `Send a transaction to a method of a contract recorded in the ledger.

Arguments are converted using the contract ABI and may use the same references
as setup plans, for example '${ledger.ZkCenter}' or '${address.TaikoL1}'.`,
		Example: `  zkdeploy call SgxMinerToken setZkCenter '${ledger.ZkCenter}' --network mxc_testnet`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			ledger, err := app.OpenLedger.Run(ctx)
			if err != nil {
				return err
			}

			if err := prepareTransactions(cmd, app, fmt.Sprintf("Call %s.%s", args[0], args[1])); err != nil {
				return err
			}

			result, err := app.CallContract.Run(ctx, usecase.CallContractParams{
				Ledger:       ledger,
				Signer:       app.Signer,
				ContractName: args[0],
				Method:       args[1],
				Args:         args[2:],
			})
			if err != nil {
				return err
			}

			return render.NewCallRenderer(cmd.OutOrStdout(), app.Config.JSON).RenderCall(result)
		},
	}

	return cmd
}
