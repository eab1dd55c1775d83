package cli

import (
	"fmt"

	"github.com/mxc-foundation/zkdeploy/internal/cli/render"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy <Contract> [initArgs...]",
		Short: "Deploy a contract behind a proxy, or upgrade it in place",
		Long: `Deploy a contract behind an upgradeable proxy and record it in the ledger.

If the ledger already has the contract, its name2() is read from the proxy. A
match leaves it alone; a mismatch deploys a new implementation and upgrades the
existing proxy. initArgs are passed to initialize() on first deployment only.`,
		Example: `  zkdeploy deploy SgxMinerToken SgxMinerToken ZkMiner --network mxc_testnet`,
		Args:    cobra.MinimumNArgs(1),
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

			if err := prepareTransactions(cmd, app, fmt.Sprintf("Deploy or upgrade %s", args[0])); err != nil {
				return err
			}

			result, err := app.ReconcileContract.Run(ctx, usecase.ReconcileContractParams{
				Ledger:       ledger,
				Signer:       app.Signer,
				ContractName: args[0],
				InitArgs:     args[1:],
			})
			if err != nil {
				return err
			}

			return render.NewDeployRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result)
		},
	}

	return cmd
}
