package cli

import (
	"fmt"

	"github.com/mxc-foundation/zkdeploy/internal/cli/render"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var registry, target string

	cmd := &cobra.Command{
		Use:   "register <name>",
		Short: "Record an address under a name in a resolver's address manager",
		Long: `Call setAddress(chainId, name, target) on the address manager behind a
resolver, then resolve the name again to confirm it.

--registry and --target accept addresses or references such as
'${address.TaikoL1}' and '${ledger.ZkCenter}'.`,
		Example: `  zkdeploy register zk_center --registry '${address.TaikoL1}' --target '${ledger.ZkCenter}' --network mxc_testnet`,
		Args:    cobra.ExactArgs(1),
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

			if err := prepareTransactions(cmd, app, fmt.Sprintf("Register %s", args[0])); err != nil {
				return err
			}

			result, err := app.RegisterAddress.Run(ctx, usecase.RegisterAddressParams{
				Ledger:   ledger,
				Signer:   app.Signer,
				Name:     args[0],
				Registry: registry,
				Target:   target,
			})
			if err != nil {
				return err
			}

			return render.NewCallRenderer(cmd.OutOrStdout(), app.Config.JSON).RenderRegister(result)
		},
	}

	cmd.Flags().StringVar(&registry, "registry", "", "Resolver address or reference")
	cmd.Flags().StringVar(&target, "target", "", "Address or reference to register")
	_ = cmd.MarkFlagRequired("registry")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
