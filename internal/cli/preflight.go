package cli

import (
	"github.com/mxc-foundation/zkdeploy/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewPreflightCmd creates the preflight command
func NewPreflightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Check the RPC connection and the signer balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.Preflight.Run(cmd.Context())
			if result != nil {
				if rerr := render.NewPreflightRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}
}
