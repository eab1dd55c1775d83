package cli

import (
	"github.com/mxc-foundation/zkdeploy/internal/cli/render"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List networks configured in zkdeploy.toml",
		Long: `List all networks configured in the [networks] section of zkdeploy.toml,
with their chain IDs and address book entries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout(), app.Config.JSON).RenderNetworksList(result)
		},
	}

	return cmd
}
