package cli

import (
	"github.com/mxc-foundation/zkdeploy/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize zkdeploy in a Hardhat project",
		Long: `Create zkdeploy.toml, the ledger directory, the default setup plan and
.env.example in the current directory. Existing files are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd)
		},
	}

	return cmd
}

// runInit executes the init command
func runInit(cmd *cobra.Command) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.InitProject.Execute(cmd.Context(), app.Config.ProjectRoot)
	if result != nil {
		// Still render partial results even on error
		_ = render.NewInitRenderer(cmd.OutOrStdout()).Render(result)
	}
	return err
}
