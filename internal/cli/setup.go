package cli

import (
	"github.com/mxc-foundation/zkdeploy/internal/cli/render"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewSetupCmd creates the setup command
func NewSetupCmd() *cobra.Command {
	var validateOnly bool

	cmd := &cobra.Command{
		Use:   "setup [plan.yaml]",
		Short: "Run a setup plan: deploy, resolve, register and link contracts in order",
		Long: `Run the steps of a setup plan in order. Deploy steps are idempotent, so a
plan that stopped halfway can simply be run again.

Every reference in the plan is checked before the first transaction. The plan
defaults to [project].plan in zkdeploy.toml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			path := config.DefaultPlanFile
			if app.Config.Project != nil && app.Config.Project.Project.Plan != "" {
				path = app.Config.Project.Project.Plan
			}
			if len(args) == 1 {
				path = args[0]
			}

			plan, err := app.Plans.Load(ctx, path)
			if err != nil {
				return err
			}
			if validateOnly {
				app.Progress.Info("Plan " + plan.Name + " is valid")
				return nil
			}

			ledger, err := app.OpenLedger.Run(ctx)
			if err != nil {
				return err
			}

			if err := prepareTransactions(cmd, app, "Run setup plan "+plan.Name); err != nil {
				return err
			}

			result, runErr := app.RunSetup.Run(ctx, usecase.RunSetupParams{
				Plan:   plan,
				Ledger: ledger,
				Signer: app.Signer,
			})
			if err := render.NewSetupRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result, runErr); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&validateOnly, "validate", false, "Only parse and validate the plan")

	return cmd
}
