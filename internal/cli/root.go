package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/mxc-foundation/zkdeploy/internal/app"
	"github.com/mxc-foundation/zkdeploy/internal/config"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// session owns the resources built for one command invocation
type session struct {
	cleanup func()
}

// close releases the app and the timeout context. It is safe to call twice.
func (s *session) close() {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

// Execute runs the root command and releases the app afterwards, including
// when the command failed.
func Execute() error {
	s := &session{}
	return run(newRootCmd(s), s)
}

func run(root *cobra.Command, s *session) error {
	defer s.close()
	return root.Execute()
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&session{})
}

func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zkdeploy",
		Short: "Deploy and upgrade the ZkCenter contract suite",
		Long: `zkdeploy deploys upgradeable proxies for a Hardhat project, keeps a per-network
ledger of what is deployed, and upgrades in place when a contract's name2()
no longer matches the ledger.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				// init creates the project file
				if cmd.Name() != "init" {
					return err
				}
				projectRoot = "."
			}
			v := config.SetupViper(projectRoot, cmd.Root().PersistentFlags())

			appInstance, appCleanup, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			s.cleanup = appCleanup

			if appInstance.Config.JSON || appInstance.Config.NonInteractive {
				color.NoColor = true
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				prev := s.cleanup
				s.cleanup = func() {
					cancel()
					prev()
				}
			}
			cmd.SetContext(ctx)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			s.close()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network from zkdeploy.toml (e.g. mxc_testnet)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall timeout for the command (default 30m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Deployment Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, c := range []*cobra.Command{NewDeployCmd(), NewSetupCmd(), NewCallCmd(), NewRegisterCmd()} {
		c.GroupID = "main"
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{NewLedgerCmd(), NewNetworksCmd(), NewPreflightCmd(), NewInitCmd()} {
		c.GroupID = "management"
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
