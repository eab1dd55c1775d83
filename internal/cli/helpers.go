package cli

import (
	"errors"
	"fmt"

	"github.com/mxc-foundation/zkdeploy/internal/app"
	"github.com/mxc-foundation/zkdeploy/internal/cli/render"
	"github.com/spf13/cobra"
)

// errCancelled is returned when the operator declines a confirmation
var errCancelled = errors.New("cancelled")

// prepareTransactions prints the preflight summary and, on networks marked
// confirm = true, asks before anything is sent.
func prepareTransactions(cmd *cobra.Command, a *app.App, action string) error {
	result, err := a.Preflight.Run(cmd.Context())
	if result != nil && !a.Config.JSON {
		_ = render.NewPreflightRenderer(cmd.ErrOrStderr(), false).Render(result)
		fmt.Fprintln(cmd.ErrOrStderr())
	}
	if err != nil {
		return err
	}

	if a.Config.Network == nil || !a.Config.Network.Confirm {
		return nil
	}

	ok, err := a.Confirmer.Confirm(cmd.Context(), fmt.Sprintf("%s on %s", action, a.Config.Network.Name))
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	return nil
}
