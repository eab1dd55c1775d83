package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// InitRenderer renders init command results
type InitRenderer struct {
	out io.Writer
}

// NewInitRenderer creates a new init renderer
func NewInitRenderer(out io.Writer) *InitRenderer {
	return &InitRenderer{out: out}
}

// Render renders the init project result
func (r *InitRenderer) Render(result *usecase.InitProjectResult) error {
	for _, step := range result.Steps {
		if step.Success {
			if step.Message != "" {
				color.New(color.FgGreen).Fprintf(r.out, "✅ %s\n", step.Message)
			} else {
				color.New(color.FgGreen).Fprintf(r.out, "✅ %s\n", step.Name)
			}
		} else {
			color.New(color.FgRed).Fprintf(r.out, "❌ %s\n", step.Name)
			if step.Message != "" {
				fmt.Fprintf(r.out, "   %s\n", step.Message)
			}
			if step.Error != nil {
				fmt.Fprintf(r.out, "   %s\n", step.Error.Error())
			}
		}
	}

	for _, step := range result.Steps {
		if !step.Success {
			return nil
		}
	}
	r.printSuccessMessage(result)
	return nil
}

func (r *InitRenderer) printSuccessMessage(result *usecase.InitProjectResult) {
	fmt.Fprintln(r.out)
	if result.AlreadyInitialized {
		color.New(color.FgYellow).Fprintln(r.out, "⚠️  zkdeploy was already initialized in this project")
	} else {
		color.New(color.FgGreen, color.Bold).Fprintln(r.out, "🎉 zkdeploy initialized successfully!")
	}

	fmt.Fprintln(r.out)
	color.New(color.FgCyan, color.Bold).Fprintln(r.out, "📋 Next steps:")

	fmt.Fprintln(r.out, "1. Copy .env.example to .env and set PRIVATE_KEY for your deployment wallet")
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "2. Review networks and address books in zkdeploy.toml")
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "3. Compile your contracts:")
	color.New(color.FgHiBlack).Fprintln(r.out, "   npx hardhat compile")
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "4. Check the signer and run the setup plan:")
	color.New(color.FgHiBlack).Fprintln(r.out, "   zkdeploy preflight --network mxc_testnet")
	color.New(color.FgHiBlack).Fprintln(r.out, "   zkdeploy setup --network mxc_testnet")
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "5. Inspect the ledger:")
	color.New(color.FgHiBlack).Fprintln(r.out, "   zkdeploy ledger list --network mxc_testnet")
}
