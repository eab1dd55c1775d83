package render

import (
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// PreflightRenderer renders the network and signer summary printed before any transaction
type PreflightRenderer struct {
	out  io.Writer
	json bool
}

// NewPreflightRenderer creates a new preflight renderer
func NewPreflightRenderer(out io.Writer, json bool) *PreflightRenderer {
	return &PreflightRenderer{out: out, json: json}
}

// Render renders the preflight summary
func (r *PreflightRenderer) Render(result *usecase.PreflightResult) error {
	if r.json {
		view := struct {
			Network     string `json:"network"`
			ChainID     string `json:"chainId"`
			BlockNumber uint64 `json:"blockNumber"`
			Signer      string `json:"signer"`
			Balance     string `json:"balance"`
		}{Network: result.Network, BlockNumber: result.BlockNumber, Signer: result.Signer.Hex()}
		if result.ChainID != nil {
			view.ChainID = result.ChainID.String()
		}
		if result.Balance != nil {
			view.Balance = result.Balance.String()
		}
		return JSON(r.out, view)
	}

	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Network: "), nameStyle.Sprint(result.Network))
	if result.ChainID != nil {
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Chain ID:"), result.ChainID)
	}
	fmt.Fprintf(r.out, "%s %d\n", labelStyle.Sprint("Block:   "), result.BlockNumber)
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Signer:  "), formatAddress(result.Signer))
	if result.Balance != nil {
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Balance: "), FormatEther(result.Balance))
	}
	return nil
}

// FormatEther renders a wei amount in ether with up to 6 decimals
func FormatEther(wei *big.Int) string {
	f := new(big.Float).SetInt(wei)
	f.Quo(f, big.NewFloat(params.Ether))
	return f.Text('f', 6)
}
