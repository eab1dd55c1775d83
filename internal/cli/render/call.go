package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// CallRenderer renders contract calls and address registrations
type CallRenderer struct {
	out  io.Writer
	json bool
}

// NewCallRenderer creates a new call renderer
func NewCallRenderer(out io.Writer, json bool) *CallRenderer {
	return &CallRenderer{out: out, json: json}
}

type txView struct {
	TxHash      string   `json:"txHash"`
	BlockNumber uint64   `json:"blockNumber"`
	GasUsed     uint64   `json:"gasUsed"`
	Events      []string `json:"events"`
}

func newTxView(call *domain.CallResult) *txView {
	if call == nil {
		return nil
	}
	events := call.Events
	if events == nil {
		events = []string{}
	}
	return &txView{TxHash: call.TxHash.Hex(), BlockNumber: call.BlockNumber, GasUsed: call.GasUsed, Events: events}
}

// RenderCall renders the result of a contract call
func (r *CallRenderer) RenderCall(result *usecase.CallContractResult) error {
	if r.json {
		return JSON(r.out, struct {
			Contract string   `json:"contract"`
			Address  string   `json:"address"`
			Method   string   `json:"method"`
			Args     []string `json:"args"`
			Tx       *txView  `json:"tx"`
		}{result.ContractName, result.Address.Hex(), result.Method, result.Args, newTxView(result.Call)})
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s.%s(%s)", result.ContractName, result.Method, strings.Join(result.Args, ", "))))
	r.renderTx(result.Call)
	return nil
}

// RenderRegister renders the result of an address registration
func (r *CallRenderer) RenderRegister(result *usecase.RegisterAddressResult) error {
	if r.json {
		return JSON(r.out, struct {
			Name     string  `json:"name"`
			ChainID  string  `json:"chainId"`
			Registry string  `json:"registry"`
			Manager  string  `json:"addressManager"`
			Target   string  `json:"target"`
			Resolved string  `json:"resolved"`
			Tx       *txView `json:"tx"`
		}{result.Name, result.ChainID.String(), result.Registry.Hex(), result.Manager.Hex(), result.Target.Hex(), result.Resolved.Hex(), newTxView(result.Call)})
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Registered %s on chain %s", result.Name, result.ChainID)))
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("address manager"), formatAddress(result.Manager))
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("resolves to    "), formatAddress(result.Resolved))
	if result.Resolved != result.Target {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("resolver returned %s, expected %s", result.Resolved.Hex(), result.Target.Hex())))
	}
	r.renderTx(result.Call)
	return nil
}

func (r *CallRenderer) renderTx(call *domain.CallResult) {
	if call == nil {
		return
	}
	labelStyle.Fprintf(r.out, "  tx %s (block %d, gas %d)\n", call.TxHash.Hex(), call.BlockNumber, call.GasUsed)
	if len(call.Events) > 0 {
		labelStyle.Fprintf(r.out, "  events: %s\n", strings.Join(call.Events, ", "))
	}
}
