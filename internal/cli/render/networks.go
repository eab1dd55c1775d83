package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mxc-foundation/zkdeploy/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out  io.Writer
	json bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, json bool) *NetworksRenderer {
	return &NetworksRenderer{out: out, json: json}
}

type networkView struct {
	Name      string            `json:"name"`
	ChainID   uint64            `json:"chainId,omitempty"`
	RPCURL    string            `json:"rpcUrl,omitempty"`
	Confirm   bool              `json:"confirm,omitempty"`
	Addresses map[string]string `json:"addresses,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// RenderNetworksList renders the configured networks
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if r.json {
		views := make([]networkView, 0, len(result.Networks))
		for _, n := range result.Networks {
			view := networkView{Name: n.Name}
			if n.Error != nil {
				view.Error = n.Error.Error()
			}
			if n.Network != nil {
				view.ChainID = n.Network.ChainID
				view.RPCURL = n.Network.RPCURL
				view.Confirm = n.Network.Confirm
				view.Addresses = n.Network.Addresses
			}
			views = append(views, view)
		}
		return JSON(r.out, views)
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in zkdeploy.toml [networks]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader(table.Row{"", "NETWORK", "CHAIN ID", "ADDRESSES"})
	for _, n := range result.Networks {
		if n.Error != nil {
			t.AppendRow(table.Row{"❌", n.Name, "-", unknownStyle.Sprint(n.Error.Error())})
			continue
		}
		name := n.Name
		if n.Network.Confirm {
			name += driftStyle.Sprint(" (confirm)")
		}
		t.AppendRow(table.Row{"✅", name, n.Network.ChainID, strings.Join(addressNames(n.Network.Addresses), ", ")})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}
