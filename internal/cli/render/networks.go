package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/polymorpher/band-oracle-reader/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// RenderNetworksList renders the configured networks as a table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if result.ConfigSource == "" {
		_, err := fmt.Fprintln(r.out, "No bandreader.toml found; pass --network <rpc-url> or add one with [rpc_endpoints]")
		return err
	}
	if len(result.Networks) == 0 {
		_, err := fmt.Fprintf(r.out, "No networks configured in %s [rpc_endpoints]\n", result.ConfigSource)
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"Network", "Chain ID", "Status"})

	for _, network := range result.Networks {
		if network.Error != nil {
			status := "error: " + network.Error.Error()
			if r.color {
				status = FormatError(network.Error.Error())
			}
			t.AppendRow(table.Row{network.Name, "-", status})
			continue
		}

		status := network.Explorer
		if status == "" {
			status = "ok"
		}
		if r.color {
			status = FormatSuccess(status)
		}
		t.AppendRow(table.Row{network.Name, network.ChainID, status})
	}

	_, err := fmt.Fprintf(r.out, "Networks from %s:\n\n%s\n", result.ConfigSource, t.Render())
	return err
}
