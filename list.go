package main

import (
	"fmt"
	"io"
	"net"

	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/table"
)

func banner() {
	figure.NewColorFigure("Go mac", "slant", "cyan", true).Print()
	figure.NewColorFigure("manager!", "slant", "yellow", true).Print()
}

// listInterfaces renders a table of the host's network interfaces. Purely
// informational; needs no privileges.
func listInterfaces(w io.Writer) error {
	ifaces, err := net.Interfaces()
	if err != nil {
		return fmt.Errorf("listing interfaces: %w", err)
	}
	fmt.Fprintln(w, renderInterfaceTable(ifaces))
	return nil
}

func renderInterfaceTable(ifaces []net.Interface) string {
	t := table.NewWriter()
	t.SetTitle("Network interfaces")
	t.AppendHeader(table.Row{"#", "Name", "Index", "MTU", "MAC Address"})
	for i, iface := range ifaces {
		t.AppendRow(table.Row{i + 1, iface.Name, iface.Index, iface.MTU, iface.HardwareAddr.String()})
	}
	return t.Render()
}
