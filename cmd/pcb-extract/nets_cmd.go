package main

import (
	"fmt"
	"strings"

	"github.com/meawoppl/pastebom.com/pkg/format/kicad"
	"github.com/spf13/cobra"
)

var netsCmd = &cobra.Command{
	Use:   "nets <board.kicad_pcb> [net_name]",
	Short: "Show KiCad net information (diagnostic, not part of JSON extraction)",
	Long: `Lists every net on a KiCad board, or — when net_name is given — the
pads, tracks, and vias attached to that one net (routed arcs are counted
but not listed).

This is a pre-IR introspection tool against the parsed KiCad board model,
not against the extracted JSON; it only accepts .kicad_pcb input.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNets,
}

func init() {
	rootCmd.AddCommand(netsCmd)
}

func runNets(cmd *cobra.Command, args []string) error {
	board, err := kicad.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		names := board.GetAllNetNames()
		fmt.Fprintf(out, "%d nets:\n", len(names))
		for _, n := range names {
			if n == "" {
				n = "(unconnected)"
			}
			fmt.Fprintf(out, "  %s\n", n)
		}
		return nil
	}

	info := board.GetNetInfo(args[1])
	if info == nil {
		return fmt.Errorf("net %q not found on %s", args[1], args[0])
	}
	fmt.Fprintf(out, "net %s: %d pads, %d tracks, %d arcs, %d vias\n",
		info.Name, len(info.Pads), len(info.Tracks), len(info.Arcs), len(info.Vias))
	for _, p := range info.Pads {
		fmt.Fprintf(out, "  pad %s (%s, %s)\n", p.Number, p.Type, p.Shape)
	}
	for _, t := range info.Tracks {
		fmt.Fprintf(out, "  track %s %.3f,%.3f -> %.3f,%.3f\n", t.Layer, t.Start.X, t.Start.Y, t.End.X, t.End.Y)
	}
	for _, v := range info.Vias {
		fmt.Fprintf(out, "  via %.3f,%.3f (%s)\n", v.Position.X, v.Position.Y, strings.Join(v.Layers, ","))
	}
	return nil
}
