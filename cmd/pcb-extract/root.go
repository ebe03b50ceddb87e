// Package main implements pcb-extract, a headless CLI that lowers a KiCad,
// EasyEDA, Eagle/Fusion360, or Altium Designer PCB file into the
// tool-independent JSON intermediate representation pkg/ir defines.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pcb-extract <INPUT>",
	Short: "Extract a tool-independent PCB JSON model from a native design file",
	Long: `pcb-extract reads a native PCB design file (KiCad .kicad_pcb, EasyEDA
.json export, Eagle/Fusion360 .brd, or Altium Designer .PcbDoc) and writes
the Interactive HTML BOM viewer's JSON intermediate representation.

Examples:
  pcb-extract board.kicad_pcb
  pcb-extract board.PcbDoc -o board.json --pretty
  pcb-extract export.brd -f eagle --include-tracks=false`,
	Version: "0.1.0",
	Args:    cobra.ExactArgs(1),
	RunE:    runExtract,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log recoverable parse anomalies ([WARN]/[INFO]) to stderr")
}

// Execute runs the root command, mapping failures onto spec §6's exit codes:
// 0 success, 2 bad CLI usage, 3 unsupported format, 4 parse error, 5 I/O error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func main() {
	Execute()
}
