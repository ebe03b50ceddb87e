package main

import (
	"fmt"
	"os"

	"github.com/meawoppl/pastebom.com/pkg/extract"
	"github.com/meawoppl/pastebom.com/pkg/geomutil"
	"github.com/meawoppl/pastebom.com/pkg/ir"
	"github.com/spf13/cobra"
)

var (
	outPath       string
	formatFlag    string
	includeTracks bool
	includeNets   bool
	pretty        bool
	checkOverlaps bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&outPath, "output", "o", "", "write JSON to this file instead of stdout")
	flags.StringVarP(&formatFlag, "format", "f", "", "force input format: kicad|easyeda|eagle|altium (default: auto-detect)")
	flags.BoolVar(&includeTracks, "include-tracks", true, "include copper tracks, vias, and zones")
	flags.BoolVar(&includeNets, "include-nets", true, "include the net name table")
	flags.BoolVar(&pretty, "pretty", false, "indent the JSON output")
	flags.BoolVar(&checkOverlaps, "check-overlaps", false, "report footprint bounding boxes that intersect (diagnostic, not DRC)")
}

// reportOverlaps runs the optional footprint-AABB overlap diagnostic and
// prints any hits to stderr; it never fails the extraction itself. Each box
// is centered at Bbox.Pos+Bbox.RelPos; Bbox.Angle is not applied.
func reportOverlaps(cmd *cobra.Command, pcb *ir.PcbData) {
	entries := make([]geomutil.Indexed, len(pcb.Footprints))
	for i, fp := range pcb.Footprints {
		cx, cy := fp.Bbox.Pos.X+fp.Bbox.RelPos.X, fp.Bbox.Pos.Y+fp.Bbox.RelPos.Y
		hw, hh := float64(fp.Bbox.Size[0])/2, float64(fp.Bbox.Size[1])/2
		entries[i] = geomutil.Indexed{
			Label: fp.Ref,
			Box: geomutil.BoundingBox{
				Min: geomutil.Point{X: cx - hw, Y: cy - hh},
				Max: geomutil.Point{X: cx + hw, Y: cy + hh},
			},
		}
	}
	overlaps := geomutil.FindOverlaps(entries)
	for _, o := range overlaps {
		fmt.Fprintf(cmd.ErrOrStderr(), "overlap: %s <-> %s\n", o.A, o.B)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	input := args[0]

	var format extract.Format
	if formatFlag != "" {
		f, ok := extract.ParseFormat(formatFlag)
		if !ok {
			return &extract.Error{Code: extract.CodeUnsupportedFormat, Message: fmt.Sprintf("unknown -f value %q", formatFlag)}
		}
		format = f
	}

	opts := extract.DefaultOptions()
	opts.IncludeTracks = includeTracks
	opts.IncludeNets = includeNets
	opts.Logger = extract.NewLogger(verbose)

	data, err := os.ReadFile(input)
	if err != nil {
		return &extract.Error{Code: extract.CodeIO, Message: err.Error(), Cause: err}
	}

	pcb, err := extract.ExtractBytes(data, format, opts)
	if err != nil {
		return err
	}

	if checkOverlaps {
		reportOverlaps(cmd, pcb)
	}

	out, err := extract.MarshalJSON(pcb, pretty)
	if err != nil {
		return &extract.Error{Code: extract.CodeInternalInvariant, Message: "json marshal failed", Cause: err}
	}
	out = append(out, '\n')

	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return &extract.Error{Code: extract.CodeIO, Message: err.Error(), Cause: err}
	}
	return nil
}
