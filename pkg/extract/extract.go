package extract

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/meawoppl/pastebom.com/pkg/bom"
	"github.com/meawoppl/pastebom.com/pkg/format/altium"
	"github.com/meawoppl/pastebom.com/pkg/format/eagle"
	"github.com/meawoppl/pastebom.com/pkg/format/easyeda"
	"github.com/meawoppl/pastebom.com/pkg/format/kicad"
	"github.com/meawoppl/pastebom.com/pkg/ir"
)

// Options mirrors spec §6's ExtractOptions, plus the BOM grouping options
// spec §4.6 exposes independently of the core extraction path.
type Options struct {
	IncludeTracks bool
	IncludeNets   bool
	BOM           bom.Options
	// Logger receives recoverable parse anomalies ([WARN]-prefixed, spec
	// §7). Nil discards them, matching the CLI's default (quiet unless
	// --verbose).
	Logger *Logger
}

// DefaultOptions matches the CLI's own defaults: tracks and nets included,
// BOM grouped with spec §4.6's default fields and sort order.
func DefaultOptions() Options {
	return Options{
		IncludeTracks: true,
		IncludeNets:   true,
		BOM:           bom.DefaultOptions(),
	}
}

// Extract reads path and lowers it into the tool-independent PcbData model.
func Extract(path string, opts Options) (*ir.PcbData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(err)
	}
	format, err := detectFormat(path, data)
	if err != nil {
		return nil, err
	}
	return ExtractBytes(data, format, opts)
}

// ExtractBytes lowers an already-read buffer of the given format. Pass ""
// for format to run spec §4.1's content-only sniffing (no filename
// extension available).
func ExtractBytes(data []byte, format Format, opts Options) (*ir.PcbData, error) {
	if format == "" {
		f, err := detectFormat("", data)
		if err != nil {
			return nil, err
		}
		format = f
	}

	var (
		pcb   *ir.PcbData
		comps []bom.Component
		warns []string
	)

	switch format {
	case FormatKiCad:
		board, err := kicad.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, malformed(format, "kicad parse", err)
		}
		pcb, comps, warns = kicad.ToIR(board)

	case FormatEasyEDA:
		doc, err := easyeda.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, malformed(format, "easyeda parse", err)
		}
		pcb, comps, warns = easyeda.ToIR(doc)

	case FormatEagle:
		doc, err := eagle.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, malformed(format, "eagle parse", err)
		}
		pcb, comps, warns = eagle.ToIR(doc)

	case FormatAltium:
		doc, err := altium.Parse(data)
		if err != nil {
			return nil, malformed(format, "altium container/record parse", err)
		}
		pcb, comps, warns = altium.ToIR(doc)

	default:
		return nil, &Error{Code: CodeUnsupportedFormat, Message: "unrecognized format tag: " + string(format)}
	}

	for _, w := range warns {
		opts.Logger.Warnf("%s", w)
	}

	if len(pcb.Footprints) == 0 && len(pcb.Edges) == 0 && len(pcb.Nets) == 0 {
		return nil, &Error{Code: CodeMalformed, Message: "no board, footprint, or net record found", Format: format, Context: "failure to find any board/footprint/net record"}
	}

	if len(comps) > 0 {
		pcb.BOM = bom.Build(comps, opts.BOM)
	}
	if !opts.IncludeTracks {
		pcb.Tracks = nil
		pcb.Zones = nil
	}
	if !opts.IncludeNets {
		pcb.Nets = nil
	}

	return pcb, nil
}

// MarshalJSON emits the canonical JSON form of data (spec §6): object key
// order matching the IR's declared field order, floats rounded to 6
// decimals (handled by ir.F's own Marshaler), arrays insertion-ordered.
// pretty indents with two spaces; compact emits one line.
func MarshalJSON(data *ir.PcbData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}
