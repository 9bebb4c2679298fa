// Package export provides composition-root sinks for a finished
// BenchmarkRun: a byte-stable JSON dump and a flat CSV summary. Neither
// sink is part of the core measurement contract — a host wires in
// whichever it needs at its own boundary.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ravenscale/workbench/internal/report"
)

// WriteJSON marshals run as indented JSON to w. The field contract is a
// flat, tag-driven struct marshal with no format variance to justify a
// third-party codec, so this stays on encoding/json.
func WriteJSON(w io.Writer, run report.BenchmarkRun) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("export: write json: %w", err)
	}
	return nil
}
