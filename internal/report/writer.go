// Package report renders the output of a simulation run. It consumes
// the ordered step records produced by internal/sim and contains no
// estimation logic: writers for CSV and JSON, an interactive HTML chart,
// a static PNG plot and an MJPEG animation of the run.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/banshee-data/position.report/internal/sim"
)

// Summary is the JSON output unit for one run: identifying metadata
// plus the full record sequence.
type Summary struct {
	RunID   string           `json:"run_id"`
	Steps   int              `json:"steps"`
	Records []sim.StepRecord `json:"records"`
}

// WriteCSV writes the records as a five-column CSV with a header row.
// Floats are formatted with strconv's shortest round-trip form so the
// output re-parses to the same bits.
func WriteCSV(w io.Writer, records []sim.StepRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "true_position", "measurement", "estimated_position", "estimated_velocity"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, 5)
	for _, r := range records {
		row[0] = formatFloat(r.Time)
		row[1] = formatFloat(r.TruePosition)
		row[2] = formatFloat(r.Measurement)
		row[3] = formatFloat(r.EstimatedPosition)
		row[4] = formatFloat(r.EstimatedVelocity)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the run summary as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
