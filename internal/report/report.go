// Package report renders ringdown events for human and machine consumers.
// Both the CLI and the HTTP API go through this package so the two surfaces
// can never drift apart.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/ringdown-toolkit/internal/domain"
)

// Format selects the output rendering.
type Format int

const (
	// FormatText renders one six-line block per event, blank-line separated.
	FormatText Format = iota
	// FormatJSON renders a two-space-indented JSON array of report objects.
	FormatJSON
)

// Summarize renders one event as the fixed six-line text block. The field
// order and precision are part of the output contract.
func Summarize(e domain.Event) string {
	r := e.Report()
	lines := []string{
		"Event: " + r.Event,
		"Reference: " + r.Reference,
		"Tau_220: " + r.Tau220,
		"Freq_220: " + r.Freq220,
		"Diffusivity (D=c^2 tau): " + r.Diffusivity,
		"Characteristic speed: " + r.CharacteristicSpeed,
	}
	return strings.Join(lines, "\n")
}

// Rows renders every event's report, preserving order.
func Rows(events []domain.Event) []domain.Report {
	rows := make([]domain.Report, len(events))
	for i, e := range events {
		rows[i] = e.Report()
	}
	return rows
}

// Render writes the selected events to w in the requested format. Text mode
// separates successive events with a blank line; JSON mode emits one array
// covering all events.
func Render(w io.Writer, events []domain.Event, format Format) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(Rows(events), "", "  ")
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		return nil
	case FormatText:
		for _, e := range events {
			if _, err := fmt.Fprintf(w, "%s\n\n", Summarize(e)); err != nil {
				return fmt.Errorf("render report: %w", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("render report: unknown format %d", format)
	}
}
