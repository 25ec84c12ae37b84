package domain

import (
	"time"

	"github.com/couchcryptid/ringdown-toolkit/internal/units"
)

// Event holds the phenomenological ringdown parameters for one detection.
// An Event is constructed whole and never mutated; derived quantities are
// computed on demand rather than stored.
type Event struct {
	Name      string
	Tau       units.Quantity // dominant damping time
	Freq      units.Quantity // dominant mode frequency
	Reference string
}

// NewCustomEvent builds an event from user-supplied damping time and
// frequency, interpreted as milliseconds and hertz. An empty name defaults
// to "Custom". Values are not validated; see the package documentation.
func NewCustomEvent(name string, tauMS, freqHz float64) Event {
	if name == "" {
		name = "Custom"
	}
	return Event{
		Name:      name,
		Tau:       units.New(tauMS, units.Millisecond),
		Freq:      units.New(freqHz, units.Hertz),
		Reference: CustomReference,
	}
}

// Diffusivity returns the informational diffusivity D = c^2 * tau in m2/s.
func (e Event) Diffusivity() units.Quantity {
	return units.SpeedOfLight.Mul(units.SpeedOfLight).Mul(e.Tau)
}

// CharacteristicSpeed returns sqrt(D / tau) in m/s, the propagation speed
// implied by the telegraph model. For any positive tau this is numerically c;
// a zero tau divides by zero and the degenerate result propagates.
func (e Event) CharacteristicSpeed() units.Quantity {
	return e.Diffusivity().Div(e.Tau).Sqrt()
}

// Report is the fixed-precision, string-valued rendering of an event and its
// derived quantities. Its JSON shape is the exact wire format of both the CLI
// --json output and the HTTP API.
type Report struct {
	Event               string `json:"event"`
	Tau220              string `json:"tau_220"`
	Freq220             string `json:"freq_220"`
	Diffusivity         string `json:"diffusivity"`
	CharacteristicSpeed string `json:"characteristic_speed"`
	Reference           string `json:"reference"`

	GeneratedAt time.Time `json:"-"`
}

// Report renders the event with the fixed per-field precision described in
// the package documentation. GeneratedAt comes from the package clock so
// tests can freeze it.
func (e Event) Report() Report {
	return Report{
		Event:               e.Name,
		Tau220:              e.Tau.MustTo(units.Millisecond).Fixed(3),
		Freq220:             e.Freq.MustTo(units.Hertz).Fixed(1),
		Diffusivity:         e.Diffusivity().Scientific(3),
		CharacteristicSpeed: e.CharacteristicSpeed().MustTo(units.MetrePerSecond).Scientific(6),
		Reference:           e.Reference,
		GeneratedAt:         clock.Now(),
	}
}
