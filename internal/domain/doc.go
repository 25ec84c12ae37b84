// Package domain models gravitational-wave ringdown events and the derived
// quantities of the telegraph-equation reinterpretation.
//
// # Data Source
//
// The built-in catalogue carries the dominant quasi-normal-mode ("220")
// phenomenology for three canonical LIGO/Virgo detections, with damping time
// and frequency taken from the published posterior medians:
//
//	GW150914  tau=4.0 ms  f=251 Hz  Abbott et al. (2016, PRL 116, 061102)
//	GW170104  tau=5.0 ms  f=200 Hz  Abbott et al. (2017, PRL 118, 221101)
//	GW190521  tau=5.5 ms  f=190 Hz  Abbott et al. (2020, PRL 125, 101102)
//
// The catalogue is rebuilt fresh on every call and is never persisted; events
// are immutable values.
//
// # Derived Quantities
//
// Under the telegraph analogy the damping time maps to an informational
// diffusivity and an implied propagation speed:
//
//	D = c^2 * tau            (m2 / s)
//	v = sqrt(D / tau)        (m / s)
//
// Substituting the first expression into the second reduces v to exactly c.
// The identity is a property of the model, not of any particular event, and
// the test suite pins it. Derived quantities are computed on demand and never
// stored on the event.
//
// # Input Conventions
//
// Custom events arrive as key=value parameter tokens:
//
//	tau_ms=<float>    dominant damping time in milliseconds (required)
//	freq_hz=<float>   dominant mode frequency in hertz (required)
//
// Non-positive or non-finite parameters are not rejected: they propagate
// into the arithmetic and produce degenerate (zero, negative, infinite, or
// NaN) derived values, matching the published tooling this package mirrors.
//
// # Report Formatting
//
// Reports render every field as a pre-formatted string with fixed precision:
// tau to three decimals in ms, frequency to one decimal in Hz, diffusivity in
// three-decimal scientific notation, characteristic speed in six-decimal
// scientific notation. Unit spellings ("m2 / s", "m / s") follow the astropy
// output of the published tables so the two toolchains diff cleanly.
package domain
