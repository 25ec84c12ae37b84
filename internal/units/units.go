// Package units implements a minimal dimensional-analysis layer for the
// quantities the ringdown toolkit works with: durations, frequencies, speeds,
// and diffusivities. Every physical value is carried as a magnitude plus a
// unit, and conversions are checked against the unit's dimension so that a
// damping time can never silently be used where a frequency is expected.
//
// The unit vocabulary is deliberately tiny. Dimensions are tracked as
// length/time exponent pairs, which covers everything derivable from
// c, tau, and f. Compound unit symbols follow the astropy spelling used by
// the published tables this tool reproduces: "m2 / s", "m / s".
package units

import (
	"fmt"
	"math"
	"strings"
)

// Dimension is an exponent vector over the base dimensions this package
// tracks. Two quantities are compatible exactly when their Dimensions are
// equal.
type Dimension struct {
	Length int
	Time   int
}

// Unit is a named scale of a dimension. The factor converts a magnitude
// expressed in this unit to canonical SI.
type Unit struct {
	Symbol string
	factor float64
	dim    Dimension
}

// Dim returns the unit's dimension.
func (u Unit) Dim() Dimension { return u.dim }

// The unit vocabulary. All factors are relative to canonical SI units
// (seconds, metres).
var (
	Second      = Unit{Symbol: "s", factor: 1, dim: Dimension{Time: 1}}
	Millisecond = Unit{Symbol: "ms", factor: 1e-3, dim: Dimension{Time: 1}}
	Hertz       = Unit{Symbol: "Hz", factor: 1, dim: Dimension{Time: -1}}
	Metre       = Unit{Symbol: "m", factor: 1, dim: Dimension{Length: 1}}

	MetrePerSecond       = Unit{Symbol: "m / s", factor: 1, dim: Dimension{Length: 1, Time: -1}}
	SquareMetrePerSecond = Unit{Symbol: "m2 / s", factor: 1, dim: Dimension{Length: 2, Time: -1}}
)

// canonical maps a dimension to its preferred SI unit. Results of Mul, Div,
// and Sqrt are expressed in these; dimensions without an entry get a
// generically spelled SI unit from siUnitFor.
var canonical = map[Dimension]Unit{
	{Time: 1}:             Second,
	{Time: -1}:            Hertz,
	{Length: 1}:           Metre,
	{Length: 1, Time: -1}: MetrePerSecond,
	{Length: 2, Time: -1}: SquareMetrePerSecond,
}

// siUnitFor builds the SI unit for an arbitrary dimension, preferring the
// canonical table and falling back to an exponent spelling such as "m2 / s2".
func siUnitFor(d Dimension) Unit {
	if u, ok := canonical[d]; ok {
		return u
	}
	return Unit{Symbol: spellDimension(d), factor: 1, dim: d}
}

// spellDimension renders a dimension in astropy-style notation: positive
// exponents in the numerator, negative in the denominator, "1" for an empty
// numerator ("1 / s2"), empty string for dimensionless.
func spellDimension(d Dimension) string {
	var num, den []string

	appendExp := func(parts []string, symbol string, exp int) []string {
		if exp == 1 {
			return append(parts, symbol)
		}
		return append(parts, fmt.Sprintf("%s%d", symbol, exp))
	}

	if d.Length > 0 {
		num = appendExp(num, "m", d.Length)
	} else if d.Length < 0 {
		den = appendExp(den, "m", -d.Length)
	}
	if d.Time > 0 {
		num = appendExp(num, "s", d.Time)
	} else if d.Time < 0 {
		den = appendExp(den, "s", -d.Time)
	}

	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return strings.Join(num, " ")
	case len(num) == 0:
		return "1 / " + strings.Join(den, " ")
	default:
		return strings.Join(num, " ") + " / " + strings.Join(den, " ")
	}
}

// Quantity is an immutable magnitude-plus-unit pair.
type Quantity struct {
	value float64
	unit  Unit
}

// New builds a Quantity of value in the given unit. Values are not validated;
// zero, negative, and non-finite magnitudes propagate through arithmetic
// unchanged.
func New(value float64, unit Unit) Quantity {
	return Quantity{value: value, unit: unit}
}

// SpeedOfLight is c, exact by SI definition.
var SpeedOfLight = New(299_792_458, MetrePerSecond)

// Value returns the magnitude in the quantity's own unit.
func (q Quantity) Value() float64 { return q.value }

// Unit returns the quantity's unit.
func (q Quantity) Unit() Unit { return q.unit }

// si returns the magnitude expressed in canonical SI units.
func (q Quantity) si() float64 { return q.value * q.unit.factor }

// To converts the quantity to the target unit. It returns an error when the
// dimensions differ; no implicit coercion ever happens.
func (q Quantity) To(target Unit) (Quantity, error) {
	if q.unit.dim != target.dim {
		return Quantity{}, fmt.Errorf("cannot convert %q to %q: incompatible dimensions", q.unit.Symbol, target.Symbol)
	}
	return Quantity{value: q.si() / target.factor, unit: target}, nil
}

// MustTo is To for conversions whose compatibility is known at compile time.
// It panics on a dimension mismatch, which is a programming error.
func (q Quantity) MustTo(target Unit) Quantity {
	converted, err := q.To(target)
	if err != nil {
		panic("units: " + err.Error())
	}
	return converted
}

// Mul multiplies two quantities. The result is expressed in the SI unit for
// the combined dimension.
func (q Quantity) Mul(other Quantity) Quantity {
	dim := Dimension{
		Length: q.unit.dim.Length + other.unit.dim.Length,
		Time:   q.unit.dim.Time + other.unit.dim.Time,
	}
	return Quantity{value: q.si() * other.si(), unit: siUnitFor(dim)}
}

// Div divides the quantity by another. Division by a zero magnitude is not
// guarded: the result carries the IEEE-754 infinity or NaN.
func (q Quantity) Div(other Quantity) Quantity {
	dim := Dimension{
		Length: q.unit.dim.Length - other.unit.dim.Length,
		Time:   q.unit.dim.Time - other.unit.dim.Time,
	}
	return Quantity{value: q.si() / other.si(), unit: siUnitFor(dim)}
}

// Sqrt takes the square root of the quantity, halving the dimension
// exponents. An odd exponent has no principal root in this system and is a
// programming error, so Sqrt panics on it.
func (q Quantity) Sqrt() Quantity {
	d := q.unit.dim
	if d.Length%2 != 0 || d.Time%2 != 0 {
		panic(fmt.Sprintf("units: sqrt of %q: odd dimension exponent", q.unit.Symbol))
	}
	dim := Dimension{Length: d.Length / 2, Time: d.Time / 2}
	return Quantity{value: math.Sqrt(q.si()), unit: siUnitFor(dim)}
}

// Fixed renders the quantity with a fixed number of decimal places, e.g.
// Fixed(3) on 4 ms gives "4.000 ms".
func (q Quantity) Fixed(decimals int) string {
	return strings.TrimSpace(fmt.Sprintf("%.*f %s", decimals, q.value, q.unit.Symbol))
}

// Scientific renders the quantity in scientific notation, e.g. Scientific(3)
// on the GW150914 diffusivity gives "3.595e+14 m2 / s".
func (q Quantity) Scientific(decimals int) string {
	return strings.TrimSpace(fmt.Sprintf("%.*e %s", decimals, q.value, q.unit.Symbol))
}

// String renders the quantity with full float precision, for logs and errors.
func (q Quantity) String() string {
	return strings.TrimSpace(fmt.Sprintf("%g %s", q.value, q.unit.Symbol))
}
