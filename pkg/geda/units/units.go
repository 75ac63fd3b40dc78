// Package units provides the length units and interpolation helpers shared
// by the footprint shape entities.
//
// All coordinates and dimensions in this module are expressed in mils
// (thousandths of an inch), the unit pcb footprint authors work in. pcb
// itself stores coordinates in 1/100 mil; ToUnits performs that conversion
// when shapes are serialized.
package units

import "math"

// MM is the number of mils per millimeter. Metric dimensions are written
// as multiples of this constant, e.g. "0.65 * units.MM".
const MM = 1.0 / 0.0254

// ToUnits converts a value in mils to pcb's native 1/100-mil unit, rounded
// to the nearest integer with ties away from zero. Negative values are
// permitted; no clamping is performed.
func ToUnits(mil float64) int {
	return int(math.Round(mil * 100))
}

// Between returns an intermediate value between two endpoints by linear
// interpolation: a + (b-a)*t. For t=0 it returns exactly a, for t=1
// exactly b.
func Between(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Midpoint returns the value halfway between a and b.
func Midpoint(a, b float64) float64 {
	return Between(a, b, 0.5)
}
