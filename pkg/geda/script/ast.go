package script

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/fpgen/pkg/geda/footprint"
	"github.com/OpenTraceLab/fpgen/pkg/geda/units"
)

// File represents a complete footprint script. A script may define any
// number of footprints; each is written to its own output file.
type File struct {
	Footprints []*FootprintDef `parser:"@@*"`
}

// FootprintDef is one footprint block.
// Example: footprint "USB3130" { ... }
type FootprintDef struct {
	Name       string       `parser:"KwFootprint @String LBrace"`
	Statements []*Statement `parser:"@@* RBrace"`
}

// Statement is a single builder statement inside a footprint block.
type Statement struct {
	Description *DescriptionStmt `parser:"  @@"`
	Text        *TextStmt        `parser:"| @@"`
	Pads        *PadsStmt        `parser:"| @@"`
	Pad         *PadStmt         `parser:"| @@"`
	Pins        *PinsStmt        `parser:"| @@"`
	Pin         *PinStmt         `parser:"| @@"`
	Polyline    *PolylineStmt    `parser:"| @@"`
	Line        *LineStmt        `parser:"| @@"`
	Arc         *ArcStmt         `parser:"| @@"`
	Mark        *MarkStmt        `parser:"| @@"`
}

// DescriptionStmt sets the footprint's description text.
type DescriptionStmt struct {
	Text string `parser:"KwDescription @String"`
}

// TextStmt places the reference text.
// Example: text x=0 y=-100 rotation=1 scale=100
type TextStmt struct {
	Attrs []*Attr `parser:"KwText @@+"`
}

// PadStmt adds a single pad.
// Example: pad x=0 y=0 width=1.1mm height=1.6mm
type PadStmt struct {
	Attrs []*Attr `parser:"KwPad @@*"`
}

// PadsStmt adds an array of pads.
// Example: pads 5 x=0 y=0 dx=0.65mm width=0.4mm height=1.5mm
type PadsStmt struct {
	Count int     `parser:"KwPads @Number"`
	Attrs []*Attr `parser:"@@*"`
}

// PinStmt adds a single pin.
// Example: pin x=0 y=0 hole=30 diameter=66
type PinStmt struct {
	Attrs []*Attr `parser:"KwPin @@*"`
}

// PinsStmt adds an array of pins, optionally staggered.
// Example: pins 9 x=0 y=0 dx=54 dy=(112, -112) hole=30 diameter=66
type PinsStmt struct {
	Count int     `parser:"KwPins @Number"`
	Attrs []*Attr `parser:"@@*"`
}

// LineStmt adds a silkscreen line.
// Example: line x1=0 y1=0 x2=100 y2=0 thickness=8
type LineStmt struct {
	Attrs []*Attr `parser:"KwLine @@+"`
}

// PolylineStmt adds a silkscreen polyline through the listed points.
// Example: polyline (0,0) (100,0) (100,100) closed=true
type PolylineStmt struct {
	Points []*Pair `parser:"KwPolyline @@+"`
	Attrs  []*Attr `parser:"@@*"`
}

// ArcStmt adds a silkscreen arc.
// Example: arc x=0 y=0 diameter=400
type ArcStmt struct {
	Attrs []*Attr `parser:"KwArc @@+"`
}

// MarkStmt moves the element mark to the center of the pad or pin with
// the given number.
// Example: mark 3
type MarkStmt struct {
	Number string `parser:"KwMark @(String|Number)"`
}

// Attr is a key=value attribute.
type Attr struct {
	Key   string `parser:"@Ident Eq"`
	Value *Value `parser:"@@"`
}

// Value is an attribute value: a string, boolean, length, or a
// parenthesized tuple of lengths (used for staggered steps).
type Value struct {
	Str    *string `parser:"  @String"`
	True   bool    `parser:"| @KwTrue"`
	False  bool    `parser:"| @KwFalse"`
	Pair   *Pair   `parser:"| @@"`
	Length *Length `parser:"| @@"`
}

// Length is a numeric literal with an optional metric suffix.
// "54" is 54 mils, "0.65mm" is 0.65 millimeters.
type Length struct {
	Value  float64 `parser:"@Number"`
	Metric bool    `parser:"@KwMM?"`
}

// Mils returns the length converted to mils.
func (l *Length) Mils() float64 {
	if l.Metric {
		return l.Value * units.MM
	}
	return l.Value
}

// Pair is a parenthesized tuple of lengths.
type Pair struct {
	Items []*Length `parser:"LParen @@ ( Comma @@ )* RParen"`
}

// Mils returns a value's length in mils.
func (v *Value) Mils() (float64, error) {
	if v.Length == nil {
		return 0, fmt.Errorf("expected a length value")
	}
	return v.Length.Mils(), nil
}

// Text returns a value as text. Bare numbers are accepted so pin numbers
// can be written unquoted.
func (v *Value) Text() (string, error) {
	if v.Str != nil {
		return *v.Str, nil
	}
	if v.Length != nil && !v.Length.Metric {
		return strconv.FormatFloat(v.Length.Value, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("expected a string value")
}

// Boolean returns a value as a bool.
func (v *Value) Boolean() (bool, error) {
	if !v.True && !v.False {
		return false, fmt.Errorf("expected true or false")
	}
	return v.True, nil
}

// Integer returns a value as an integer (angles, rotation, scale).
func (v *Value) Integer() (int, error) {
	if v.Length == nil || v.Length.Metric {
		return 0, fmt.Errorf("expected an integer value")
	}
	n := int(v.Length.Value)
	if float64(n) != v.Length.Value {
		return 0, fmt.Errorf("expected an integer value, got %v", v.Length.Value)
	}
	return n, nil
}

// Step returns a value as a placement step: either a single length or a
// tuple of lengths applied alternately by index.
func (v *Value) Step() (footprint.Step, error) {
	if v.Pair != nil {
		step := make(footprint.Step, 0, len(v.Pair.Items))
		for _, item := range v.Pair.Items {
			step = append(step, item.Mils())
		}
		return step, nil
	}
	if v.Length != nil {
		return footprint.Step{v.Length.Mils()}, nil
	}
	return nil, fmt.Errorf("expected a length or tuple of lengths")
}
