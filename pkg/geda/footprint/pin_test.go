package footprint

import (
	"errors"
	"testing"
)

func TestPinDefaults(t *testing.T) {
	p, err := NewPin(PinSpec{X: Float(0), Y: Float(0), Hole: Float(30), Diameter: Float(66)})
	if err != nil {
		t.Fatalf("NewPin failed: %v", err)
	}
	if !p.Round {
		t.Error("Round must default to true")
	}
}

func TestPinEdges(t *testing.T) {
	p, err := NewPin(PinSpec{X: Float(100), Y: Float(-50), Hole: Float(30), Diameter: Float(60)})
	if err != nil {
		t.Fatalf("NewPin failed: %v", err)
	}
	if got := mustFloat(p.Left()); got != 70 {
		t.Errorf("Left() = %v, want 70", got)
	}
	if got := mustFloat(p.Right()); got != 130 {
		t.Errorf("Right() = %v, want 130", got)
	}
	if got := mustFloat(p.Top()); got != -80 {
		t.Errorf("Top() = %v, want -80", got)
	}
	if got := mustFloat(p.Bottom()); got != -20 {
		t.Errorf("Bottom() = %v, want -20", got)
	}

	// Edge setters recenter the pin.
	if err := p.SetLeft(0); err != nil {
		t.Fatalf("SetLeft failed: %v", err)
	}
	if got := mustFloat(p.X()); got != 30 {
		t.Errorf("X() after SetLeft(0) = %v, want 30", got)
	}
	if err := p.SetBottom(0); err != nil {
		t.Fatalf("SetBottom failed: %v", err)
	}
	if got := mustFloat(p.Y()); got != -30 {
		t.Errorf("Y() after SetBottom(0) = %v, want -30", got)
	}
}

func TestPinEdgeWithoutDiameter(t *testing.T) {
	p := &Pin{Round: true}
	p.SetX(0)
	if err := p.SetLeft(10); !errors.Is(err, ErrUnresolvedGeometry) {
		t.Errorf("SetLeft without diameter: err = %v, want ErrUnresolvedGeometry", err)
	}
	if _, err := p.Left(); !errors.Is(err, ErrUnresolvedGeometry) {
		t.Errorf("Left without diameter: err = %v, want ErrUnresolvedGeometry", err)
	}
}

func TestPinBaseInheritance(t *testing.T) {
	base, err := NewPin(PinSpec{
		X:        Float(0),
		Y:        Float(10),
		Hole:     Float(135),
		Diameter: Float(195),
		Number:   String(""),
	})
	if err != nil {
		t.Fatalf("NewPin failed: %v", err)
	}

	derived, err := NewPin(PinSpec{Base: base, X: Float(700)})
	if err != nil {
		t.Fatalf("NewPin with base failed: %v", err)
	}
	if got := mustFloat(derived.X()); got != 700 {
		t.Errorf("derived X() = %v, want 700", got)
	}
	if got := mustFloat(derived.Y()); got != 10 {
		t.Errorf("derived Y() = %v, want 10", got)
	}
	if got := mustFloat(derived.Hole()); got != 135 {
		t.Errorf("derived Hole() = %v, want 135", got)
	}
	if got := mustFloat(derived.Diameter()); got != 195 {
		t.Errorf("derived Diameter() = %v, want 195", got)
	}

	base.SetHole(999)
	if got := mustFloat(derived.Hole()); got != 135 {
		t.Errorf("derived Hole() after base mutation = %v, want 135", got)
	}
}

func TestPinBaseUnchangedByDerived(t *testing.T) {
	base, err := NewPin(PinSpec{X: Float(-89.57), Y: Float(8.66), Hole: Float(135), Diameter: Float(195)})
	if err != nil {
		t.Fatalf("NewPin failed: %v", err)
	}

	// Overriding a field on a derived pin must leave the base's own
	// geometry intact.
	if _, err := NewPin(PinSpec{Base: base, X: Float(191.93), Round: Bool(false)}); err != nil {
		t.Fatalf("NewPin with base failed: %v", err)
	}
	if got := mustFloat(base.X()); got != -89.57 {
		t.Errorf("base X() after deriving = %v, want -89.57", got)
	}
	if got := mustFloat(base.Y()); got != 8.66 {
		t.Errorf("base Y() after deriving = %v, want 8.66", got)
	}
	if !base.Round {
		t.Error("base Round changed by deriving")
	}

	// Two siblings derived from the same base must not see each other.
	first, err := NewPin(PinSpec{Base: base, X: Float(-140.7)})
	if err != nil {
		t.Fatalf("NewPin with base failed: %v", err)
	}
	second, err := NewPin(PinSpec{Base: base, X: Float(140.7)})
	if err != nil {
		t.Fatalf("NewPin with base failed: %v", err)
	}
	if got := mustFloat(first.X()); got != -140.7 {
		t.Errorf("first sibling X() = %v, want -140.7", got)
	}
	if got := mustFloat(second.X()); got != 140.7 {
		t.Errorf("second sibling X() = %v, want 140.7", got)
	}
}

func TestPinRecords(t *testing.T) {
	tests := []struct {
		name string
		spec PinSpec
		want string
	}{
		{
			name: "round pin",
			spec: PinSpec{X: Float(0), Y: Float(0), Hole: Float(30), Diameter: Float(66), Number: String("1")},
			want: `Pin[0 0 6600 200 6700 3000 "" "1" 0x1]`,
		},
		{
			name: "square pin",
			spec: PinSpec{X: Float(54), Y: Float(-12), Hole: Float(30), Diameter: Float(66), Number: String("2"), Round: Bool(false)},
			want: `Pin[5400 -1200 6600 200 6700 3000 "" "2" 0x101]`,
		},
		{
			name: "named pin",
			spec: PinSpec{X: Float(0), Y: Float(0), Hole: Float(20), Diameter: Float(40), Name: String("GND"), Number: String("3")},
			want: `Pin[0 0 4000 200 4100 2000 "GND" "3" 0x1]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPin(tt.spec)
			if err != nil {
				t.Fatalf("NewPin failed: %v", err)
			}
			recs, err := p.Records(0, 0)
			if err != nil {
				t.Fatalf("Records failed: %v", err)
			}
			if len(recs) != 1 || recs[0] != tt.want {
				t.Errorf("Records = %q, want [%q]", recs, tt.want)
			}
		})
	}
}

func TestPinRecordsTranslation(t *testing.T) {
	p, err := NewPin(PinSpec{X: Float(100), Y: Float(200), Hole: Float(30), Diameter: Float(66)})
	if err != nil {
		t.Fatalf("NewPin failed: %v", err)
	}
	recs, err := p.Records(-100, -200)
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	want := `Pin[0 0 6600 200 6700 3000 "" "" 0x1]`
	if recs[0] != want {
		t.Errorf("Records = %q, want %q", recs[0], want)
	}
}

func TestPinRecordsUnresolved(t *testing.T) {
	p, err := NewPin(PinSpec{X: Float(0), Y: Float(0), Diameter: Float(66)})
	if err != nil {
		t.Fatalf("NewPin failed: %v", err)
	}
	if _, err := p.Records(0, 0); !errors.Is(err, ErrUnresolvedGeometry) {
		t.Errorf("Records without hole: err = %v, want ErrUnresolvedGeometry", err)
	}
}
