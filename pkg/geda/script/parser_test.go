package script

import (
	"strings"
	"testing"
)

func TestParseFootprintBlock(t *testing.T) {
	input := `
# Through-hole USB micro-B connector
footprint "USB3130" {
  description "USB micro-B receptacle"
  pins 5 x=0 y=0 dx=0.65mm dy=(1mm, -1mm) hole=0.4mm diameter=0.8mm
  pin x=-140.75 y=-30.7 hole=53.15 diameter=76.77 number=""
  mark 3
  text x=0 y=-100 rotation=1 scale=100
}
`
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	file, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	if len(file.Footprints) != 1 {
		t.Fatalf("parsed %d footprints, want 1", len(file.Footprints))
	}
	def := file.Footprints[0]
	if def.Name != "USB3130" {
		t.Errorf("name = %q, want USB3130", def.Name)
	}
	if len(def.Statements) != 5 {
		t.Fatalf("parsed %d statements, want 5", len(def.Statements))
	}

	if def.Statements[0].Description == nil || def.Statements[0].Description.Text != "USB micro-B receptacle" {
		t.Errorf("statement 1: description not parsed: %+v", def.Statements[0])
	}

	pins := def.Statements[1].Pins
	if pins == nil {
		t.Fatalf("statement 2: expected pins, got %+v", def.Statements[1])
	}
	if pins.Count != 5 {
		t.Errorf("pins count = %d, want 5", pins.Count)
	}
	var dy *Attr
	for _, a := range pins.Attrs {
		if a.Key == "dy" {
			dy = a
		}
	}
	if dy == nil || dy.Value.Pair == nil || len(dy.Value.Pair.Items) != 2 {
		t.Fatalf("pins dy: expected a 2-element tuple, got %+v", dy)
	}
	if !dy.Value.Pair.Items[0].Metric || dy.Value.Pair.Items[1].Value != -1 {
		t.Errorf("pins dy tuple = %+v, want (1mm, -1mm)", dy.Value.Pair.Items)
	}

	if def.Statements[3].Mark == nil || def.Statements[3].Mark.Number != "3" {
		t.Errorf("statement 4: mark not parsed: %+v", def.Statements[3])
	}
	if def.Statements[4].Text == nil {
		t.Errorf("statement 5: text not parsed: %+v", def.Statements[4])
	}
}

func TestParseMultipleFootprints(t *testing.T) {
	input := `
footprint "A" { pad x=0 y=0 width=10 height=10 }
footprint "B" { pin x=0 y=0 hole=30 diameter=66 }
`
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	file, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(file.Footprints) != 2 {
		t.Fatalf("parsed %d footprints, want 2", len(file.Footprints))
	}
	if file.Footprints[0].Name != "A" || file.Footprints[1].Name != "B" {
		t.Errorf("names = %q, %q, want A, B", file.Footprints[0].Name, file.Footprints[1].Name)
	}
}

func TestParseSilkStatements(t *testing.T) {
	input := `
footprint "SILK" {
  line x1=0 y1=0 x2=100 y2=0 thickness=8
  polyline (0,0) (100,0) (100,100) closed=true
  arc x=0 y=0 diameter=400
}
`
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	file, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	st := file.Footprints[0].Statements
	if len(st) != 3 {
		t.Fatalf("parsed %d statements, want 3", len(st))
	}
	if st[0].Line == nil {
		t.Errorf("statement 1: expected line, got %+v", st[0])
	}
	pl := st[1].Polyline
	if pl == nil {
		t.Fatalf("statement 2: expected polyline, got %+v", st[1])
	}
	if len(pl.Points) != 3 {
		t.Errorf("polyline points = %d, want 3", len(pl.Points))
	}
	if len(pl.Attrs) != 1 || pl.Attrs[0].Key != "closed" {
		t.Errorf("polyline attrs = %+v, want closed", pl.Attrs)
	}
	if st[2].Arc == nil {
		t.Errorf("statement 3: expected arc, got %+v", st[2])
	}
}

func TestParseLengthUnits(t *testing.T) {
	l := &Length{Value: 0.65, Metric: true}
	got := l.Mils()
	if got < 25.5 || got > 25.7 {
		t.Errorf("0.65mm = %v mils, want ~25.59", got)
	}
	l = &Length{Value: 54}
	if l.Mils() != 54 {
		t.Errorf("54 = %v mils, want 54", l.Mils())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing brace", input: `footprint "X" pad x=0`},
		{name: "missing name", input: `footprint { }`},
		{name: "attr without value", input: `footprint "X" { pad x= }`},
		{name: "fractional count", input: `footprint "X" { pads 1.5 x=0 y=0 width=1 height=1 }`},
	}

	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.ParseString(tt.input); err == nil {
				t.Error("expected parse error, got nil")
			} else if !strings.Contains(err.Error(), "parse error") {
				t.Errorf("error %q does not wrap parse error", err)
			}
		})
	}
}
