package footprint

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestWriterWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "out")

	f := New("PART")
	if _, err := f.AddPad(PadSpec{X: Float(0), Y: Float(0), Width: Float(10), Height: Float(20)}); err != nil {
		t.Fatalf("AddPad failed: %v", err)
	}
	if err := w.Write(f); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := afero.ReadFile(fs, "out/PART.fp")
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want, err := f.Format()
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if string(got) != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestWriterCreatesDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "lib/fp")

	f := New("PART")
	f.AddLine(0, 0, 100, 0, 0)
	if err := w.Write(f); err != nil {
		t.Fatalf("Write into missing directory failed: %v", err)
	}
	if ok, _ := afero.DirExists(fs, "lib/fp"); !ok {
		t.Error("Write must create the output directory")
	}
	if exists, _ := afero.Exists(fs, "lib/fp/PART.fp"); !exists {
		t.Error("Write must place the file inside the created directory")
	}
}

func TestWriterWriteOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "PART.fp", []byte("stale"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}
	w := NewWriter(fs, "")

	f := New("PART")
	f.AddLine(0, 0, 100, 0, 0)
	if err := w.Write(f); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := afero.ReadFile(fs, "PART.fp")
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(got) == "stale" {
		t.Error("Write must overwrite an existing file")
	}
}

func TestWriterSkipsFileOnFormatError(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "")

	f := New("BROKEN")
	if _, err := f.AddPad(PadSpec{Left: Float(0), Width: Float(10)}); err != nil {
		t.Fatalf("AddPad failed: %v", err)
	}
	if err := w.Write(f); !errors.Is(err, ErrUnresolvedGeometry) {
		t.Fatalf("Write: err = %v, want ErrUnresolvedGeometry", err)
	}
	if exists, _ := afero.Exists(fs, "BROKEN.fp"); exists {
		t.Error("no file may be created when serialization fails")
	}
}

func TestGenerate(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "")

	err := w.Generate("GEN", func(f *Footprint) error {
		_, err := f.AddPin(PinSpec{X: Float(0), Y: Float(0), Hole: Float(30), Diameter: Float(66)})
		return err
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if exists, _ := afero.Exists(fs, "GEN.fp"); !exists {
		t.Error("Generate must write the footprint on success")
	}
}

func TestGenerateAbortsOnBuildError(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "")

	buildErr := errors.New("bad geometry")
	err := w.Generate("ABORT", func(f *Footprint) error {
		f.AddLine(0, 0, 1, 1, 0)
		return buildErr
	})
	if !errors.Is(err, buildErr) {
		t.Fatalf("Generate: err = %v, want wrapped build error", err)
	}
	if exists, _ := afero.Exists(fs, "ABORT.fp"); exists {
		t.Error("Generate must not write anything when build fails")
	}
}
