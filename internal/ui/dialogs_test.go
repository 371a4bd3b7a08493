package ui

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qrstudio/qrstudio/internal/form"
	"github.com/qrstudio/qrstudio/internal/qr"
)

func newPathChooser(input string) (*promptPathChooser, *bytes.Buffer) {
	var out bytes.Buffer
	return &promptPathChooser{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: &out,
	}, &out
}

func TestPromptPathChooser_KeepsDefault(t *testing.T) {
	p, _ := newPathChooser("\n")

	path, ok, err := p.Choose("/tmp/qrcode.png")
	if err != nil {
		t.Fatalf("Choose() error = %v", err)
	}
	if !ok {
		t.Fatal("Choose() ok = false, want true")
	}
	if path != "/tmp/qrcode.png" {
		t.Errorf("path = %q, want default", path)
	}
}

func TestPromptPathChooser_CustomPath(t *testing.T) {
	p, out := newPathChooser("/data/codes/site.png\n")

	path, ok, err := p.Choose("/tmp/qrcode.png")
	if err != nil {
		t.Fatalf("Choose() error = %v", err)
	}
	if !ok || path != "/data/codes/site.png" {
		t.Errorf("Choose() = (%q, %v), want custom path", path, ok)
	}
	if !strings.Contains(out.String(), "Save to [/tmp/qrcode.png]") {
		t.Errorf("prompt missing default, got %q", out.String())
	}
}

func TestPromptPathChooser_Cancel(t *testing.T) {
	for _, input := range []string{"cancel\n", "CANCEL\n", ""} {
		p, _ := newPathChooser(input)
		if _, ok, err := p.Choose("/tmp/qrcode.png"); ok || err != nil {
			t.Errorf("Choose() with input %q = (ok=%v, err=%v), want canceled", input, ok, err)
		}
	}
}

func TestPromptPathChooser_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, _ := newPathChooser("~/codes/qr.png\n")
	path, ok, err := p.Choose("/tmp/qrcode.png")
	if err != nil || !ok {
		t.Fatalf("Choose() = (ok=%v, err=%v)", ok, err)
	}
	if want := filepath.Join(home, "codes", "qr.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func newColorPicker(input string) (*promptColorPicker, *bytes.Buffer) {
	var out bytes.Buffer
	return &promptColorPicker{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: &out,
	}, &out
}

func TestPromptColorPicker_Pick(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  qr.RGB
		ok    bool
	}{
		{"named color", "red\n", qr.RGB{R: 255}, true},
		{"hex", "#00FF00\n", qr.RGB{G: 255}, true},
		{"short hex", "00f\n", qr.RGB{B: 255}, true},
		{"empty keeps current", "\n", qr.Black, true},
		{"cancel", "cancel\n", qr.RGB{}, false},
		{"eof cancels", "", qr.RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newColorPicker(tt.input)
			got, ok, err := p.Pick(form.RoleFill, qr.Black)
			if err != nil {
				t.Fatalf("Pick() error = %v", err)
			}
			if ok != tt.ok {
				t.Fatalf("Pick() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Pick() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromptColorPicker_RepromptsOnInvalid(t *testing.T) {
	p, out := newColorPicker("notacolor\nblue\n")

	got, ok, err := p.Pick(form.RoleBackground, qr.White)
	if err != nil || !ok {
		t.Fatalf("Pick() = (ok=%v, err=%v)", ok, err)
	}
	if want := (qr.RGB{B: 255}); got != want {
		t.Errorf("Pick() = %v, want %v", got, want)
	}
	if !strings.Contains(out.String(), "❌") {
		t.Error("expected an error line before the re-prompt")
	}
	if !strings.Contains(out.String(), "background") {
		t.Errorf("prompt should name the role, got %q", out.String())
	}
}

func TestDefaultOutputPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("explicit dir wins", func(t *testing.T) {
		got := DefaultOutputPath("/data/out", "qrcode.png")
		if want := filepath.Join("/data/out", "qrcode.png"); got != want {
			t.Errorf("DefaultOutputPath() = %q, want %q", got, want)
		}
	})

	t.Run("falls back to home", func(t *testing.T) {
		got := DefaultOutputPath("", "qrcode.png")
		if want := filepath.Join(home, "qrcode.png"); got != want {
			t.Errorf("DefaultOutputPath() = %q, want %q", got, want)
		}
	})

	t.Run("prefers documents", func(t *testing.T) {
		docs := filepath.Join(home, "Documents")
		if err := os.Mkdir(docs, 0o755); err != nil {
			t.Fatal(err)
		}
		got := DefaultOutputPath("", "qrcode.png")
		if want := filepath.Join(docs, "qrcode.png"); got != want {
			t.Errorf("DefaultOutputPath() = %q, want %q", got, want)
		}
	})

	t.Run("prefers dokumente over documents", func(t *testing.T) {
		dok := filepath.Join(home, "Dokumente")
		if err := os.Mkdir(dok, 0o755); err != nil {
			t.Fatal(err)
		}
		got := DefaultOutputPath("", "qrcode.png")
		if want := filepath.Join(dok, "qrcode.png"); got != want {
			t.Errorf("DefaultOutputPath() = %q, want %q", got, want)
		}
	})
}
