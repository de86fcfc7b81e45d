package hexrgb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseAndFormat(t *testing.T) {
	c, err := ParseHex("#f0a")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 255 || c.G != 0 || c.B != 170 || c.Alpha.Present() {
		t.Errorf("got %+v", c)
	}

	c, err = ParseHex("#FF000080")
	if err != nil {
		t.Fatal(err)
	}
	if got := Format(c).Hex; got != "#FF000080" {
		t.Errorf("hex round-trip: got %s", got)
	}

	c, err = ParseRGB("0, 0, 0, 0.5")
	if err != nil {
		t.Fatal(err)
	}
	f := Format(c)
	if f.Primary != "RGBA(0, 0, 0, 0.50)" || f.CSS != "rgba(0, 0, 0, 0.50)" || f.Hex != "#00000080" {
		t.Errorf("got %+v", f)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (Color, error)
		input string
		want  error
	}{
		{"hex empty", ParseHex, "", ErrEmptyInput},
		{"hex five digits", ParseHex, "abcde", ErrMalformedInput},
		{"rgb two fields", ParseRGB, "1,2", ErrMalformedInput},
		{"rgb channel", ParseRGB, "300,0,0", ErrOutOfRange},
		{"rgb alpha", ParseRGB, "0,0,0,1.5", ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.parse(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConverter(t *testing.T) {
	dir := t.TempDir()
	conv := New(Options{CacheDir: dir, SwatchSize: 4})

	results := conv.HexToRGB("#FF0080")
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	want := filepath.Join(dir, "color_255_0_128.png")
	if results[0].IcoPath != want {
		t.Errorf("icon: got %s, want %s", results[0].IcoPath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("swatch missing: %v", err)
	}

	results = conv.RGBToHex("255,0,128")
	if len(results) != 1 || results[0].Copy != "#FF0080" || results[0].IcoPath != want {
		t.Errorf("got %+v", results)
	}

	c, err := ParseHex("#FF0080")
	if err != nil {
		t.Fatal(err)
	}
	if got := conv.SwatchPath(c); got != want {
		t.Errorf("SwatchPath: got %s", got)
	}
}

func TestNew_Defaults(t *testing.T) {
	conv := New(Options{CacheDir: t.TempDir()})
	results := conv.RGBToHex("")
	if len(results) != 1 || results[0].IcoPath != DefaultOptions().DefaultIcon {
		t.Errorf("got %+v", results)
	}
	if conv.Invoke(results[0]) {
		t.Error("usage result must not be actionable")
	}
}
