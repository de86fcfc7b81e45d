// Package hexrgb converts colors between hexadecimal notation (#RGB, #RGBA,
// #RRGGBB, #RRGGBBAA) and numeric tuples (R,G,B or R,G,B,A), and keeps a
// cache of small swatch images previewing each converted color.
//
// Usage as a library:
//
//	c, _ := hexrgb.ParseHex("#FF000080")
//	fmt.Println(hexrgb.Format(c).CSS) // rgba(255, 0, 0, 0.50)
//
// Or let a Converter produce displayable results with swatch icons:
//
//	conv := hexrgb.New(hexrgb.DefaultOptions())
//	for _, r := range conv.RGBToHex("255, 0, 128") {
//		fmt.Println(r.Title, r.IcoPath)
//	}
package hexrgb

import (
	"github.com/maax3v3/hexrgb/internal/color"
	"github.com/maax3v3/hexrgb/internal/format"
	"github.com/maax3v3/hexrgb/internal/pipeline"
	"github.com/maax3v3/hexrgb/internal/renderer"
	"github.com/maax3v3/hexrgb/internal/swatch"
)

// Color is a normalized color: 8-bit channels plus an optional alpha.
type Color = color.Value

// Forms holds every textual rendering of a Color.
type Forms = format.Forms

// Result is one displayable conversion entry.
type Result = pipeline.Result

// Clipboard and Notifier are the host capabilities used by Invoke.
type (
	Clipboard = pipeline.Clipboard
	Notifier  = pipeline.Notifier
)

// Error kinds returned by the parsers. Use errors.Is to branch on them.
var (
	ErrEmptyInput       = color.ErrEmptyInput
	ErrMalformedInput   = color.ErrMalformedInput
	ErrOutOfRange       = color.ErrOutOfRange
	ErrSwatchGeneration = color.ErrSwatchGeneration
)

// Options configures a Converter.
type Options struct {
	// CacheDir is where swatch images are stored.
	// Default: a directory under the platform temporary-files area.
	CacheDir string

	// SwatchSize is the swatch edge length in pixels.
	// Default: 32.
	SwatchSize int

	// DefaultIcon is returned as icon whenever no swatch is available.
	// Default: "images/icon.png".
	DefaultIcon string

	// Clipboard and Notifier are used by Invoke. Both may be nil.
	Clipboard Clipboard
	Notifier  Notifier
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		CacheDir:    swatch.DefaultDir(),
		SwatchSize:  renderer.DefaultSize,
		DefaultIcon: swatch.DefaultIcon,
	}
}

// ParseHex parses a hex color string like "#F0A", "#FF000080".
func ParseHex(s string) (Color, error) {
	return color.ParseHex(s)
}

// ParseRGB parses a numeric tuple like "255,0,128" or "0,0,0,0.5".
func ParseRGB(s string) (Color, error) {
	return color.ParseTuple(s)
}

// Format renders c in every supported textual form.
func Format(c Color) Forms {
	return format.All(c)
}

// Converter runs queries in either direction.
type Converter struct {
	runner *pipeline.Runner
}

// New builds a Converter. Zero-valued options fall back to the defaults.
func New(opts Options) *Converter {
	def := DefaultOptions()
	if opts.CacheDir == "" {
		opts.CacheDir = def.CacheDir
	}
	if opts.SwatchSize <= 0 {
		opts.SwatchSize = def.SwatchSize
	}
	if opts.DefaultIcon == "" {
		opts.DefaultIcon = def.DefaultIcon
	}
	return &Converter{runner: &pipeline.Runner{
		Cache:     swatch.New(opts.CacheDir, swatch.WithSize(opts.SwatchSize), swatch.WithFallback(opts.DefaultIcon)),
		Clipboard: opts.Clipboard,
		Notifier:  opts.Notifier,
	}}
}

// HexToRGB converts a hex query into RGB, comma-separated and CSS results.
func (c *Converter) HexToRGB(query string) []Result {
	return c.runner.Run(pipeline.HexToRGB, query)
}

// RGBToHex converts a tuple query into a HEX result.
func (c *Converter) RGBToHex(query string) []Result {
	return c.runner.Run(pipeline.RGBToHex, query)
}

// SwatchPath returns the swatch image for col, generating it if needed,
// or the default icon if it cannot be produced.
func (c *Converter) SwatchPath(col Color) string {
	return c.runner.Cache.Path(col)
}

// Invoke copies the value of r to the clipboard and notifies the user.
func (c *Converter) Invoke(r Result) bool {
	return c.runner.Invoke(r)
}
