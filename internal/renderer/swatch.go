package renderer

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/maax3v3/hexrgb/internal/color"
)

// DefaultSize is the edge length in pixels of a swatch.
const DefaultSize = 32

// Config holds swatch rendering configuration.
type Config struct {
	Size   int  // edge length of the square swatch
	Opaque bool // drop the alpha channel, for encoders without alpha support
}

// DefaultConfig returns sensible default rendering configuration.
func DefaultConfig() Config {
	return Config{Size: DefaultSize}
}

// Swatch renders a square image filled with v.
func Swatch(v color.Value, cfg Config) *image.NRGBA {
	size := cfg.Size
	if size < 1 {
		size = DefaultSize
	}
	fill := v.ToStdColor()
	if cfg.Opaque {
		fill.A = 255
	}

	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(out, out.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	return out
}
