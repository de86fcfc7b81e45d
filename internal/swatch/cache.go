// Package swatch keeps a content-addressed on-disk cache of solid color
// preview images.
//
// Files are named after the quantized color (see FileName), so a color
// always resolves to the same path and files are never invalidated.
// Concurrent generation of the same file is tolerated: both writers produce
// identical bytes and the last rename wins.
package swatch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fortio.org/log"

	"github.com/maax3v3/hexrgb/internal/color"
	"github.com/maax3v3/hexrgb/internal/imaging"
	"github.com/maax3v3/hexrgb/internal/renderer"
)

// DefaultIcon is the bundled icon shown when no swatch is available.
const DefaultIcon = "images/icon.png"

// DefaultDir returns the process-wide cache directory under the platform
// temporary-files area.
func DefaultDir() string {
	return filepath.Join(os.TempDir(), "hexrgb.previews")
}

// Cache maps color values to swatch files inside a single directory.
type Cache struct {
	dir      string
	fallback string
	render   renderer.Config
}

// Option configures a Cache.
type Option func(*Cache)

// WithSize sets the swatch edge length in pixels.
func WithSize(px int) Option {
	return func(c *Cache) { c.render.Size = px }
}

// WithFallback sets the icon path returned when generation fails.
func WithFallback(path string) Option {
	return func(c *Cache) { c.fallback = path }
}

// WithOpaque renders swatches without their alpha channel.
func WithOpaque(opaque bool) Option {
	return func(c *Cache) { c.render.Opaque = opaque }
}

// New returns a Cache storing files in dir. The directory is created
// lazily on the first generation.
func New(dir string, opts ...Option) *Cache {
	c := &Cache{
		dir:      imaging.ExpandPath(dir),
		fallback: DefaultIcon,
		render:   renderer.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// Fallback returns the icon path used when a swatch cannot be produced.
func (c *Cache) Fallback() string { return c.fallback }

// FileName returns the cache file name for v:
// color_{r}_{g}_{b}.png, or color_{r}_{g}_{b}_{alphaByte}.png when v
// carries an alpha.
func FileName(v color.Value) string {
	k := v.Key()
	if k.HasAlpha {
		return fmt.Sprintf("color_%d_%d_%d_%d.png", k.R, k.G, k.B, k.A)
	}
	return fmt.Sprintf("color_%d_%d_%d.png", k.R, k.G, k.B)
}

// PathFor returns where the swatch for v lives, without generating it.
func (c *Cache) PathFor(v color.Value) string {
	return filepath.Join(c.dir, FileName(v))
}

// Lookup returns the swatch path for v, rendering and persisting the image
// if it does not exist yet. An existing file is returned unchanged.
// Failures wrap color.ErrSwatchGeneration.
func (c *Cache) Lookup(v color.Value) (string, error) {
	path := c.PathFor(v)
	_, err := os.Stat(path)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: checking for existing swatch: %w", color.ErrSwatchGeneration, err)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating cache directory: %w", color.ErrSwatchGeneration, err)
	}
	img := renderer.Swatch(v, c.render)
	if err := imaging.SavePNG(path, img); err != nil {
		return "", fmt.Errorf("%w: %w", color.ErrSwatchGeneration, err)
	}
	log.Debugf("Generated swatch %s", path)
	return path, nil
}

// Path is Lookup with the failure recovered: it returns the fallback icon
// when the swatch cannot be produced.
func (c *Cache) Path(v color.Value) string {
	path, err := c.Lookup(v)
	if err != nil {
		log.Warnf("Swatch for %s unavailable, using %s: %v", FileName(v), c.fallback, err)
		return c.fallback
	}
	return path
}
