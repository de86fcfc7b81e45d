package color

import (
	"image/color"
	"math"

	"fortio.org/safecast"
)

// Alpha is an optional opacity in [0, 1]. The zero value means the user
// did not specify one, which is distinct from an explicit 1.0.
type Alpha struct {
	value float64
	set   bool
}

// NoAlpha returns an absent alpha.
func NoAlpha() Alpha {
	return Alpha{}
}

// WithAlpha returns a present alpha holding v. The value is stored as is;
// range enforcement belongs to the parsers and quantization clamps.
func WithAlpha(v float64) Alpha {
	return Alpha{value: v, set: true}
}

// Get returns the alpha value and whether it is present.
func (a Alpha) Get() (float64, bool) {
	return a.value, a.set
}

// Present reports whether an alpha was specified.
func (a Alpha) Present() bool {
	return a.set
}

// Byte quantizes the alpha to 8 bits as round(alpha*255), clamping into
// [0, 1] first. An absent alpha quantizes to 255 (opaque).
func (a Alpha) Byte() uint8 {
	if !a.set {
		return 255
	}
	return safecast.MustRound[uint8](clamp01(a.value) * 255)
}

// Value is the normalized color shared by both conversion directions.
type Value struct {
	R, G, B uint8
	Alpha   Alpha
}

// RGB returns an opaque Value with no alpha.
func RGB(r, g, b uint8) Value {
	return Value{R: r, G: g, B: b}
}

// RGBA returns a Value carrying an explicit alpha.
func RGBA(r, g, b uint8, a float64) Value {
	return Value{R: r, G: g, B: b, Alpha: WithAlpha(a)}
}

// Key is the quantized identity of a Value. Two values whose alpha
// quantizes to the same byte share a Key.
type Key struct {
	R, G, B  uint8
	A        uint8
	HasAlpha bool
}

// Key returns the quantized identity of v.
func (v Value) Key() Key {
	return Key{R: v.R, G: v.G, B: v.B, A: v.Alpha.Byte(), HasAlpha: v.Alpha.Present()}
}

// Equal reports whether two values have the same quantized identity.
func (v Value) Equal(o Value) bool {
	return v.Key() == o.Key()
}

// ToStdColor converts v to a non-premultiplied standard library color.
// An absent alpha is rendered fully opaque.
func (v Value) ToStdColor() color.NRGBA {
	return color.NRGBA{R: v.R, G: v.G, B: v.B, A: v.Alpha.Byte()}
}

// FromStdColor converts a standard library color to a Value. Fully opaque
// colors carry no alpha.
func FromStdColor(c color.Color) Value {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return RGB(n.R, n.G, n.B)
	}
	return RGBA(n.R, n.G, n.B, float64(n.A)/255)
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
