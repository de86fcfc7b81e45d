// Package format renders color values into their textual output forms.
package format

import (
	"fmt"
	"strconv"

	"github.com/maax3v3/hexrgb/internal/color"
)

// Forms holds every textual rendering of a single color value.
type Forms struct {
	Label   string // "RGB" or "RGBA"
	Primary string // RGB(r, g, b) / RGBA(r, g, b, a)
	Comma   string // r, g, b / r, g, b, a
	CSS     string // rgb(r, g, b) / rgba(r, g, b, a)
	Hex     string // #RRGGBB / #RRGGBBAA
}

// All renders v in every supported form.
func All(v color.Value) Forms {
	return Forms{
		Label:   Label(v),
		Primary: Primary(v),
		Comma:   Comma(v),
		CSS:     CSS(v),
		Hex:     Hex(v),
	}
}

// Label returns "RGBA" when v carries an alpha and "RGB" otherwise.
func Label(v color.Value) string {
	if v.Alpha.Present() {
		return "RGBA"
	}
	return "RGB"
}

// Primary returns RGB(r, g, b) or RGBA(r, g, b, a).
func Primary(v color.Value) string {
	return Label(v) + "(" + Comma(v) + ")"
}

// Comma returns "r, g, b" or "r, g, b, a" with alpha to two decimals.
func Comma(v color.Value) string {
	s := fmt.Sprintf("%d, %d, %d", v.R, v.G, v.B)
	if a, ok := v.Alpha.Get(); ok {
		s += ", " + Alpha(a)
	}
	return s
}

// CSS returns rgb(r, g, b) or rgba(r, g, b, a).
func CSS(v color.Value) string {
	if v.Alpha.Present() {
		return "rgba(" + Comma(v) + ")"
	}
	return "rgb(" + Comma(v) + ")"
}

// Hex returns #RRGGBB, or #RRGGBBAA when v carries an alpha, with
// uppercase digits. Alpha is clamped into [0, 1] before quantization
// instead of being rejected.
func Hex(v color.Value) string {
	s := fmt.Sprintf("#%02X%02X%02X", v.R, v.G, v.B)
	if v.Alpha.Present() {
		s += fmt.Sprintf("%02X", v.Alpha.Byte())
	}
	return s
}

// Alpha formats an alpha value with exactly two decimal places.
func Alpha(a float64) string {
	return strconv.FormatFloat(a, 'f', 2, 64)
}

// Tuple returns the compact "RGB(r,g,b)" / "RGBA(r,g,b,a)" echo of a
// parsed tuple input, with alpha in its shortest decimal form.
func Tuple(v color.Value) string {
	s := fmt.Sprintf("%s(%d,%d,%d", Label(v), v.R, v.G, v.B)
	if a, ok := v.Alpha.Get(); ok {
		s += "," + strconv.FormatFloat(a, 'g', -1, 64)
	}
	return s + ")"
}
