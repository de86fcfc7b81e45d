package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/log"

	"github.com/maax3v3/hexrgb/internal/color"
	"github.com/maax3v3/hexrgb/internal/format"
	"github.com/maax3v3/hexrgb/internal/swatch"
)

// Direction selects which parser a query goes through.
type Direction int

const (
	HexToRGB Direction = iota
	RGBToHex
)

func (d Direction) String() string {
	if d == RGBToHex {
		return "rgb2hex"
	}
	return "hex2rgb"
}

// ParseDirection accepts "hex"/"hex2rgb" and "rgb"/"rgb2hex".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "hex", "hex2rgb":
		return HexToRGB, nil
	case "rgb", "rgb2hex":
		return RGBToHex, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (want hex or rgb)", s)
	}
}

// Result is one displayable entry. Entries with an empty Copy are
// informational and do nothing when selected.
type Result struct {
	Title    string `json:"title"`
	SubTitle string `json:"subtitle"`
	IcoPath  string `json:"icon"`
	Label    string `json:"label,omitempty"`
	Copy     string `json:"copy,omitempty"`
}

// Actionable reports whether selecting r copies a value.
func (r Result) Actionable() bool {
	return r.Copy != ""
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	SetText(text string) error
}

// Notifier shows a transient message to the user.
type Notifier interface {
	ShowMsg(title, msg, icon string)
}

// Runner turns raw queries into results.
type Runner struct {
	Cache     *swatch.Cache
	Clipboard Clipboard
	Notifier  Notifier
}

// Run executes one query. Every input, valid or not, yields at least one
// result; nothing is returned as an error.
func (p *Runner) Run(dir Direction, query string) []Result {
	query = strings.TrimSpace(query)

	var (
		v   color.Value
		err error
	)
	if dir == RGBToHex {
		v, err = color.ParseTuple(query)
	} else {
		v, err = color.ParseHex(query)
	}
	if err != nil {
		log.Debugf("%s query %q rejected: %v", dir, query, err)
		return []Result{p.failure(dir, err)}
	}

	icon := p.Cache.Path(v)
	forms := format.All(v)
	if dir == RGBToHex {
		return []Result{{
			Title:    "HEX: " + forms.Hex,
			SubTitle: fmt.Sprintf("Copy the HEX value of %s %s", forms.Label, format.Tuple(v)),
			IcoPath:  icon,
			Label:    "HEX",
			Copy:     forms.Hex,
		}}
	}
	return []Result{
		{
			Title:    forms.Label + ": " + forms.Primary,
			SubTitle: fmt.Sprintf("Copy the %s value of %s", forms.Label, forms.Hex),
			IcoPath:  icon,
			Label:    forms.Label,
			Copy:     forms.Primary,
		},
		{
			Title:    forms.Label + " (comma-separated): " + forms.Comma,
			SubTitle: "Copy the comma-separated " + forms.Label + " value",
			IcoPath:  icon,
			Label:    forms.Label,
			Copy:     forms.Comma,
		},
		{
			Title:    "CSS: " + forms.CSS,
			SubTitle: "Copy the CSS color value",
			IcoPath:  icon,
			Label:    "CSS",
			Copy:     forms.CSS,
		},
	}
}

// Invoke performs the action of r: copy its value and notify. It returns
// false for informational results and when the clipboard write fails.
func (p *Runner) Invoke(r Result) bool {
	if !r.Actionable() {
		return false
	}
	if p.Clipboard == nil {
		p.notify("Copy failed", "No clipboard available", p.fallback())
		return false
	}
	if err := p.Clipboard.SetText(r.Copy); err != nil {
		log.Warnf("Clipboard write failed: %v", err)
		p.notify("Copy failed", "Could not copy to clipboard: "+err.Error(), p.fallback())
		return false
	}
	p.notify("Copied", fmt.Sprintf("%s value %s copied to clipboard", r.Label, r.Copy), r.IcoPath)
	return true
}

func (p *Runner) failure(dir Direction, err error) Result {
	icon := p.fallback()
	switch {
	case errors.Is(err, color.ErrEmptyInput) && dir == RGBToHex:
		return Result{
			Title:    "RGB to HEX color converter",
			SubTitle: "Enter an RGB color: 255,255,255 or 255,255,255,1.0 (RGBA)",
			IcoPath:  icon,
		}
	case errors.Is(err, color.ErrEmptyInput):
		return Result{
			Title:    "HEX to RGB color converter",
			SubTitle: "Enter a HEX color: #FFFFFF or #FFFFFFFF (RGBA)",
			IcoPath:  icon,
		}
	case errors.Is(err, color.ErrOutOfRange):
		return Result{
			Title:    "Value out of range",
			SubTitle: "Check the input values (RGB: 0-255, Alpha: 0-1)",
			IcoPath:  icon,
		}
	case dir == RGBToHex:
		return Result{
			Title:    "Invalid input format",
			SubTitle: "Enter a valid RGB color, e.g. 255,255,255 or 255,255,255,1.0",
			IcoPath:  icon,
		}
	default:
		return Result{
			Title:    "Invalid input format",
			SubTitle: "Enter a valid HEX color, e.g. #FFFFFF or #FFFFFFFF",
			IcoPath:  icon,
		}
	}
}

func (p *Runner) fallback() string {
	if p.Cache == nil {
		return swatch.DefaultIcon
	}
	return p.Cache.Fallback()
}

func (p *Runner) notify(title, msg, icon string) {
	if p.Notifier != nil {
		p.Notifier.ShowMsg(title, msg, icon)
	}
}
