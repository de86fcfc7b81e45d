package color

import "errors"

// Kind classifies a conversion failure.
type Kind int

const (
	KindNone Kind = iota
	KindEmptyInput
	KindMalformedInput
	KindOutOfRange
	KindSwatchGeneration
)

var (
	// ErrEmptyInput signals that there was no query text. Hosts show usage
	// guidance instead of a conversion.
	ErrEmptyInput = errors.New("empty input")

	// ErrMalformedInput covers wrong digit counts, wrong field counts and
	// non-numeric fields.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutOfRange covers numeric fields outside their valid domain.
	ErrOutOfRange = errors.New("value out of range")

	// ErrSwatchGeneration is returned when a swatch image cannot be
	// rendered or written.
	ErrSwatchGeneration = errors.New("swatch generation failed")
)

var kindErrors = []struct {
	kind Kind
	err  error
}{
	{KindEmptyInput, ErrEmptyInput},
	{KindMalformedInput, ErrMalformedInput},
	{KindOutOfRange, ErrOutOfRange},
	{KindSwatchGeneration, ErrSwatchGeneration},
}

// KindOf returns the Kind of err, or KindNone for a nil or foreign error.
func KindOf(err error) Kind {
	for _, ke := range kindErrors {
		if errors.Is(err, ke.err) {
			return ke.kind
		}
	}
	return KindNone
}

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "EmptyInput"
	case KindMalformedInput:
		return "MalformedInput"
	case KindOutOfRange:
		return "OutOfRange"
	case KindSwatchGeneration:
		return "SwatchGenerationFailure"
	default:
		return "None"
	}
}
