package typeconv

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ErrConversion is wrapped by every error returned from Parse and ParseEnum.
var ErrConversion = errors.New("conversion failed")

// Char is a single character. It is distinct from int32 so that "a"
// converts to 'a' instead of being read as a number.
type Char rune

// String returns the character as a one-rune string.
func (c Char) String() string {
	return string(rune(c))
}

// Value lists every type Parse can produce.
type Value interface {
	bool | int8 | int16 | int32 | int64 | int | uint8 | float32 | float64 | string | Char
}

// Parse converts s into T.
func Parse[T Value](s string) (T, error) {
	var out T
	var err error

	switch p := any(&out).(type) {
	case *string:
		*p = s
	case *Char:
		*p, err = parseChar(s)
	case *bool:
		err = fromCty(strings.ToLower(strings.TrimSpace(s)), cty.Bool, p)
	default:
		// Every remaining member of Value is numeric.
		err = fromCty(strings.TrimSpace(s), cty.Number, p)
	}

	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %q as %T: %w", ErrConversion, s, out, err)
	}
	return out, nil
}

func parseChar(s string) (Char, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("expected exactly one character, got %d", utf8.RuneCountInString(s))
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Char(r), nil
}

// fromCty runs text through cty's string conversion rules and then decodes
// the result into target, which must be a pointer to a Go primitive.
func fromCty(s string, want cty.Type, target any) error {
	val, err := convert.Convert(cty.StringVal(s), want)
	if err != nil {
		return err
	}
	return gocty.FromCtyValue(val, target)
}
