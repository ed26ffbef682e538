// Package strutil holds small, stateless string helpers shared by the
// argument parser and its consumers.
package strutil

import (
	"fmt"
	"iter"
	"strings"
	"unicode"

	"github.com/specialistvlad/argline/internal/typeconv"
	"golang.org/x/text/cases"
)

// Join renders each element with fmt.Sprint and joins them with sep.
// ok is false when values is nil, which callers treat as "no list at all"
// rather than an empty one.
func Join[T any](values []T, sep string) (s string, ok bool) {
	return JoinFunc(values, sep, func(v T) string { return fmt.Sprint(v) })
}

// JoinFunc is Join with a caller-supplied formatter.
func JoinFunc[T any](values []T, sep string, each func(T) string) (s string, ok bool) {
	if values == nil {
		return "", false
	}
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(each(v))
	}
	return sb.String(), true
}

// IsEmpty reports whether s has no characters.
func IsEmpty(s string) bool {
	return s == ""
}

// HasChars is the negation of IsEmpty.
func HasChars(s string) bool {
	return s != ""
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// EqualFold reports whether a and b are equal under full Unicode case folding.
func EqualFold(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}

// TryParse converts s into T. Empty input always fails.
func TryParse[T typeconv.Value](s string) (T, bool) {
	var zero T
	if IsEmpty(s) {
		return zero, false
	}
	v, err := typeconv.Parse[T](s)
	if err != nil {
		return zero, false
	}
	return v, true
}

// Parse converts s into T, returning def when it cannot.
func Parse[T typeconv.Value](s string, def T) T {
	if v, ok := TryParse[T](s); ok {
		return v
	}
	return def
}

// Split lazily yields the segments of s between occurrences of delim.
// Empty segments are skipped when omitEmpty is set. An empty s yields
// nothing at all.
func Split(s, delim string, omitEmpty bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == "" {
			return
		}
		for part := range strings.SplitSeq(s, delim) {
			if omitEmpty && part == "" {
				continue
			}
			if !yield(part) {
				return
			}
		}
	}
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
