package typeconv

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Enum is implemented by named enumerations. Values must list every member;
// String returns the name used for matching.
type Enum[E any] interface {
	comparable
	fmt.Stringer
	Values() []E
}

// ParseEnum returns the member of E whose name equals s, ignoring case and
// surrounding whitespace.
func ParseEnum[E Enum[E]](s string) (E, error) {
	var zero E
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(s))
	if want != "" {
		for _, member := range zero.Values() {
			if fold.String(member.String()) == want {
				return member, nil
			}
		}
	}
	return zero, fmt.Errorf("%w: %q is not a valid %T", ErrConversion, s, zero)
}

// Names lists the member names of E in declaration order.
func Names[E Enum[E]]() []string {
	var zero E
	members := zero.Values()
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.String())
	}
	return names
}
