package args

import (
	"log/slog"
	"strings"

	"github.com/google/shlex"
)

// DefaultMarkers is the marker set used when WithMarkers is not given.
const DefaultMarkers = "-"

// Tokenizer splits a raw line into tokens.
type Tokenizer func(line string) ([]string, error)

// SpaceTokenizer splits on runs of spaces and tabs. It never fails.
func SpaceTokenizer(line string) ([]string, error) {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t'
	}), nil
}

// ShellTokenizer splits using POSIX shell quoting rules, so
// `-title "two words"` yields the value `two words` as a single token.
// Unbalanced quotes are an error.
func ShellTokenizer(line string) ([]string, error) {
	return shlex.Split(line)
}

type options struct {
	markers   string
	tokenizer Tokenizer
	logger    *slog.Logger
}

// Option configures how an Args value parses its input.
type Option func(*options)

// WithMarkers sets the characters that introduce a key, e.g. "-/" to also
// accept Windows-style switches. The first character is the decorator Add
// uses when a key is given without one. An empty string is ignored.
func WithMarkers(markers string) Option {
	return func(o *options) {
		if markers != "" {
			o.markers = markers
		}
	}
}

// WithTokenizer replaces the default space/tab splitter.
func WithTokenizer(t Tokenizer) Option {
	return func(o *options) {
		if t != nil {
			o.tokenizer = t
		}
	}
}

// WithLogger enables debug logging of parse and merge activity.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		markers:   DefaultMarkers,
		tokenizer: SpaceTokenizer,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// asOptions turns resolved options back into a list, so a secondary line
// can be parsed with the same rules.
func (o options) asOptions() []Option {
	return []Option{WithMarkers(o.markers), WithTokenizer(o.tokenizer), WithLogger(o.logger)}
}
