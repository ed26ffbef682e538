package args

import (
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/argline/internal/strutil"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Args is a parsed argument line. The zero value is not usable; construct
// one with New or FromSlice.
type Args struct {
	opts options
	fold cases.Caser

	line   string
	tokens []string

	// All maps below are keyed by the lowercased canonical key.
	order    []string          // insertion order of keys in values
	names    map[string]string // canonical key as written
	values   map[string]string
	unused   map[string]string
	prefixes map[string]string // decorator, e.g. "-" or "--"
}

// New parses line into key/value pairs. Parsing never fails: input that
// cannot be tokenized yields an empty Args.
func New(line string, opts ...Option) *Args {
	a := newEmpty(buildOptions(opts))
	a.line = line
	a.parse()
	return a
}

// FromSlice parses pre-split tokens, e.g. os.Args[1:]. The tokens are joined
// with single spaces and parsed exactly like New.
func FromSlice(tokens []string, opts ...Option) *Args {
	return New(strings.Join(tokens, " "), opts...)
}

func newEmpty(o options) *Args {
	return &Args{
		opts:     o,
		fold:     keyCaser(),
		names:    make(map[string]string),
		values:   make(map[string]string),
		unused:   make(map[string]string),
		prefixes: make(map[string]string),
	}
}

func (a *Args) parse() {
	logger := a.opts.logger
	raw, err := a.opts.tokenizer(a.line)
	if err != nil {
		logger.Debug("Argument line could not be tokenized, ignoring it.", "error", err)
		return
	}

	a.tokens = make([]string, 0, len(raw))
	for _, tok := range raw {
		if tok != "" {
			a.tokens = append(a.tokens, tok)
		}
	}

	var value strings.Builder
	for i := 0; i < len(a.tokens); i++ {
		tok := a.tokens[i]
		if !a.IsKey(tok) {
			logger.Debug("Dropping token outside of any key.", "token", tok)
			continue
		}

		value.Reset()
		for i+1 < len(a.tokens) && !a.IsKey(a.tokens[i+1]) {
			i++
			if value.Len() > 0 {
				value.WriteByte(' ')
			}
			value.WriteString(a.tokens[i])
		}

		prefix, key := a.splitKey(tok)
		if key == "" {
			logger.Debug("Dropping bare marker token.", "token", tok)
			continue
		}
		a.set(prefix, key, strings.TrimSpace(value.String()))
	}

	logger.Debug("Argument line parsed.", "tokens", len(a.tokens), "keys", len(a.order))
}

// IsKey reports whether token starts with one of the configured markers.
func (a *Args) IsKey(token string) bool {
	r, size := utf8.DecodeRuneInString(token)
	return size > 0 && strings.ContainsRune(a.opts.markers, r)
}

// CleanKey strips leading and trailing markers from key.
func (a *Args) CleanKey(key string) string {
	return strings.Trim(key, a.opts.markers)
}

// splitKey separates the leading decorator from the canonical key.
func (a *Args) splitKey(token string) (prefix, key string) {
	rest := strings.TrimLeft(token, a.opts.markers)
	return token[:len(token)-len(rest)], strings.TrimRight(rest, a.opts.markers)
}

// keyCaser lowers keys rune by rune without expanding them, so "ß" and "ss"
// stay distinct while "NAME" and "name" match.
func keyCaser() cases.Caser {
	return cases.Lower(language.Und, cases.HandleFinalSigma(false))
}

func (a *Args) foldKey(key string) string {
	return a.fold.String(a.CleanKey(key))
}

func (a *Args) defaultMarker() string {
	r, _ := utf8.DecodeRuneInString(a.opts.markers)
	return string(r)
}

func (a *Args) set(prefix, key, value string) {
	k := a.fold.String(key)
	if _, exists := a.values[k]; !exists {
		a.order = append(a.order, k)
	}
	a.names[k] = key
	a.values[k] = value
	a.unused[k] = value
	a.prefixes[k] = prefix
}

// Add inserts or overwrites a pair. The decorator is taken from key itself
// ("--out" keeps "--"); a bare key gets the first marker. Adding a key that
// was already consumed makes it unused again. The stored line is rebuilt
// from every pair in insertion order; the token list is left as parsed.
func (a *Args) Add(key, value string) {
	prefix, name := a.splitKey(key)
	if name == "" {
		a.opts.logger.Debug("Ignoring argument with an empty key.", "key", key)
		return
	}
	if prefix == "" {
		prefix = a.defaultMarker()
	}
	a.set(prefix, name, value)
	a.line = a.render(a.order, a.values)
}

// AddLine parses line with the same options and merges every pair via Add.
func (a *Args) AddLine(line string) {
	if strutil.IsBlank(line) {
		return
	}
	a.AddArgs(New(line, a.opts.asOptions()...))
}

// AddArgs merges every pair of other via Add, keeping other's decorators.
// Pairs in other win over existing pairs with the same key.
func (a *Args) AddArgs(other *Args) {
	if other == nil || len(other.order) == 0 {
		return
	}
	for _, k := range other.order {
		a.Add(other.prefixes[k]+other.names[k], other.values[k])
	}
	a.opts.logger.Debug("Merged arguments.", "added", len(other.order), "keys", len(a.order))
}

// render joins the given keys as "<decorator><key> <value>" pairs, reading
// values from src. Keys missing from src are skipped.
func (a *Args) render(keys []string, src map[string]string) string {
	present := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := src[k]; ok {
			present = append(present, k)
		}
	}
	line, _ := strutil.JoinFunc(present, " ", func(k string) string {
		if v := src[k]; v != "" {
			return a.prefixes[k] + a.names[k] + " " + v
		}
		return a.prefixes[k] + a.names[k]
	})
	return line
}

// UnusedLine rebuilds an argument line from every pair not yet consumed.
// It is empty once everything has been used.
func (a *Args) UnusedLine() string {
	return a.render(a.order, a.unused)
}

// UnusedArgs is UnusedLine as a token list: each key with its decorator,
// followed by its value when the value is not empty.
func (a *Args) UnusedArgs() []string {
	out := make([]string, 0, 2*len(a.unused))
	for _, k := range a.order {
		v, ok := a.unused[k]
		if !ok {
			continue
		}
		out = append(out, a.prefixes[k]+a.names[k])
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Line returns the raw input, or the rebuilt line after Add.
func (a *Args) Line() string { return a.line }

// Tokens returns the tokens produced by the tokenizer.
func (a *Args) Tokens() []string { return a.tokens }

// Len returns the number of keys.
func (a *Args) Len() int { return len(a.order) }

// Keys returns every canonical key in insertion order.
func (a *Args) Keys() []string {
	return a.keysOf(a.values)
}

// UnusedKeys returns the canonical keys not yet consumed, in insertion order.
func (a *Args) UnusedKeys() []string {
	return a.keysOf(a.unused)
}

func (a *Args) keysOf(src map[string]string) []string {
	keys := make([]string, 0, len(src))
	for _, k := range a.order {
		if _, ok := src[k]; ok {
			keys = append(keys, a.names[k])
		}
	}
	return keys
}

// Values returns a copy of every pair, keyed by canonical key.
func (a *Args) Values() map[string]string {
	return a.copyOf(a.values)
}

// Unused returns a copy of the pairs not yet consumed.
func (a *Args) Unused() map[string]string {
	return a.copyOf(a.unused)
}

func (a *Args) copyOf(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[a.names[k]] = v
	}
	return out
}

// Prefix returns the decorator recorded for key.
func (a *Args) Prefix(key string) (string, bool) {
	p, ok := a.prefixes[a.foldKey(key)]
	return p, ok
}

// FullKey returns key as it was originally decorated, e.g. "--name", or ""
// when key is not present.
func (a *Args) FullKey(key string) string {
	k := a.foldKey(key)
	p, ok := a.prefixes[k]
	if !ok {
		return ""
	}
	return p + a.names[k]
}
