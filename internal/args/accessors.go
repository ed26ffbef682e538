package args

import (
	"fmt"
	"strings"
)

// find returns the folded key and value of the first of keys present in src.
func (a *Args) find(src map[string]string, keys []string) (k, v string, ok bool) {
	for _, key := range keys {
		k = a.foldKey(key)
		if v, ok = src[k]; ok {
			return k, v, true
		}
	}
	return "", "", false
}

func (a *Args) notFound(keys []string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, a.describe(keys))
}

// describe renders candidate keys for messages, e.g. "-o or -buildPath".
func (a *Args) describe(keys []string) string {
	return strings.Join(a.displayKeys(keys), " or ")
}

func (a *Args) displayKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, a.defaultMarker()+a.CleanKey(key))
	}
	return out
}

// Has reports whether any of keys is present, consumed or not.
func (a *Args) Has(keys ...string) bool {
	_, _, ok := a.find(a.values, keys)
	return ok
}

// Get returns the value of key, or def when it is absent.
func (a *Args) Get(key, def string) string {
	if _, v, ok := a.find(a.values, []string{key}); ok {
		return v
	}
	return def
}

// First returns the value of the first of keys that is present, or "".
func (a *Args) First(keys ...string) string {
	_, v, _ := a.find(a.values, keys)
	return v
}

// TryGet returns the value of the first of keys that is present.
func (a *Args) TryGet(keys ...string) (string, bool) {
	_, v, ok := a.find(a.values, keys)
	return v, ok
}

// Lookup is TryGet with an ErrNotFound error instead of a flag.
func (a *Args) Lookup(keys ...string) (string, error) {
	if _, v, ok := a.find(a.values, keys); ok {
		return v, nil
	}
	return "", a.notFound(keys)
}

// CanUse reports whether any of keys is present and not yet consumed. It
// does not consume anything.
func (a *Args) CanUse(keys ...string) bool {
	_, _, ok := a.find(a.unused, keys)
	return ok
}

// take consumes the first unused key of keys.
func (a *Args) take(keys []string) (string, bool) {
	k, v, ok := a.find(a.unused, keys)
	if ok {
		delete(a.unused, k)
	}
	return v, ok
}

// Use consumes key and returns its value, or def when key is absent or
// already consumed.
func (a *Args) Use(key, def string) string {
	if v, ok := a.take([]string{key}); ok {
		return v
	}
	return def
}

// UseFirst consumes the first unused of keys and returns its value, or "".
func (a *Args) UseFirst(keys ...string) string {
	v, _ := a.take(keys)
	return v
}

// TryUse consumes the first unused of keys.
func (a *Args) TryUse(keys ...string) (string, bool) {
	return a.take(keys)
}

// LookupUse is TryUse with an ErrNotFound error instead of a flag.
func (a *Args) LookupUse(keys ...string) (string, error) {
	if v, ok := a.take(keys); ok {
		return v, nil
	}
	return "", a.notFound(keys)
}

// Require returns the value of the first of keys that is present, or a
// *MissingArgumentError.
func (a *Args) Require(keys ...string) (string, error) {
	return a.RequireMsg("", keys...)
}

// RequireMsg is Require with a caller-supplied error message.
func (a *Args) RequireMsg(msg string, keys ...string) (string, error) {
	if v, ok := a.TryGet(keys...); ok {
		return v, nil
	}
	return "", a.missing(msg, keys, nil)
}

// RequireUse consumes the first unused of keys, or returns a
// *MissingArgumentError.
func (a *Args) RequireUse(keys ...string) (string, error) {
	return a.RequireUseMsg("", keys...)
}

// RequireUseMsg is RequireUse with a caller-supplied error message.
func (a *Args) RequireUseMsg(msg string, keys ...string) (string, error) {
	if v, ok := a.take(keys); ok {
		return v, nil
	}
	return "", a.missing(msg, keys, nil)
}

func (a *Args) missing(msg string, keys []string, cause error) error {
	display := a.displayKeys(keys)
	a.opts.logger.Debug("Required argument missing.", "keys", display)
	return &MissingArgumentError{Keys: display, Message: msg, Err: cause}
}
