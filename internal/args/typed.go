package args

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/argline/internal/typeconv"
)

// resolve walks keys in order and returns the first value in src that
// converts cleanly. A key whose text does not convert is skipped, and the
// first such failure is reported if no later key succeeds. When consume is
// set the winning key is removed from the unused set; failed conversions
// never consume.
func resolve[T any](a *Args, src map[string]string, consume bool, conv func(string) (T, error), keys []string) (T, error) {
	var zero T
	var convErr error
	for _, key := range keys {
		k := a.foldKey(key)
		raw, ok := src[k]
		if !ok {
			continue
		}
		v, err := conv(raw)
		if err != nil {
			if convErr == nil {
				convErr = fmt.Errorf("argument %s%s: %w", a.prefixes[k], a.names[k], err)
			}
			continue
		}
		if consume {
			delete(a.unused, k)
		}
		return v, nil
	}
	if convErr != nil {
		return zero, convErr
	}
	return zero, a.notFound(keys)
}

func orDefault[T any](v T, err error, def T) T {
	if err != nil {
		return def
	}
	return v
}

func required[T any](a *Args, keys []string, v T, err error) (T, error) {
	if err == nil {
		return v, nil
	}
	var cause error
	if !errors.Is(err, ErrNotFound) {
		cause = err
	}
	return v, a.missing("", keys, cause)
}

// LookupAs returns the first of keys whose value converts to T. The error
// wraps ErrNotFound or typeconv.ErrConversion.
func LookupAs[T typeconv.Value](a *Args, keys ...string) (T, error) {
	return resolve(a, a.values, false, typeconv.Parse[T], keys)
}

// TryGetAs is LookupAs with a success flag.
func TryGetAs[T typeconv.Value](a *Args, keys ...string) (T, bool) {
	v, err := LookupAs[T](a, keys...)
	return v, err == nil
}

// GetAs returns key converted to T, or def when key is absent or its text
// does not convert.
func GetAs[T typeconv.Value](a *Args, key string, def T) T {
	v, err := LookupAs[T](a, key)
	return orDefault(v, err, def)
}

// FirstAs returns the first of keys that converts to T, or T's zero value.
func FirstAs[T typeconv.Value](a *Args, keys ...string) T {
	v, _ := LookupAs[T](a, keys...)
	return v
}

// RequireAs is LookupAs that fails with a *MissingArgumentError.
func RequireAs[T typeconv.Value](a *Args, keys ...string) (T, error) {
	v, err := LookupAs[T](a, keys...)
	return required(a, keys, v, err)
}

// LookupUseAs is LookupAs over unused keys; the winning key is consumed.
func LookupUseAs[T typeconv.Value](a *Args, keys ...string) (T, error) {
	return resolve(a, a.unused, true, typeconv.Parse[T], keys)
}

// TryUseAs is LookupUseAs with a success flag.
func TryUseAs[T typeconv.Value](a *Args, keys ...string) (T, bool) {
	v, err := LookupUseAs[T](a, keys...)
	return v, err == nil
}

// UseAs consumes key and returns it converted to T, or def.
func UseAs[T typeconv.Value](a *Args, key string, def T) T {
	v, err := LookupUseAs[T](a, key)
	return orDefault(v, err, def)
}

// UseFirstAs consumes the first of keys that converts to T.
func UseFirstAs[T typeconv.Value](a *Args, keys ...string) T {
	v, _ := LookupUseAs[T](a, keys...)
	return v
}

// RequireUseAs is LookupUseAs that fails with a *MissingArgumentError.
func RequireUseAs[T typeconv.Value](a *Args, keys ...string) (T, error) {
	v, err := LookupUseAs[T](a, keys...)
	return required(a, keys, v, err)
}

// LookupEnum returns the first of keys whose value names a member of E.
func LookupEnum[E typeconv.Enum[E]](a *Args, keys ...string) (E, error) {
	return resolve(a, a.values, false, typeconv.ParseEnum[E], keys)
}

// TryGetEnum is LookupEnum with a success flag.
func TryGetEnum[E typeconv.Enum[E]](a *Args, keys ...string) (E, bool) {
	v, err := LookupEnum[E](a, keys...)
	return v, err == nil
}

// GetEnum returns key as a member of E, or def.
func GetEnum[E typeconv.Enum[E]](a *Args, key string, def E) E {
	v, err := LookupEnum[E](a, key)
	return orDefault(v, err, def)
}

// RequireEnum is LookupEnum that fails with a *MissingArgumentError.
func RequireEnum[E typeconv.Enum[E]](a *Args, keys ...string) (E, error) {
	v, err := LookupEnum[E](a, keys...)
	return required(a, keys, v, err)
}

// LookupUseEnum is LookupEnum over unused keys; the winning key is consumed.
func LookupUseEnum[E typeconv.Enum[E]](a *Args, keys ...string) (E, error) {
	return resolve(a, a.unused, true, typeconv.ParseEnum[E], keys)
}

// TryUseEnum is LookupUseEnum with a success flag.
func TryUseEnum[E typeconv.Enum[E]](a *Args, keys ...string) (E, bool) {
	v, err := LookupUseEnum[E](a, keys...)
	return v, err == nil
}

// UseEnum consumes key and returns it as a member of E, or def.
func UseEnum[E typeconv.Enum[E]](a *Args, key string, def E) E {
	v, err := LookupUseEnum[E](a, key)
	return orDefault(v, err, def)
}

// RequireUseEnum is LookupUseEnum that fails with a *MissingArgumentError.
func RequireUseEnum[E typeconv.Enum[E]](a *Args, keys ...string) (E, error) {
	v, err := LookupUseEnum[E](a, keys...)
	return required(a, keys, v, err)
}
