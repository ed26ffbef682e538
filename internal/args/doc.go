// internal/args/doc.go

/*
Package args splits a command-line-like string into a flat set of key/value
pairs and tracks which of them have been consumed.

Any token that starts with a marker character (a hyphen unless configured
otherwise) is a key. Its value is every following token up to the next key,
joined with single spaces and trimmed. A key with nothing after it has an
empty value. Tokens that appear before the first key are dropped. Keys are
matched case-insensitively and without their decorators, so "-Name",
"--name" and "name" all address the same entry.

	a := args.New("-buildPath Builds/iOS --buildTarget ios -development")
	path := a.Use("buildPath", "")
	target := args.UseEnum(a, "buildTarget", buildopts.TargetStandalone)
	if rest := a.UnusedLine(); rest != "" {
		// -development was never claimed by anyone
	}

Three families of accessors are provided:

  - Get/TryGet/Lookup read without side effects.
  - Use/TryUse/LookupUse read and mark the key as consumed. A consumed key
    is no longer reported by CanUse, UnusedLine or UnusedArgs, but Get
    still sees it.
  - Require/RequireUse fail with a *MissingArgumentError when no candidate
    key is present.

Typed variants (GetAs, UseAs, GetEnum, ...) are package-level functions
because methods cannot take type parameters. The default-returning forms
swallow conversion failures; Lookup* forms report ErrNotFound or
typeconv.ErrConversion.

An Args value is not safe for concurrent use.
*/
package args
