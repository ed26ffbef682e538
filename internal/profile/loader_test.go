package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

const androidProfile = `
profile "android" {
  line = "-scenes Assets/Scenes/A.unity Assets/Scenes/B.unity"
  arguments = {
    buildTarget = "android"
    buildPath   = "Builds/Android"
    development = true
    verbose     = false
    retries     = 3
    defines     = ["DEBUG", "TRACE"]
  }
}
`

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "build.hcl", androidProfile)

	set, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"android"}, set.Names())

	p, ok := set.Get("android")
	require.True(t, ok)
	assert.Equal(t, path, p.Source)

	a, err := set.Args("android")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"scenes":      "Assets/Scenes/A.unity Assets/Scenes/B.unity",
		"buildTarget": "android",
		"buildPath":   "Builds/Android",
		"development": "",
		"retries":     "3",
		"defines":     "DEBUG TRACE",
	}, a.Values())
	assert.False(t, a.Has("verbose"), "false leaves the key out")
}

func TestLoad_DirectoryAndMissingPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `profile "ios" { arguments = { buildTarget = "ios" } }`)
	writeFile(t, dir, "b.hcl", `profile "linux" { line = "-buildTarget linux" }`)
	writeFile(t, dir, "notes.txt", `not hcl at all {`)

	set, err := Load(context.Background(), dir, filepath.Join(dir, "does-not-exist"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ios", "linux"}, set.Names())

	a, err := set.Args("linux")
	require.NoError(t, err)
	assert.Equal(t, "linux", a.Get("buildTarget", ""))
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "syntax error",
			files:   map[string]string{"bad.hcl": `profile "x" {`},
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown attribute",
			files:   map[string]string{"bad.hcl": `profile "x" { nope = 1 }`},
			wantErr: "failed to decode HCL file",
		},
		{
			name: "duplicate profile",
			files: map[string]string{
				"a.hcl": `profile "x" {}`,
				"b.hcl": `profile "x" {}`,
			},
			wantErr: "already defined",
		},
		{
			name:    "arguments not an object",
			files:   map[string]string{"bad.hcl": `profile "x" { arguments = "-a 1" }`},
			wantErr: "arguments must be an object",
		},
		{
			name:    "nested object value",
			files:   map[string]string{"bad.hcl": `profile "x" { arguments = { a = { b = 1 } } }`},
			wantErr: "unsupported value",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tc.files {
				writeFile(t, dir, name, content)
			}
			_, err := Load(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSet_UnknownProfile(t *testing.T) {
	set, err := Load(context.Background())
	require.NoError(t, err)

	_, err = set.Args("nope")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestFlatten(t *testing.T) {
	testCases := []struct {
		name        string
		in          cty.Value
		wantText    string
		wantInclude bool
		wantErr     bool
	}{
		{"string", cty.StringVal("x"), "x", true, false},
		{"number", cty.NumberIntVal(12), "12", true, false},
		{"fraction", cty.NumberFloatVal(0.5), "0.5", true, false},
		{"true", cty.True, "", true, false},
		{"false", cty.False, "", false, false},
		{"null", cty.NullVal(cty.String), "", false, false},
		{"tuple", cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NumberIntVal(1), cty.True}), "a 1 true", true, false},
		{"list with null", cty.ListVal([]cty.Value{cty.StringVal("a"), cty.NullVal(cty.String)}), "a", true, false},
		{"unknown", cty.UnknownVal(cty.String), "", false, true},
		{"object", cty.ObjectVal(map[string]cty.Value{"a": cty.True}), "", false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text, include, err := flatten(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantText, text)
			assert.Equal(t, tc.wantInclude, include)
		})
	}
}
