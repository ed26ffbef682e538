package buildopts

import (
	"testing"

	"github.com/specialistvlad/argline/internal/args"
	"github.com/specialistvlad/argline/internal/typeconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromArgs(t *testing.T) {
	testCases := []struct {
		name       string
		line       string
		expected   *BuildOptions
		wantUnused string
	}{
		{
			name: "minimal",
			line: "-buildPath Builds/Out",
			expected: &BuildOptions{
				OutputPath: "Builds/Out",
				Target:     TargetStandalone,
				Scenes:     []string{DefaultScene},
			},
		},
		{
			name: "full with aliases",
			line: "-o Builds/iOS -t IOS -dev -scenes A.unity B.unity -scene C.unity",
			expected: &BuildOptions{
				OutputPath:  "Builds/iOS",
				Target:      TargetIOS,
				Development: true,
				Scenes:      []string{"A.unity", "B.unity", "C.unity"},
			},
		},
		{
			name: "explicit development false",
			line: "-buildPath out -buildTarget android -development false",
			expected: &BuildOptions{
				OutputPath: "out",
				Target:     TargetAndroid,
				Scenes:     []string{DefaultScene},
			},
		},
		{
			name: "unknown keys stay unused",
			line: "-buildPath out -quit -batchmode -logFile build.log",
			expected: &BuildOptions{
				OutputPath: "out",
				Target:     TargetStandalone,
				Scenes:     []string{DefaultScene},
			},
			wantUnused: "-quit -batchmode -logFile build.log",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := args.New(tc.line)
			opts, err := FromArgs(a)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, opts)
			assert.Equal(t, tc.wantUnused, a.UnusedLine())
		})
	}
}

func TestFromArgs_Errors(t *testing.T) {
	t.Run("missing build path", func(t *testing.T) {
		_, err := FromArgs(args.New("-buildTarget linux"))
		require.Error(t, err)
		assert.ErrorIs(t, err, args.ErrMissingArgument)
		assert.EqualError(t, err, "missing required argument: -buildPath <directory>")
	})

	t.Run("empty build path", func(t *testing.T) {
		_, err := FromArgs(args.New("-buildPath -buildTarget linux"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be empty")
	})

	t.Run("unknown target", func(t *testing.T) {
		a := args.New("-buildPath out -buildTarget dreamcast")
		_, err := FromArgs(a)
		require.Error(t, err)
		assert.ErrorIs(t, err, typeconv.ErrConversion)
		assert.Contains(t, err.Error(), "standalone, windows, macos, linux, ios, android, webgl")
		assert.True(t, a.CanUse("buildTarget"), "a rejected target is not consumed")
	})

	t.Run("bad development value", func(t *testing.T) {
		_, err := FromArgs(args.New("-buildPath out -development maybe"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"maybe"`)
	})
}

func TestTarget_String(t *testing.T) {
	assert.Equal(t, "webgl", TargetWebGL.String())
	assert.Equal(t, "unknown", Target(99).String())
	assert.Equal(t, "unknown", Target(-1).String())
	assert.Len(t, TargetStandalone.Values(), len(targetNames))
}
