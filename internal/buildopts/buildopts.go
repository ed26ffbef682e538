// Package buildopts maps parsed arguments onto a player build configuration.
// It claims the keys it understands from an *args.Args and leaves the rest
// for whoever runs next.
package buildopts

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/argline/internal/args"
	"github.com/specialistvlad/argline/internal/strutil"
	"github.com/specialistvlad/argline/internal/typeconv"
)

// DefaultScene is built when no scene is given.
const DefaultScene = "Assets/Scenes/CharacterPlaygroundBlockout.unity"

// BuildOptions is the resolved build configuration.
type BuildOptions struct {
	OutputPath  string
	Target      Target
	Development bool
	Scenes      []string
}

// FromArgs consumes buildPath (alias o), buildTarget (alias t),
// development (alias dev), scenes and scene from a.
func FromArgs(a *args.Args) (*BuildOptions, error) {
	path, err := a.RequireUseMsg("missing required argument: -buildPath <directory>", "buildPath", "o")
	if err != nil {
		return nil, err
	}
	if strutil.IsBlank(path) {
		return nil, fmt.Errorf("-buildPath must not be empty")
	}

	opts := &BuildOptions{OutputPath: path, Target: TargetStandalone}

	if a.CanUse("buildTarget", "t") {
		target, err := args.LookupUseEnum[Target](a, "buildTarget", "t")
		if err != nil {
			return nil, fmt.Errorf("invalid build target (expected one of %s): %w",
				strings.Join(typeconv.Names[Target](), ", "), err)
		}
		opts.Target = target
	}

	if v, ok := a.TryUse("development", "dev"); ok {
		opts.Development = true
		if v != "" {
			dev, ok := strutil.TryParse[bool](v)
			if !ok {
				return nil, fmt.Errorf("invalid value %q for -development: expected true or false", v)
			}
			opts.Development = dev
		}
	}

	opts.Scenes = slices.Collect(strutil.Split(a.UseFirst("scenes"), " ", true))
	if scene := a.UseFirst("scene"); scene != "" {
		opts.Scenes = append(opts.Scenes, scene)
	}
	if len(opts.Scenes) == 0 {
		opts.Scenes = []string{DefaultScene}
	}

	return opts, nil
}
