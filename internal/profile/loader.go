package profile

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/argline/internal/args"
	"github.com/specialistvlad/argline/internal/ctxlog"
	"github.com/specialistvlad/argline/internal/fsutil"
)

// ErrUnknownProfile is returned by Set.Args for a name no file defined.
var ErrUnknownProfile = errors.New("unknown profile")

// fileRoot decodes all top-level blocks of a profile file.
type fileRoot struct {
	Profiles []*profileBlock `hcl:"profile,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

type profileBlock struct {
	Name      string         `hcl:"name,label"`
	Line      *string        `hcl:"line,optional"`
	Arguments hcl.Expression `hcl:"arguments,optional"`
}

// Profile is one decoded profile block.
type Profile struct {
	Name   string
	Source string // file the profile was read from
	Line   string
	Pairs  []Pair
}

// Pair is a single key/value taken from a profile's arguments object.
type Pair struct {
	Key   string
	Value string
}

// Set holds every profile found by Load.
type Set struct {
	profiles map[string]*Profile
}

// Load parses every .hcl file under paths. Directories are walked; paths
// that do not exist are skipped. A profile name defined twice is an error.
func Load(ctx context.Context, paths ...string) (*Set, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Profile loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	set := &Set{profiles: make(map[string]*Profile)}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Profiles {
			if prev, ok := set.profiles[block.Name]; ok {
				return nil, fmt.Errorf("profile %q in %s is already defined in %s", block.Name, file, prev.Source)
			}
			p, err := translateProfile(block, file)
			if err != nil {
				return nil, err
			}
			set.profiles[p.Name] = p
			logger.Debug("Profile loaded.", "name", p.Name, "file", file, "pairs", len(p.Pairs))
		}
	}

	logger.Debug("Profile loading complete.", "profiles", len(set.profiles))
	return set, nil
}

func translateProfile(block *profileBlock, file string) (*Profile, error) {
	p := &Profile{Name: block.Name, Source: file}
	if block.Line != nil {
		p.Line = *block.Line
	}

	if block.Arguments == nil {
		return p, nil
	}
	val, diags := block.Arguments.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("profile %q: failed to evaluate arguments: %w", block.Name, diags)
	}
	// An omitted optional attribute decodes as a null expression.
	if val.IsNull() {
		return p, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("profile %q: arguments must be an object, got %s", block.Name, val.Type().FriendlyName())
	}

	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		key := k.AsString()
		text, include, err := flatten(v)
		if err != nil {
			return nil, fmt.Errorf("profile %q: argument %q: %w", block.Name, key, err)
		}
		if include {
			p.Pairs = append(p.Pairs, Pair{Key: key, Value: text})
		}
	}
	return p, nil
}

// Names returns the loaded profile names, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the profile called name.
func (s *Set) Get(name string) (*Profile, bool) {
	p, ok := s.profiles[name]
	return p, ok
}

// Args builds the argument set for the named profile.
func (s *Set) Args(name string, opts ...args.Option) (*args.Args, error) {
	p, ok := s.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p.Args(opts...), nil
}

// Args parses the profile's line and adds its pairs on top of it.
func (p *Profile) Args(opts ...args.Option) *args.Args {
	a := args.New(p.Line, opts...)
	for _, pair := range p.Pairs {
		a.Add(pair.Key, pair.Value)
	}
	return a
}
