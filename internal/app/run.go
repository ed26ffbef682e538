package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/argline/internal/args"
	"github.com/specialistvlad/argline/internal/buildopts"
	"github.com/specialistvlad/argline/internal/ctxlog"
	"github.com/specialistvlad/argline/internal/profile"
)

// ErrUnusedArguments is returned in strict mode when some arguments were not
// recognized by any consumer.
var ErrUnusedArguments = errors.New("unrecognized arguments")

// Run merges profile, argument file and command line (in increasing order of
// precedence), resolves the build options from the result and reports them
// along with anything nobody claimed.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	merged, err := a.collect(ctx)
	if err != nil {
		return err
	}
	logger.Debug("Arguments merged.", "line", merged.Line())

	opts, err := buildopts.FromArgs(merged)
	if err != nil {
		return fmt.Errorf("failed to resolve build options: %w", err)
	}
	a.report(opts)

	if unused := merged.UnusedLine(); unused != "" {
		logger.Warn("Some arguments were not recognized.", "unused", unused)
		fmt.Fprintf(a.outW, "unused:      %s\n", unused)
		if a.config.Strict {
			return fmt.Errorf("%w: %s", ErrUnusedArguments, unused)
		}
	}

	logger.Debug("App.Run method finished.")
	return nil
}

// collect builds the merged argument set.
func (a *App) collect(ctx context.Context) (*args.Args, error) {
	logger := ctxlog.FromContext(ctx)
	opts := []args.Option{args.WithLogger(logger)}

	merged := args.New("", opts...)

	if a.config.Profile != "" {
		set, err := profile.Load(ctx, a.config.ProfileFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load profiles: %w", err)
		}
		base, err := set.Args(a.config.Profile, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to select profile (available: %s): %w", strings.Join(set.Names(), ", "), err)
		}
		merged.AddArgs(base)
		logger.Debug("Profile applied.", "profile", a.config.Profile, "keys", base.Len())
	}

	if a.config.ArgsFile != "" {
		content, err := os.ReadFile(a.config.ArgsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read argument file: %w", err)
		}
		fileArgs := args.New(string(content), append(opts, args.WithTokenizer(args.ShellTokenizer))...)
		merged.AddArgs(fileArgs)
		logger.Debug("Argument file applied.", "file", a.config.ArgsFile, "keys", fileArgs.Len())
	}

	merged.AddArgs(args.FromSlice(a.config.Arguments, opts...))
	return merged, nil
}

func (a *App) report(opts *buildopts.BuildOptions) {
	fmt.Fprintf(a.outW, "buildPath:   %s\n", opts.OutputPath)
	fmt.Fprintf(a.outW, "buildTarget: %s\n", opts.Target)
	fmt.Fprintf(a.outW, "development: %t\n", opts.Development)
	fmt.Fprintf(a.outW, "scenes:      %s\n", strings.Join(opts.Scenes, ", "))
}
