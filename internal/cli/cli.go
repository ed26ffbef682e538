package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/argline/internal/app"
	"github.com/specialistvlad/argline/internal/args"
	"github.com/specialistvlad/argline/internal/strutil"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

const usage = `
argline - resolves player build options from an argument line.

Usage:
  argline [options] -buildPath <dir> [build arguments...]

Options:
  -profile-file <path>   HCL file or directory with profile blocks ($ARGLINE_PROFILE_FILE)
  -profile <name>        Profile to start from ($ARGLINE_PROFILE)
  -args-file <path>      File with additional, shell-quoted arguments
  -strict                Fail when an argument is not recognized ($ARGLINE_STRICT)
  -log-level <level>     debug, info, warn or error ($ARGLINE_LOG_LEVEL, default info)
  -log-format <format>   text or json ($ARGLINE_LOG_FORMAT, default text)
  -help                  Show this message

Build arguments:
  -buildPath, -o <dir>        Output directory (required)
  -buildTarget, -t <target>   standalone, windows, macos, linux, ios, android or webgl
  -development, -dev [bool]   Development build
  -scenes <scene...>          Scenes to include
  -scene <scene>              One more scene
`

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(argv []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	a := args.FromSlice(argv)

	if a.CanUse("help", "h", "?") {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}
	if a.Len() == 0 {
		slog.Debug("No arguments provided, printing usage and exiting.")
		fmt.Fprint(output, usage)
		return nil, true, nil
	}

	defaults, err := loadEnvDefaults()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(a.Use("log-format", defaults.LogFormat))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(a.Use("log-level", defaults.LogLevel))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	strict := defaults.Strict
	if v, ok := a.TryUse("strict"); ok {
		parsed, ok := strutil.TryParse[bool](v)
		if !strutil.IsEmpty(v) && !ok {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid strict: %q is not a boolean", v)}
		}
		strict = strutil.IsEmpty(v) || parsed
	}
	argsFile := a.Use("args-file", "")
	profileFile := a.Use("profile-file", defaults.ProfileFile)
	profileName := a.Use("profile", defaults.Profile)
	slog.Debug("CLI parameter validation complete.")

	// Whatever the CLI did not claim belongs to the build.
	config, err := app.NewConfig(app.Config{
		Arguments:   a.UnusedArgs(),
		ArgsFile:    argsFile,
		ProfileFile: profileFile,
		Profile:     profileName,
		Strict:      strict,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
