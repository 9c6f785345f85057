// Package cli parses command lines and dispatches them to commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
)

// loggerSetter is implemented by stores that accept a replacement debug logger.
type loggerSetter interface {
	SetLogger(logger *zap.Logger) *zap.Logger
}

// Dispatcher handles command-line parsing and dispatch.
// All commands run against the same task store.
type Dispatcher struct {
	registry *commands.Registry
	svc      service.Service
	fields   []zap.Field
}

// NewDispatcher creates a new dispatcher with the given registry and task store.
func NewDispatcher(registry *commands.Registry, svc service.Service) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		svc:      svc,
	}
}

// With returns a copy of the dispatcher that adds fields to its debug logs.
func (d *Dispatcher) With(fields ...zap.Field) *Dispatcher {
	clone := *d
	clone.fields = append(append([]zap.Field(nil), d.fields...), fields...)
	return &clone
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(out, "usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	// Flags can only turn settings on; config.yaml supplies the defaults.
	cfg.Quiet = cfg.Quiet || quiet
	cfg.Debug = cfg.Debug || debug

	logger := logging.New(cfg.Debug, errOut).With(d.fields...)
	logger.Debug("dispatch",
		zap.String("command", cmd.Name()),
		zap.Strings("args", positionalArgs),
		zap.String("config_dir", cfg.Dir),
		zap.Bool("config_file", cfg.HasFile()))

	// --debug also covers the store for the duration of this command.
	if ls, ok := d.svc.(loggerSetter); ok && cfg.Debug {
		prev := ls.SetLogger(logger.Named("store"))
		defer ls.SetLogger(prev)
	}

	code := cmd.Run(ctx, cfg, d.svc, positionalArgs, out, errOut)

	logger.Debug("command finished",
		zap.String("command", cmd.Name()),
		zap.Int("exit_code", code),
		zap.Int("tasks", d.svc.Len()))
	return code
}

// flagErrorMessage maps flag package errors to user-facing messages.
func flagErrorMessage(err error) string {
	errStr := err.Error()

	// Missing flag value: "flag needs an argument: -config"
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		return errStr
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		return "unknown flag: " + flagName
	}

	// Bad values, e.g. `invalid boolean value "x" for -open: parse error`
	return errStr
}
