package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/xdkit/pkg/environment"
	"github.com/dmitrymomot/xdkit/pkg/logger"
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupUtility = "utility"
)

type commandKey struct{}

// app holds state shared by all commands. environ and now are swapped in tests.
type app struct {
	environ map[string]string // nil means the process environment
	now     func() time.Time

	settings settings
	log      *slog.Logger

	logLevel  string
	logFormat string
}

func newApp() *app {
	return &app{now: time.Now}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "xd",
		Short: "Format dates with brace tokens and generate random strings",
		Long: `xd formats the current (or a given) time through a token layout such as
"{yyyy}-{MM}-{dd} {h12}:{mm} {P}" and builds random strings from presets
like hex digits or greek letter names.

Settings can also come from XD_* environment variables or a .env file.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		Version:                    versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (env XD_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text or json (env XD_LOG_FORMAT)")

	root.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	root.AddCommand(newDateCmd(a))
	root.AddCommand(newGenCmd(a))
	root.AddCommand(newTokensCmd())
	root.AddCommand(newPresetsCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads settings and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	s, err := loadSettings(a.environ)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	a.settings = s

	env := environment.Parse(s.Env)
	opts := []logger.Option{
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithEnvironment(env),
		logger.WithContextExtractors(environment.LoggerExtractor()),
		logger.WithContextValue("command", commandKey{}),
	}

	levelName := s.LogLevel
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	if levelName != "" {
		level, err := logger.ParseLevel(levelName)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	formatName := s.LogFormat
	if a.logFormat != "" {
		formatName = a.logFormat
	}
	if formatName != "" {
		format, err := logger.ParseFormat(formatName)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	a.log = logger.New(opts...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = environment.WithContext(ctx, env)
	ctx = context.WithValue(ctx, commandKey{}, cmd.CommandPath())
	cmd.SetContext(ctx)

	return nil
}
