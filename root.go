package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/winmaps/drivemap/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// Global persistent flags, bound in newRootCmd().
var (
	flagConfigPath string
	flagDomain     string
	flagJSON       bool
	flagVerbose    bool
	flagQuiet      bool
)

// resolvedCfg holds the effective configuration loaded by PersistentPreRunE.
// It is available to all subcommands after the root pre-run phase completes.
var resolvedCfg *config.Resolved

// logger is built by PersistentPreRunE alongside resolvedCfg. Commands that
// skip config loading still get a logger with flag-driven levels.
var logger *slog.Logger

// logFilePermissions applies to log files created by buildLogger.
const logFilePermissions = 0o644

// skipConfigCommands lists commands that must not run the four-layer config
// resolution. "config init" writes the starter file; refusing to run because
// the current file fails validation would defeat its purpose.
// Uses CommandPath() for explicit matching, safe against future subcommand
// collisions.
var skipConfigCommands = map[string]bool{
	"drivemap config init": true,
}

// newRootCmd builds and returns the fully-assembled root command with all
// subcommands registered. Called once from main().
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drivemap",
		Short: "Windows network drive mapper",
		Long: `Reconciles drive letters against UNC shares: maps what is missing,
remaps what points at the wrong target, and leaves correct mappings
alone. Designed for logon scripts, so one unreachable share never
blocks the rest.`,
		Version: version,
		// Silence Cobra's default error/usage printing; main handles it.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipConfigCommands[cmd.CommandPath()] {
				logger = buildLogger()

				return nil
			}

			return loadConfig(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&flagDomain, "domain", "", "domain hint for credential prompts")
	cmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output in JSON format")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress informational output")

	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Register subcommands.
	cmd.AddCommand(newMapCmd())
	cmd.AddCommand(newApplyCmd())
	cmd.AddCommand(newUnmapCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// loadConfig resolves the effective configuration from the four-layer override
// chain, stores the result in resolvedCfg for use by subcommands, and builds
// the logger from it.
func loadConfig(cmd *cobra.Command) error {
	cli := config.CLIOverrides{
		ConfigPath: flagConfigPath,
	}

	// Only pass overrides the user explicitly set; an untouched flag must not
	// clobber a config file value with its zero default.
	if cmd.Flags().Changed("domain") {
		cli.Domain = &flagDomain
	}

	if f := cmd.Flags().Lookup("persistent"); f != nil && f.Changed {
		cli.Persistent = &flagPersistent
	}

	resolved, err := config.Resolve(config.ReadEnvOverrides(), cli)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	resolvedCfg = resolved
	logger = buildLogger()

	logger.Debug("config resolved",
		"path", resolved.Path,
		"from_file", resolved.FromFile,
		"mappings", len(resolved.Mappings))

	return nil
}

// buildLogger creates an slog.Logger configured by the resolved config and
// CLI flags. Config-file log level provides the baseline; --verbose and
// --quiet override it because CLI flags always win. The handler format
// follows log_format: "auto" picks text on a terminal and JSON otherwise.
func buildLogger() *slog.Logger {
	level := slog.LevelInfo
	format := "auto"
	logFile := ""

	if resolvedCfg != nil {
		level = parseLogLevel(resolvedCfg.LogLevel)
		format = resolvedCfg.LogFormat
		logFile = resolvedCfg.LogFile
	}

	// CLI flags override config (highest priority).
	if flagVerbose {
		level = slog.LevelDebug
	}

	if flagQuiet {
		level = slog.LevelError
	}

	out := io.Writer(os.Stderr)

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePermissions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v\n", logFile, err)
		} else {
			// The handle stays open for the process lifetime.
			out = io.MultiWriter(os.Stderr, f)
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	if format == "json" || (format == "auto" && !isatty.IsTerminal(os.Stderr.Fd())) {
		return slog.New(slog.NewJSONHandler(out, opts))
	}

	return slog.New(slog.NewTextHandler(out, opts))
}

// parseLogLevel maps a validated log_level token to its slog level.
func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// isInteractive reports whether prompts can reach a human: stdin and stderr
// are both terminals.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}
