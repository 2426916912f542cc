// Package cli wires the ssassign commands (urfave/cli v3) to the engine,
// the roster loader, the report writers and the run history.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/ssassign/config"
	"github.com/katalvlaran/ssassign/logging"
	"github.com/katalvlaran/ssassign/report"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const appName = "ssassign"

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	// ErrUsage reports missing or extra positional arguments.
	ErrUsage = errors.New("usage")
)

const (
	configFlagName   = "config"
	logLevelFlagName = "log-level"
	debugFlagName    = "debug"
	formatFlagName   = "format"
	dbFlagName       = "db"
)

// Flags are built per command tree: urfave/cli keeps parsed state on the
// flag value, so a fresh tree must not share flags with an earlier run.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  configFlagName,
			Usage: fmt.Sprintf("Path to the config file (default: $HOME/%s/%s)", config.AppDirName, config.FileName),
		},
		&cli.StringFlag{
			Name:  logLevelFlagName,
			Usage: "Log level [debug, info, warn, error]",
			Value: "info",
		},
		&cli.BoolFlag{
			Name:  debugFlagName,
			Usage: "Prints verbose logs (same as --log-level debug)",
		},
		&cli.StringFlag{
			Name:  formatFlagName,
			Usage: "Output format [" + strings.Join(report.Formats(), ", ") + "] (default: from config)",
		},
	}
}

func newDBFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  dbFlagName,
		Usage: "Path to the SQLite history database (default: from config)",
	}
}

type appConfigKey struct{}

// appConfig is the state resolved once in Before and shared with every action.
type appConfig struct {
	Dir        string
	ConfigPath string
	Config     *config.Config
	Format     report.Format
}

func getConfig(ctx context.Context) *appConfig {
	if c, ok := ctx.Value(appConfigKey{}).(*appConfig); ok {
		return c
	}

	return &appConfig{Config: config.Default()}
}

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            appName,
		Version:         fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Usage:           "Assign drivers to streets by name suitability score",
		HideHelpCommand: true,
		Flags:           globalFlags(),
		Commands: []*cli.Command{
			assignCmd(),
			scoreCmd(),
			matrixCmd(),
			historyCmd(),
			configCmd(),
		},
		Before: before,
	}
}

func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := cmd.String(logLevelFlagName)
	if cmd.Bool(debugFlagName) {
		level = "debug"
	}
	slog.SetDefault(slog.New(logging.NewCLIHandler(cmd.Root().ErrWriter, logging.ParseLogLevel(level))))

	app, err := loadAppConfig(cmd.String(configFlagName))
	if err != nil {
		return ctx, err
	}

	app.Format = app.Config.Format()
	if cmd.IsSet(formatFlagName) {
		if app.Format, err = report.ParseFormat(cmd.String(formatFlagName)); err != nil {
			return ctx, err
		}
	}
	slog.Debug("config resolved", "path", app.ConfigPath, "format", app.Format)

	return context.WithValue(ctx, appConfigKey{}, app), nil
}

// loadAppConfig reads the config at path, or ReadOrCreate in the home dir
// when no path is given. An explicit path that does not exist yet yields the
// defaults so that "config init" can create it.
func loadAppConfig(path string) (*appConfig, error) {
	if path == "" {
		dir, _, err := config.GetOrCreateHomeDir(config.AppDirName)
		if err != nil {
			return nil, err
		}
		c, err := config.ReadOrCreate(dir)
		if err != nil {
			return nil, err
		}
		return &appConfig{Dir: dir, ConfigPath: filepath.Join(dir, config.FileName), Config: c}, nil
	}

	app := &appConfig{Dir: filepath.Dir(path), ConfigPath: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("config file not found, using defaults", "path", path)
		app.Config = config.Default()
		return app, nil
	}

	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	app.Config = c

	return app, nil
}

func out(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

// requireArgs returns ErrUsage unless exactly n positional args were given.
func requireArgs(cmd *cli.Command, n int) error {
	if cmd.Args().Len() != n {
		return errors.Wrapf(ErrUsage, "%s %s %s", appName, cmd.Name, cmd.ArgsUsage)
	}

	return nil
}
