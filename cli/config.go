package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/ssassign/config"
	"github.com/katalvlaran/ssassign/report"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const forceFlagName = "force"

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the config file",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write the default config file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  forceFlagName,
						Usage: "Overwrite an existing config file",
					},
				},
				Action: cmdConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective config",
				Action: cmdConfigShow,
			},
		},
	}
}

func cmdConfigInit(ctx context.Context, cmd *cli.Command) error {
	app := getConfig(ctx)

	if _, err := os.Stat(app.ConfigPath); err == nil && !cmd.Bool(forceFlagName) {
		return errors.Errorf("config file exists: %s (use --force to overwrite)", app.ConfigPath)
	}
	if err := config.Save(app.ConfigPath, config.Default()); err != nil {
		return err
	}
	slog.Info("config written", "path", app.ConfigPath)
	_, err := fmt.Fprintln(out(cmd), app.ConfigPath)

	return err
}

func cmdConfigShow(ctx context.Context, cmd *cli.Command) error {
	app := getConfig(ctx)

	f := app.Format
	if f == report.FormatTable {
		f = report.FormatYAML
	}

	return report.Encode(out(cmd), f, app.Config)
}
