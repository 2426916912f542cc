package cli

import (
	"context"

	"github.com/katalvlaran/ssassign/assign"
	"github.com/katalvlaran/ssassign/report"
	"github.com/katalvlaran/ssassign/roster"
	"github.com/katalvlaran/ssassign/score"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func scoreCmd() *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "Explain the suitability score of one street/driver pair",
		ArgsUsage: "<street> <driver>",
		Flags:     []cli.Flag{newNormalizeFlag()},
		Action:    cmdScore,
	}
}

func cmdScore(ctx context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 2); err != nil {
		return err
	}
	app := getConfig(ctx)

	scorer, err := score.New(app.Config.Scoring)
	if err != nil {
		return errors.Wrap(err, "config scoring")
	}

	street, driver := cmd.Args().Get(0), cmd.Args().Get(1)
	normalize := app.Config.Input.Normalize
	if cmd.IsSet(normalizeFlagName) {
		normalize = cmd.Bool(normalizeFlagName)
	}
	if normalize {
		street, driver = roster.Normalize(street), roster.Normalize(driver)
	}

	return report.WriteBreakdown(out(cmd), app.Format, scorer.Explain(street, driver))
}

func matrixCmd() *cli.Command {
	return &cli.Command{
		Name:      "matrix",
		Usage:     "Print the base score matrix",
		ArgsUsage: "<streets-file> <drivers-file>",
		Flags:     []cli.Flag{newStrictFlag(), newNormalizeFlag()},
		Action:    cmdMatrix,
	}
}

func cmdMatrix(ctx context.Context, cmd *cli.Command) error {
	in, err := loadInput(ctx, cmd)
	if err != nil {
		return err
	}

	base, err := assign.BuildBase(in.streets, in.drivers, in.scorer.Score)
	if err != nil {
		return err
	}
	g, err := report.NewGrid(in.streets, in.drivers, base)
	if err != nil {
		return err
	}

	return report.WriteGrid(out(cmd), getConfig(ctx).Format, g)
}
