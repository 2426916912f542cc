package cli

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/ssassign/assign"
	"github.com/katalvlaran/ssassign/report"
	"github.com/katalvlaran/ssassign/roster"
	"github.com/katalvlaran/ssassign/score"
	"github.com/katalvlaran/ssassign/store"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const (
	methodFlagName      = "method"
	strictFlagName      = "strict"
	normalizeFlagName   = "normalize"
	compareFlagName     = "compare"
	saveFlagName        = "save"
)

func newStrictFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  strictFlagName,
		Usage: "Reject names without letters",
	}
}

func newNormalizeFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  normalizeFlagName,
		Usage: "Apply Unicode NFKC normalisation to names (default: from config)",
	}
}

func assignCmd() *cli.Command {
	return &cli.Command{
		Name:      "assign",
		Usage:     "Assign drivers to streets",
		ArgsUsage: "<streets-file> <drivers-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  methodFlagName,
				Usage: "Extraction method [greedy, kuhn-munkres] (default: from config)",
			},
			newStrictFlag(),
			newNormalizeFlag(),
			&cli.BoolFlag{
				Name:  compareFlagName,
				Usage: "Also solve optimally and report the greedy gap",
			},
			&cli.BoolFlag{
				Name:  saveFlagName,
				Usage: "Record the run in the history database",
			},
			newDBFlag(),
		},
		Action: cmdAssign,
	}
}

// runInput is everything loaded before solving.
type runInput struct {
	streets, drivers []string
	scorer           *score.Scorer
}

func loadInput(ctx context.Context, cmd *cli.Command) (*runInput, error) {
	if err := requireArgs(cmd, 2); err != nil {
		return nil, err
	}
	cfg := getConfig(ctx).Config

	opts := cfg.Input
	if cmd.IsSet(strictFlagName) {
		opts.Strict = cmd.Bool(strictFlagName)
	}
	if cmd.IsSet(normalizeFlagName) {
		opts.Normalize = cmd.Bool(normalizeFlagName)
	}

	streets, drivers, err := roster.LoadPair(ctx, cmd.Args().Get(0), cmd.Args().Get(1), opts)
	if err != nil {
		return nil, err
	}
	slog.Debug("rosters loaded", "streets", len(streets), "drivers", len(drivers))

	scorer, err := score.New(cfg.Scoring)
	if err != nil {
		return nil, errors.Wrap(err, "config scoring")
	}

	return &runInput{streets: streets, drivers: drivers, scorer: scorer}, nil
}

func cmdAssign(ctx context.Context, cmd *cli.Command) error {
	app := getConfig(ctx)

	in, err := loadInput(ctx, cmd)
	if err != nil {
		return err
	}

	method := app.Config.Method()
	if cmd.IsSet(methodFlagName) {
		if method, err = assign.ParseMethod(cmd.String(methodFlagName)); err != nil {
			return err
		}
	}

	base, err := assign.BuildBase(in.streets, in.drivers, in.scorer.Score)
	if err != nil {
		return err
	}

	var (
		res assign.Result
		gap *float64
	)
	if cmd.Bool(compareFlagName) {
		cmp, err := assign.Compare(base)
		if err != nil {
			return err
		}
		slog.Debug("compared", "greedy", cmp.Greedy.Total, "optimal", cmp.Optimal.Total, "gap", cmp.Gap)
		rc, err := report.NewComparison(in.streets, in.drivers, cmp)
		if err != nil {
			return err
		}
		if err := report.WriteComparison(out(cmd), app.Format, rc); err != nil {
			return err
		}
		res, gap = cmp.Greedy, &cmp.Gap
		if method == assign.KuhnMunkres {
			res = cmp.Optimal
		}
	} else {
		if res, err = assign.Solve(base, assign.Options{Method: method}); err != nil {
			return err
		}
		a, err := report.NewAssignment(in.streets, in.drivers, res)
		if err != nil {
			return err
		}
		if err := report.WriteAssignment(out(cmd), app.Format, a); err != nil {
			return err
		}
	}

	if !cmd.Bool(saveFlagName) && !app.Config.History.Enabled {
		return nil
	}

	return saveRun(ctx, cmd, in, res, gap)
}

func saveRun(ctx context.Context, cmd *cli.Command, in *runInput, res assign.Result, gap *float64) error {
	a, err := report.NewAssignment(in.streets, in.drivers, res)
	if err != nil {
		return err
	}

	db, err := store.Open(dbPath(ctx, cmd))
	if err != nil {
		return err
	}
	defer db.Close()

	r := store.NewRun(a, cmd.Args().Get(0), cmd.Args().Get(1))
	r.Gap = gap
	id, err := store.SaveRun(ctx, db, r)
	if err != nil {
		return err
	}
	slog.Info("run saved", "id", id)

	return nil
}

func dbPath(ctx context.Context, cmd *cli.Command) string {
	if p := cmd.String(dbFlagName); p != "" {
		return p
	}
	app := getConfig(ctx)

	return app.Config.HistoryPath(app.Dir)
}
