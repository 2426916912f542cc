package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/ssassign/report"
	"github.com/katalvlaran/ssassign/store"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const limitFlagName = "limit"

func historyCmd() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Inspect recorded runs",
		Flags: []cli.Flag{newDBFlag()},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List recent runs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  limitFlagName,
						Usage: "Number of runs to list",
						Value: store.DefaultListLimit,
					},
				},
				Action: cmdHistoryList,
			},
			{
				Name:      "show",
				Usage:     "Show one run",
				ArgsUsage: "<id>",
				Action:    cmdHistoryShow,
			},
		},
	}
}

func cmdHistoryList(ctx context.Context, cmd *cli.Command) error {
	db, err := store.Open(dbPath(ctx, cmd))
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := store.ListRuns(ctx, db, cmd.Int(limitFlagName))
	if err != nil {
		return err
	}

	f := getConfig(ctx).Format
	if f != report.FormatTable {
		return report.Encode(out(cmd), f, runs)
	}

	tw := tabwriter.NewWriter(out(cmd), 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tCREATED\tMETHOD\tSIZE\tTOTAL\tGAP"); err != nil {
		return err
	}
	for _, r := range runs {
		gap := "-"
		if r.Gap != nil {
			gap = fmt.Sprintf("%.3f", *r.Gap)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.3f\t%s\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Method, r.Size, r.Total, gap); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func cmdHistoryShow(ctx context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}
	id, err := strconv.ParseInt(cmd.Args().First(), 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid run id %q", cmd.Args().First())
	}

	db, err := store.Open(dbPath(ctx, cmd))
	if err != nil {
		return err
	}
	defer db.Close()

	r, err := store.GetRun(ctx, db, id)
	if err != nil {
		return err
	}

	f := getConfig(ctx).Format
	if f != report.FormatTable {
		return report.Encode(out(cmd), f, r)
	}

	if _, err := fmt.Fprintf(out(cmd), "Run %d (%s, %s)\n", r.ID, r.Method, r.CreatedAt.Local().Format(time.DateTime)); err != nil {
		return err
	}
	if r.StreetsFile != "" || r.DriversFile != "" {
		if _, err := fmt.Fprintf(out(cmd), "Input: %s / %s\n", r.StreetsFile, r.DriversFile); err != nil {
			return err
		}
	}

	return report.WriteAssignment(out(cmd), report.FormatTable, r.Assignment())
}
