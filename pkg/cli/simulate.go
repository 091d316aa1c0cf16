package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintrisk/pkg/service/report"
	"github.com/urfave/cli/v3"
)

func cmdSimulate(newUseCases useCaseFactory) *cli.Command {
	var sprints int
	var format string

	return &cli.Command{
		Name:    "simulate",
		Aliases: []string{"sim"},
		Usage:   "Simulate sprints and report the risk drawn in each",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "sprints",
				Aliases:     []string{"n"},
				Usage:       "Number of sprints to simulate",
				Value:       1,
				Destination: &sprints,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format [text|toml]",
				Value:       string(report.FormatText),
				Destination: &format,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			sim, err := uc.Risk.Simulate(ctx, sprints)
			if err != nil {
				return goerr.Wrap(err, "failed to simulate sprints")
			}

			return report.Write(c.Root().Writer, sim, f)
		},
	}
}
