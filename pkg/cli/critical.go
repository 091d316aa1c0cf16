package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintrisk/pkg/service/report"
	"github.com/secmon-lab/sprintrisk/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdCritical(newUseCases useCaseFactory) *cli.Command {
	return &cli.Command{
		Name:  "critical",
		Usage: "Show the risk with the highest priority",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			risk, err := uc.Risk.MostCritical()
			if err != nil {
				return goerr.Wrap(err, "failed to find most critical risk")
			}

			safe.Print(ctx, c.Root().Writer, report.MostCritical(uc.Risk.Assess(risk)))
			return nil
		},
	}
}
