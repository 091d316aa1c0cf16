package cli

import (
	"context"

	"github.com/secmon-lab/sprintrisk/pkg/service/report"
	"github.com/secmon-lab/sprintrisk/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdList(newUseCases useCaseFactory) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all risks ordered by priority",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			sorted := uc.Risk.AllSortedByPriority()
			safe.Print(ctx, c.Root().Writer, report.Ranking(uc.Risk.AssessAll(sorted)))
			return nil
		},
	}
}
