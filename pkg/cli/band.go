package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintrisk/pkg/domain/types"
	"github.com/secmon-lab/sprintrisk/pkg/service/report"
	"github.com/secmon-lab/sprintrisk/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdBand(newUseCases useCaseFactory) *cli.Command {
	var bandName string

	return &cli.Command{
		Name:  "band",
		Usage: "List the risks of one priority band",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "band",
				Aliases:     []string{"b"},
				Usage:       "Priority band [low|medium|high]",
				Required:    true,
				Destination: &bandName,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			band, err := types.ParsePriorityBand(bandName)
			if err != nil {
				return goerr.Wrap(err, "invalid --band")
			}

			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			risks := uc.Risk.ByBand(band)
			safe.Print(ctx, c.Root().Writer, report.ByBand(band, uc.Risk.AssessAll(risks)))
			return nil
		},
	}
}
