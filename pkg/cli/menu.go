package cli

import (
	"context"

	"github.com/secmon-lab/sprintrisk/pkg/controller/console"
	"github.com/urfave/cli/v3"
)

func cmdMenu(newUseCases useCaseFactory, clearScreen bool) *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "Start the interactive risk simulator",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			root := c.Root()
			return console.New(uc, root.Reader, root.Writer,
				console.WithClearScreen(clearScreen),
			).Run(ctx)
		},
	}
}
