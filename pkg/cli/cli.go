package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mattn/go-isatty"
	"github.com/secmon-lab/sprintrisk/pkg/cli/config"
	"github.com/secmon-lab/sprintrisk/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintrisk/pkg/repository/memory"
	"github.com/secmon-lab/sprintrisk/pkg/usecase"
	"github.com/secmon-lab/sprintrisk/pkg/utils/errutil"
	"github.com/secmon-lab/sprintrisk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	return run(ctx, args, version, os.Stdin, os.Stdout)
}

func run(ctx context.Context, args []string, version string, in io.Reader, out io.Writer) error {
	var loggerCfg config.Logger
	var randomCfg config.Random
	var closer func()

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, randomCfg.Flags()...)

	// newUseCases builds the use cases over the built-in catalog once flags are parsed
	newUseCases := func(ctx context.Context) (*usecase.UseCases, error) {
		return newRiskUseCases(ctx, memory.NewCatalog(), randomCfg.Configure())
	}

	app := &cli.Command{
		Name:    "sprintrisk",
		Usage:   "Scrum sprint risk simulator",
		Version: version,
		Flags:   flags,
		Reader:  in,
		Writer:  out,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Debug("Starting sprintrisk", "logger", loggerCfg, "random", randomCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdSimulate(newUseCases),
			cmdCritical(newUseCases),
			cmdList(newUseCases),
			cmdBand(newUseCases),
			cmdMenu(newUseCases, isTerminal(out)),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "failed to run app")
	}

	return nil
}

type useCaseFactory func(ctx context.Context) (*usecase.UseCases, error)

func newRiskUseCases(ctx context.Context, loader interfaces.CatalogLoader, random interfaces.RandomSource) (*usecase.UseCases, error) {
	catalog, err := loader.LoadCatalog(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load risk catalog")
	}
	logging.From(ctx).Debug("risk catalog loaded", "size", len(catalog))

	return usecase.New(ctx, catalog, usecase.WithRandomSource(random)), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
