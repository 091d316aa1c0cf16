package config

import (
	"log/slog"
	"math/rand/v2"

	"github.com/secmon-lab/sprintrisk/pkg/domain/interfaces"
	"github.com/urfave/cli/v3"
)

// Random holds configuration of the random source used for risk draws
type Random struct {
	seed int
}

func (x *Random) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "seed",
			Usage:       "Seed for risk draws; 0 draws from a non-deterministic source",
			Category:    "Simulation",
			Destination: &x.seed,
			Sources:     cli.EnvVars("SPRINTRISK_SEED"),
		},
	}
}

func (x Random) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("seed", x.seed),
	)
}

// Configure returns a seeded random source, or nil when no seed is set so that
// the process-wide generator is used.
func (x *Random) Configure() interfaces.RandomSource {
	if x.seed == 0 {
		return nil
	}
	s := uint64(x.seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
