package usecase

import (
	"context"
	"math/rand/v2"

	"github.com/secmon-lab/sprintrisk/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintrisk/pkg/domain/model"
)

type UseCases struct {
	random interfaces.RandomSource
	Risk   *RiskUseCase
}

type Option func(*UseCases)

// WithRandomSource replaces the process-wide random generator used for draws.
// A nil source is ignored.
func WithRandomSource(src interfaces.RandomSource) Option {
	return func(uc *UseCases) {
		if src != nil {
			uc.random = src
		}
	}
}

// New builds the use cases over catalog. The catalog is copied and never
// modified afterwards.
func New(ctx context.Context, catalog []model.Risk, opts ...Option) *UseCases {
	uc := &UseCases{
		random: globalRandom{},
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Risk = NewRiskUseCase(ctx, catalog, uc.random)

	return uc
}

// globalRandom draws from the math/rand/v2 top-level generator
type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}
