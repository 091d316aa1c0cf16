package usecase

import (
	"cmp"
	"context"
	"slices"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintrisk/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintrisk/pkg/domain/model"
	"github.com/secmon-lab/sprintrisk/pkg/domain/types"
	"github.com/secmon-lab/sprintrisk/pkg/service/mitigation"
	"github.com/secmon-lab/sprintrisk/pkg/utils/logging"
)

// RiskUseCase manages the risk catalog: weighted draws, sprint simulation,
// ranking and band filtering.
type RiskUseCase struct {
	catalog []model.Risk
	random  interfaces.RandomSource
}

func NewRiskUseCase(ctx context.Context, catalog []model.Risk, random interfaces.RandomSource) *RiskUseCase {
	logger := logging.From(ctx)
	for i, risk := range catalog {
		if err := risk.Validate(); err != nil {
			logger.Warn("risk score out of range, priority band will be Unknown",
				"index", i,
				"risk", risk.Name,
				"error", err.Error(),
			)
		}
	}

	return &RiskUseCase{
		catalog: slices.Clone(catalog),
		random:  random,
	}
}

// Catalog returns a copy of the catalog in its original order
func (uc *RiskUseCase) Catalog() []model.Risk {
	return slices.Clone(uc.catalog)
}

// DrawRandom picks one risk with probability proportional to its likelihood.
// Risks with a non-positive likelihood are never drawn.
func (uc *RiskUseCase) DrawRandom(ctx context.Context) (model.Risk, error) {
	if len(uc.catalog) == 0 {
		return model.Risk{}, goerr.Wrap(ErrEmptyCatalog, "cannot draw a risk")
	}

	// cumulative[i] is the sum of weights of catalog[0..i]
	cumulative := make([]int, len(uc.catalog))
	total := 0
	for i, risk := range uc.catalog {
		total += max(int(risk.Likelihood), 0)
		cumulative[i] = total
	}
	if total <= 0 {
		return model.Risk{}, goerr.Wrap(ErrNoDrawableRisk, "cannot draw a risk", goerr.V("catalog_size", len(uc.catalog)))
	}

	target := uc.random.IntN(total)
	idx := sort.SearchInts(cumulative, target+1)
	risk := uc.catalog[idx]

	logging.From(ctx).Debug("risk drawn",
		"risk", risk.Name,
		"likelihood", int(risk.Likelihood),
		"total_weight", total,
	)

	return risk, nil
}

// Assess pairs risk with its resolved mitigation
func (uc *RiskUseCase) Assess(risk model.Risk) model.Assessment {
	return model.NewAssessment(risk, mitigation.Resolve(risk))
}

// AssessAll assesses each risk, preserving order
func (uc *RiskUseCase) AssessAll(risks []model.Risk) []model.Assessment {
	out := make([]model.Assessment, len(risks))
	for i, risk := range risks {
		out[i] = uc.Assess(risk)
	}
	return out
}

// Simulate runs n independent draws, one per sprint, and assesses each drawn risk
func (uc *RiskUseCase) Simulate(ctx context.Context, n int) (*model.SimulationReport, error) {
	if n < 1 {
		return nil, goerr.Wrap(ErrInvalidSprintCount, "cannot simulate sprints", goerr.V("sprints", n))
	}

	sim := &model.SimulationReport{
		ID:      model.NewSimulationID(),
		Sprints: n,
		Results: make([]model.Assessment, 0, n),
	}
	ctx = logging.With(ctx, logging.From(ctx).With("run_id", sim.ID))

	for sprint := 1; sprint <= n; sprint++ {
		risk, err := uc.DrawRandom(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to simulate sprint", goerr.V("sprint", sprint), goerr.V("run_id", sim.ID))
		}
		sim.Results = append(sim.Results, uc.Assess(risk))
	}

	logging.From(ctx).Info("sprints simulated", "sprints", n)
	return sim, nil
}

// MostCritical returns the risk with the highest priority. Ties resolve to the
// first one in catalog order.
func (uc *RiskUseCase) MostCritical() (model.Risk, error) {
	if len(uc.catalog) == 0 {
		return model.Risk{}, goerr.Wrap(ErrEmptyCatalog, "cannot find most critical risk")
	}

	best := uc.catalog[0]
	for _, risk := range uc.catalog[1:] {
		if risk.Priority() > best.Priority() {
			best = risk
		}
	}
	return best, nil
}

// AllSortedByPriority returns the catalog ordered by descending priority.
// Risks with equal priority keep their catalog order.
func (uc *RiskUseCase) AllSortedByPriority() []model.Risk {
	sorted := slices.Clone(uc.catalog)
	slices.SortStableFunc(sorted, func(a, b model.Risk) int {
		return cmp.Compare(b.Priority(), a.Priority())
	})
	return sorted
}

// ByBand returns the risks classified in band, in catalog order
func (uc *RiskUseCase) ByBand(band types.PriorityBand) []model.Risk {
	var out []model.Risk
	for _, risk := range uc.catalog {
		if risk.PriorityBand() == band {
			out = append(out, risk)
		}
	}
	return out
}
