package mitigation

import (
	"github.com/secmon-lab/sprintrisk/pkg/domain/model"
	"github.com/secmon-lab/sprintrisk/pkg/domain/types"
)

// DefaultStrategy is recommended for risks without a dedicated entry
const DefaultStrategy = "Review processes and perform root-cause analysis."

// baseStrategies maps an exact risk name to its base recommendation
var baseStrategies = map[string]string{
	model.RiskUnrealisticEstimates:    "Use estimation techniques such as Planning Poker and review estimates periodically.",
	model.RiskLackOfTechnicalSkills:   "Set up a mentoring and technical training program. Consider hiring specialists.",
	model.RiskTechnicalDebt:           "Allocate time in every sprint to reduce technical debt. Prioritize refactoring of critical code.",
	model.RiskPoorBacklog:             "Hold backlog refinement sessions with the whole team. Define clear acceptance criteria.",
	model.RiskOutdatedDocumentation:   "Establish a documentation standard. Schedule periodic reviews and automate documentation.",
	model.RiskLackOfTesting:           "Implement automated tests. Require minimum coverage for merges.",
	model.RiskIntegrationDifficulties: "Plan integrations from the start. Use well-documented APIs and continuous integration tests.",
	model.RiskIneffectiveMeetings:     "Define clear agendas and time limits. Use visual tools to track progress.",
	model.RiskMicromanagement:         "Encourage team autonomy. Set clear goals instead of constant supervision.",
	model.RiskCustomerDisengagement:   "Involve the customer in key meetings. Run workshops to co-create user stories.",
}

type escalation struct {
	prefix string
	suffix string
}

var (
	escalateHigh   = escalation{"IMMEDIATE ACTION REQUIRED: ", " Allocate additional resources and monitor daily."}
	escalateMedium = escalation{"Planned actions: ", " Review progress weekly."}
	escalateLow    = escalation{"Preventive actions: ", " Monitor periodically."}
)

func escalationFor(band types.PriorityBand) escalation {
	switch band {
	case types.PriorityBandHigh:
		return escalateHigh
	case types.PriorityBandMedium:
		return escalateMedium
	default:
		return escalateLow
	}
}

// Base returns the un-escalated recommendation for a risk name, falling back
// to DefaultStrategy.
func Base(name string) string {
	if s, ok := baseStrategies[name]; ok {
		return s
	}
	return DefaultStrategy
}

// Resolve returns the recommended mitigation for risk, escalated by its
// priority band. The result depends only on the name and band.
func Resolve(risk model.Risk) string {
	e := escalationFor(risk.PriorityBand())
	return e.prefix + Base(risk.Name) + e.suffix
}
