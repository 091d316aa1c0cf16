package model

import (
	"github.com/google/uuid"
	"github.com/secmon-lab/sprintrisk/pkg/domain/types"
)

// Assessment is a risk together with its derived values and recommended
// mitigation. One Assessment is produced per simulated sprint.
type Assessment struct {
	Risk         string             `toml:"risk"`
	Likelihood   types.Likelihood   `toml:"likelihood"`
	Impact       types.Impact       `toml:"impact"`
	Priority     int                `toml:"priority"`
	PriorityBand types.PriorityBand `toml:"priority_band"`
	Mitigation   string             `toml:"mitigation"`
}

// NewAssessment snapshots the derived values of risk alongside mitigation
func NewAssessment(risk Risk, mitigation string) Assessment {
	return Assessment{
		Risk:         risk.Name,
		Likelihood:   risk.Likelihood,
		Impact:       risk.Impact,
		Priority:     risk.Priority(),
		PriorityBand: risk.PriorityBand(),
		Mitigation:   mitigation,
	}
}

// SimulationID is a UUID-based identifier of one simulation run
type SimulationID string

// NewSimulationID generates a new UUID v4 SimulationID
func NewSimulationID() SimulationID {
	return SimulationID(uuid.New().String())
}

// SimulationReport holds the outcome of simulating consecutive sprints.
// Results are in sprint order.
type SimulationReport struct {
	ID      SimulationID `toml:"run_id"`
	Sprints int          `toml:"sprints"`
	Results []Assessment `toml:"results"`
}
