package model

import (
	"github.com/secmon-lab/sprintrisk/pkg/domain/types"
)

// Risk is a named potential problem of a Scrum project. It is a value type:
// priority and band are derived on every access and never stored.
type Risk struct {
	Name       string
	Likelihood types.Likelihood
	Impact     types.Impact
}

// NewRisk creates a Risk. Scores are not validated; out-of-range values end up
// in the Unknown priority band.
func NewRisk(name string, likelihood types.Likelihood, impact types.Impact) Risk {
	return Risk{
		Name:       name,
		Likelihood: likelihood,
		Impact:     impact,
	}
}

// Priority returns likelihood x impact, 1-25 for in-range scores
func (r Risk) Priority() int {
	return int(r.Likelihood) * int(r.Impact)
}

// PriorityBand classifies Priority into Low, Medium, High or Unknown
func (r Risk) PriorityBand() types.PriorityBand {
	return types.PriorityBandOf(r.Priority())
}

// Validate reports whether both scores are on the 1-5 scale. The engine never
// rejects a risk; this is used for diagnostics only.
func (r Risk) Validate() error {
	if err := r.Likelihood.Validate(); err != nil {
		return err
	}
	return r.Impact.Validate()
}
