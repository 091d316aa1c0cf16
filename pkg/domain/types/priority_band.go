package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Bounds of the likelihood and impact scoring scale
const (
	MinScore = 1
	MaxScore = 5
)

// PriorityBand is the severity class derived from a risk priority
type PriorityBand string

const (
	PriorityBandLow     PriorityBand = "Low"
	PriorityBandMedium  PriorityBand = "Medium"
	PriorityBandHigh    PriorityBand = "High"
	PriorityBandUnknown PriorityBand = "Unknown"
)

// AllPriorityBands returns the bands a valid priority can fall into, lowest first
func AllPriorityBands() []PriorityBand {
	return []PriorityBand{
		PriorityBandLow,
		PriorityBandMedium,
		PriorityBandHigh,
	}
}

// PriorityBandOf classifies a priority value. Boundaries are inclusive:
// Low 1-6, Medium 7-14, High 15-25. Anything else is Unknown.
func PriorityBandOf(priority int) PriorityBand {
	switch {
	case priority >= 1 && priority <= 6:
		return PriorityBandLow
	case priority >= 7 && priority <= 14:
		return PriorityBandMedium
	case priority >= 15 && priority <= 25:
		return PriorityBandHigh
	default:
		return PriorityBandUnknown
	}
}

// IsValid checks if the band is one of the known bands, Unknown included
func (b PriorityBand) IsValid() bool {
	switch b {
	case PriorityBandLow,
		PriorityBandMedium,
		PriorityBandHigh,
		PriorityBandUnknown:
		return true
	default:
		return false
	}
}

// Range returns the inclusive priority range of the band. Unknown has no range.
func (b PriorityBand) Range() (lo, hi int) {
	switch b {
	case PriorityBandLow:
		return 1, 6
	case PriorityBandMedium:
		return 7, 14
	case PriorityBandHigh:
		return 15, 25
	default:
		return 0, 0
	}
}

// String returns the string representation of the band
func (b PriorityBand) String() string {
	return string(b)
}

// ParsePriorityBand parses a band name case-insensitively
func ParsePriorityBand(s string) (PriorityBand, error) {
	for _, b := range append(AllPriorityBands(), PriorityBandUnknown) {
		if strings.EqualFold(s, string(b)) {
			return b, nil
		}
	}
	return "", goerr.New("invalid priority band", goerr.V("band", s))
}
