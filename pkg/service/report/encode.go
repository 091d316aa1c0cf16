package report

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/sprintrisk/pkg/domain/model"
)

// Format selects how a simulation report is written
type Format string

const (
	FormatText Format = "text"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatTOML:
		return f, nil
	default:
		return "", goerr.New("unsupported report format", goerr.V("format", s))
	}
}

// EncodeTOML writes the simulation report as a TOML document
func EncodeTOML(w io.Writer, sim *model.SimulationReport) error {
	if sim == nil {
		return goerr.New("simulation report is nil")
	}
	if err := toml.NewEncoder(w).Encode(sim); err != nil {
		return goerr.Wrap(err, "failed to encode simulation report", goerr.V("run_id", sim.ID))
	}
	return nil
}

// Write renders sim to w in the requested format
func Write(w io.Writer, sim *model.SimulationReport, format Format) error {
	switch format {
	case FormatTOML:
		return EncodeTOML(w, sim)
	case FormatText, "":
		if sim == nil {
			return goerr.New("simulation report is nil")
		}
		if _, err := io.WriteString(w, Simulation(sim.Results)); err != nil {
			return goerr.Wrap(err, "failed to write simulation report", goerr.V("run_id", sim.ID))
		}
		return nil
	default:
		return goerr.New("unsupported report format", goerr.V("format", format))
	}
}
