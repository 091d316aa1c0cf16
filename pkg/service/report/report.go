// Package report renders risk assessments as text for the console and CLI.
// Functions only format values that were already derived; none of them
// recompute priority or mitigation.
package report

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/sprintrisk/pkg/domain/model"
	"github.com/secmon-lab/sprintrisk/pkg/domain/types"
)

// Simulation renders the numbered results of simulated sprints
func Simulation(results []model.Assessment) string {
	var b strings.Builder
	b.WriteString("=== Sprint Risk Report ===\n\n")
	for i, r := range results {
		fmt.Fprintf(&b, "Risk %d:\n", i+1)
		fmt.Fprintf(&b, "  - Name: %s\n", r.Risk)
		fmt.Fprintf(&b, "  - Likelihood: %d/%d\n", r.Likelihood, types.MaxScore)
		fmt.Fprintf(&b, "  - Impact: %d/%d\n", r.Impact, types.MaxScore)
		fmt.Fprintf(&b, "  - Priority: %d (%s)\n", r.Priority, r.PriorityBand)
		fmt.Fprintf(&b, "  - Suggested mitigation: %s\n\n", r.Mitigation)
	}
	return b.String()
}

// MostCritical renders the summary of the highest priority risk
func MostCritical(a model.Assessment) string {
	var b strings.Builder
	b.WriteString("=== Most Critical Risk ===\n")
	fmt.Fprintf(&b, "Name: %s\n", a.Risk)
	fmt.Fprintf(&b, "Priority: %d (%s) (Likelihood: %d, Impact: %d)\n", a.Priority, a.PriorityBand, a.Likelihood, a.Impact)
	fmt.Fprintf(&b, "Suggested mitigation: %s\n", a.Mitigation)
	return b.String()
}

// ByBand renders the numbered risks of one priority band
func ByBand(band types.PriorityBand, items []model.Assessment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Risks with %s Priority ===\n\n", band)
	if len(items) == 0 {
		b.WriteString("No risks in this band.\n")
		return b.String()
	}
	for i, a := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, a.Risk)
		fmt.Fprintf(&b, "   - Priority: %d\n", a.Priority)
		fmt.Fprintf(&b, "   - Likelihood: %d/%d\n", a.Likelihood, types.MaxScore)
		fmt.Fprintf(&b, "   - Impact: %d/%d\n", a.Impact, types.MaxScore)
		fmt.Fprintf(&b, "   - Mitigation: %s\n\n", a.Mitigation)
	}
	return b.String()
}

// Ranking renders every risk on one line with its mitigation below, in the
// given order.
func Ranking(items []model.Assessment) string {
	var b strings.Builder
	b.WriteString("=== All Risks by Priority ===\n")
	for i, a := range items {
		fmt.Fprintf(&b, "%d. %s - Priority: %d (%s)\n", i+1, a.Risk, a.Priority, a.PriorityBand)
		fmt.Fprintf(&b, "   Mitigation: %s\n\n", a.Mitigation)
	}
	return b.String()
}
