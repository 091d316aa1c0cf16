package console_test

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sprintrisk/pkg/controller/console"
	"github.com/secmon-lab/sprintrisk/pkg/domain/model"
	"github.com/secmon-lab/sprintrisk/pkg/usecase"
)

func runConsole(t *testing.T, catalog []model.Risk, input string, opts ...console.Option) string {
	t.Helper()
	uc := usecase.New(context.Background(), catalog,
		usecase.WithRandomSource(rand.New(rand.NewPCG(1, 2))),
	)
	var out bytes.Buffer
	c := console.New(uc, strings.NewReader(input), &out, opts...)
	gt.NoError(t, c.Run(context.Background())).Required()
	return out.String()
}

func TestConsole_Exit(t *testing.T) {
	out := runConsole(t, model.DefaultCatalog(), "6\n")
	gt.String(t, out).Contains("Scrum Sprint Risk Simulator")
	gt.String(t, out).Contains("6. Exit")
	gt.String(t, out).Contains("Exiting...")
}

func TestConsole_EOFEndsSession(t *testing.T) {
	out := runConsole(t, model.DefaultCatalog(), "")
	gt.String(t, out).Contains("Select an option: ")
}

func TestConsole_SimulateOneSprint(t *testing.T) {
	out := runConsole(t, model.DefaultCatalog(), "1\n\n6\n")
	gt.String(t, out).Contains("=== Sprint Risk Report ===")
	gt.String(t, out).Contains("Risk 1:")
	gt.String(t, out).NotContains("Risk 2:")
	gt.String(t, out).Contains("Press Enter to continue...")
}

func TestConsole_SimulateMultipleSprints(t *testing.T) {
	out := runConsole(t, model.DefaultCatalog(), "2\n3\n\n6\n")
	gt.String(t, out).Contains("Enter the number of sprints to simulate: ")
	gt.String(t, out).Contains("Risk 3:")
	gt.String(t, out).NotContains("Risk 4:")
}

func TestConsole_InvalidSprintCount(t *testing.T) {
	for _, input := range []string{"abc", "0", "-2"} {
		t.Run(input, func(t *testing.T) {
			out := runConsole(t, model.DefaultCatalog(), "2\n"+input+"\n\n6\n")
			gt.String(t, out).Contains("Please enter a valid positive number.")
			gt.String(t, out).NotContains("=== Sprint Risk Report ===")
			gt.String(t, out).Contains("Exiting...")
		})
	}
}

func TestConsole_MostCritical(t *testing.T) {
	out := runConsole(t, model.DefaultCatalog(), "3\n\n6\n")
	gt.String(t, out).Contains("=== Most Critical Risk ===")
	gt.String(t, out).Contains("Name: " + model.RiskMicromanagement)
	gt.String(t, out).Contains("Priority: 20 (High)")
}

func TestConsole_MostCriticalEmptyCatalog(t *testing.T) {
	out := runConsole(t, nil, "3\n\n6\n")
	gt.String(t, out).Contains("Error: ")
	gt.String(t, out).Contains("empty catalog")
	gt.String(t, out).Contains("Exiting...")
}

func TestConsole_Ranking(t *testing.T) {
	out := runConsole(t, model.DefaultCatalog(), "4\n\n6\n")
	gt.String(t, out).Contains("=== All Risks by Priority ===")
	gt.String(t, out).Contains("1. " + model.RiskMicromanagement + " - Priority: 20 (High)")
	gt.String(t, out).Contains("10. ")
}

func TestConsole_ByBand(t *testing.T) {
	tests := []struct {
		choice   string
		header   string
		contains string
	}{
		{"1", "=== Risks with Low Priority ===", model.RiskUnrealisticEstimates},
		{"2", "=== Risks with Medium Priority ===", model.RiskTechnicalDebt},
		{"3", "=== Risks with High Priority ===", model.RiskPoorBacklog},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			out := runConsole(t, model.DefaultCatalog(), "5\n"+tt.choice+"\n\n6\n")
			gt.String(t, out).Contains("Medium (7-14)")
			gt.String(t, out).Contains(tt.header)
			gt.String(t, out).Contains(tt.contains)
		})
	}
}

func TestConsole_InvalidChoices(t *testing.T) {
	out := runConsole(t, model.DefaultCatalog(), "9\n\n5\n7\n\n6\n")
	gt.String(t, out).Contains("Invalid option. Please select an option from 1 to 6.")
	gt.String(t, out).Contains("Invalid option.\n")
	gt.String(t, out).Contains("Exiting...")
}

func TestConsole_ClearScreen(t *testing.T) {
	cleared := runConsole(t, model.DefaultCatalog(), "6\n", console.WithClearScreen(true))
	gt.String(t, cleared).Contains("\033[H\033[2J")

	plain := runConsole(t, model.DefaultCatalog(), "6\n")
	gt.String(t, plain).NotContains("\033[H\033[2J")
}
