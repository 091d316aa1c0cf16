// Package console implements the interactive menu on top of the risk use cases.
// Input errors are reported to the user and never end the session.
package console

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/secmon-lab/sprintrisk/pkg/domain/types"
	"github.com/secmon-lab/sprintrisk/pkg/service/report"
	"github.com/secmon-lab/sprintrisk/pkg/usecase"
	"github.com/secmon-lab/sprintrisk/pkg/utils/errutil"
	"github.com/secmon-lab/sprintrisk/pkg/utils/logging"
	"github.com/secmon-lab/sprintrisk/pkg/utils/safe"
)

const clearSequence = "\033[H\033[2J"

// Console runs the menu loop, reading choices from in and writing screens to out
type Console struct {
	uc          *usecase.UseCases
	in          *bufio.Scanner
	out         io.Writer
	clearScreen bool
	title       *color.Color
}

type Option func(*Console)

// WithClearScreen clears the terminal before every screen
func WithClearScreen(enabled bool) Option {
	return func(c *Console) {
		c.clearScreen = enabled
	}
}

func New(uc *usecase.UseCases, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		uc:    uc,
		in:    bufio.NewScanner(in),
		out:   out,
		title: color.New(color.FgCyan, color.Bold),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the menu until the user exits or input ends
func (c *Console) Run(ctx context.Context) error {
	logger := logging.From(ctx)
	logger.Debug("console started")

	for {
		c.clear(ctx)
		c.printMenu(ctx)

		choice, ok := c.prompt(ctx, "Select an option: ")
		if !ok {
			logger.Debug("input closed, leaving console")
			return nil
		}

		switch choice {
		case "1":
			c.simulate(ctx, 1)
		case "2":
			c.simulateMany(ctx)
		case "3":
			c.mostCritical(ctx)
		case "4":
			c.ranking(ctx)
		case "5":
			c.byBand(ctx)
		case "6":
			c.print(ctx, "Exiting...\n")
			return nil
		default:
			c.print(ctx, "Invalid option. Please select an option from 1 to 6.\n")
		}

		if !c.pause(ctx) {
			return nil
		}
	}
}

func (c *Console) printMenu(ctx context.Context) {
	_, _ = c.title.Fprintln(c.out, "=== Scrum Sprint Risk Simulator ===")
	c.print(ctx, "\nOptions:\n"+
		"1. Simulate one sprint\n"+
		"2. Simulate multiple sprints\n"+
		"3. Show most critical risk\n"+
		"4. Show all risks by priority\n"+
		"5. Show risks by priority band\n"+
		"6. Exit\n")
}

func (c *Console) simulate(ctx context.Context, n int) {
	c.clear(ctx)
	sim, err := c.uc.Risk.Simulate(ctx, n)
	if err != nil {
		c.fail(ctx, err, "failed to simulate sprints")
		return
	}
	c.print(ctx, "\n"+report.Simulation(sim.Results))
}

func (c *Console) simulateMany(ctx context.Context) {
	c.clear(ctx)
	input, ok := c.prompt(ctx, "Enter the number of sprints to simulate: ")
	if !ok {
		return
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 {
		c.print(ctx, "Please enter a valid positive number.\n")
		return
	}
	c.simulate(ctx, n)
}

func (c *Console) mostCritical(ctx context.Context) {
	c.clear(ctx)
	risk, err := c.uc.Risk.MostCritical()
	if err != nil {
		c.fail(ctx, err, "failed to find most critical risk")
		return
	}
	c.print(ctx, "\n"+report.MostCritical(c.uc.Risk.Assess(risk)))
}

func (c *Console) ranking(ctx context.Context) {
	c.clear(ctx)
	sorted := c.uc.Risk.AllSortedByPriority()
	c.print(ctx, "\n"+report.Ranking(c.uc.Risk.AssessAll(sorted)))
}

var bandChoices = map[string]types.PriorityBand{
	"1": types.PriorityBandLow,
	"2": types.PriorityBandMedium,
	"3": types.PriorityBandHigh,
}

func (c *Console) byBand(ctx context.Context) {
	c.clear(ctx)
	var b strings.Builder
	b.WriteString("\nSelect priority band:\n")
	for i, band := range types.AllPriorityBands() {
		lo, hi := band.Range()
		b.WriteString(strconv.Itoa(i+1) + ". " + band.String() + " (" + strconv.Itoa(lo) + "-" + strconv.Itoa(hi) + ")\n")
	}
	c.print(ctx, b.String())

	choice, ok := c.prompt(ctx, "Option: ")
	if !ok {
		return
	}
	band, found := bandChoices[choice]
	if !found {
		c.print(ctx, "Invalid option.\n")
		return
	}

	risks := c.uc.Risk.ByBand(band)
	c.print(ctx, "\n"+report.ByBand(band, c.uc.Risk.AssessAll(risks)))
}

// prompt writes label and reads one trimmed line. It returns false once input ends.
func (c *Console) prompt(ctx context.Context, label string) (string, bool) {
	c.print(ctx, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			_ = errutil.Handle(ctx, err, "failed to read console input")
		}
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) pause(ctx context.Context) bool {
	_, ok := c.prompt(ctx, "\nPress Enter to continue...")
	return ok
}

func (c *Console) fail(ctx context.Context, err error, msg string) {
	_ = errutil.Handle(ctx, err, msg)
	c.print(ctx, "Error: "+err.Error()+"\n")
}

func (c *Console) clear(ctx context.Context) {
	if c.clearScreen {
		c.print(ctx, clearSequence)
	}
}

func (c *Console) print(ctx context.Context, text string) {
	safe.Print(ctx, c.out, text)
}
