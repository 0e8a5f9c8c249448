package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/gridmind/internal/sim"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// styled reports whether stdout is a terminal. Piped output stays plain.
func styled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func render(style lipgloss.Style, s string) string {
	if !styled() {
		return s
	}
	return style.Render(s)
}

func header(s string) string { return render(headerStyle, s) }

func dim(s string) string { return render(dimStyle, s) }

// outcome colours an outcome name, padding included: green on arrival, yellow when the agent stalled, red otherwise.
func outcome(o string) string {
	switch sim.Outcome(strings.TrimSpace(o)) {
	case sim.OutcomeArrived:
		return render(successStyle, o)
	case sim.OutcomeTimeout, sim.OutcomeExhausted:
		return render(warnStyle, o)
	default:
		return render(failStyle, o)
	}
}
