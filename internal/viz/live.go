// Package viz renders a simulation run as a live terminal view: the
// precomputed trajectory is played back against the wall clock with
// scrolling graphs of current and smoothed efficiency.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/circuit"
)

const (
	graphWidth  = 70
	graphHeight = 8
	// samples advanced per frame at speed 1
	baseStride = 10
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type Model struct {
	scenario string
	cfg      circuit.Config
	result   *circuit.Result

	head    int
	speed   int
	running bool
}

func NewModel(scenario string, cfg circuit.Config, result *circuit.Result) Model {
	return Model{
		scenario: scenario,
		cfg:      cfg,
		result:   result,
		speed:    1,
		running:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.head = 0
		case "+", "=":
			if m.speed < 16 {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		}
	case TickMsg:
		if m.running {
			m.head += baseStride * m.speed
			if m.head >= len(m.result.Times) {
				m.head = len(m.result.Times) - 1
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	i := m.head
	res := m.result

	header := headerStyle.Render(fmt.Sprintf("love-os · %s regime · t = %.1fs / %.0fs", m.scenario, res.Times[i], m.cfg.Duration))

	stats := strings.Join([]string{
		statLine("current", res.Current[i]),
		statLine("charge", res.Charge[i]),
		statLine("efficiency", res.EfficiencyMA[i]),
		statLine("inductor E", res.EnergyL[i]),
		statLine("capacitor E", res.EnergyC[i]),
	}, "\n")

	currentGraph := graphStyle.Render(asciigraph.Plot(window(res.Current, i),
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("current I"),
	))

	etaGraph := graphStyle.Render(asciigraph.Plot(window(res.EfficiencyMA, i),
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("efficiency η (smoothed)"),
	))

	state := "running"
	if !m.running {
		state = "paused"
	}
	help := helpStyle.Render(fmt.Sprintf("[space] pause  [r] restart  [+/-] speed (%dx)  [q] quit · %s", m.speed, state))

	return lipgloss.JoinVertical(lipgloss.Left, header, stats, currentGraph, etaGraph, help)
}

func statLine(label string, v float64) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf("%10.4f", v))
}

// window returns the trailing slice of x ending at head, sized for the
// graph; short prefixes are returned as-is (asciigraph pads).
func window(x []float64, head int) []float64 {
	const span = 2000
	if head >= len(x) {
		head = len(x) - 1
	}
	lo := head - span
	if lo < 0 {
		lo = 0
	}
	return x[lo : head+1]
}
