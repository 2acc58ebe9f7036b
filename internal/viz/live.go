package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/icesim/internal/icesheet"
)

const liveWindow = 240

var (
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(36)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the relaxation live, a frame at a time, and renders the
// trailing volume window next to a stats panel.
type Model struct {
	curve  icesheet.Curve
	series icesheet.Series
	rates  icesheet.RateModel
	cfg    icesheet.Config

	curveName     string
	t             int
	controls      []float64
	tops          []float64
	bottoms       []float64
	volumes       []float64
	stepsPerFrame int
	frameRate     int
	running       bool
}

func NewModel(curveName string, curve icesheet.Curve, series icesheet.Series,
	rates icesheet.RateModel, cfg icesheet.Config, frameRate, stepsPerFrame int) Model {

	m := Model{
		curve:         curve,
		series:        series,
		rates:         rates,
		cfg:           cfg,
		curveName:     curveName,
		stepsPerFrame: stepsPerFrame,
		frameRate:     frameRate,
		running:       true,
	}
	m.reset()
	return m
}

func (m *Model) reset() {
	m.t = 0
	m.controls = make([]float64, 1, m.cfg.TimeMax)
	m.tops = make([]float64, 1, m.cfg.TimeMax)
	m.bottoms = make([]float64, 1, m.cfg.TimeMax)
	m.volumes = make([]float64, 1, m.cfg.TimeMax)
	m.volumes[0] = m.cfg.InitialVolume
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			if m.running {
				return m, m.tick()
			}
			return m, nil
		case "r":
			m.reset()
			if !m.running {
				m.running = true
			}
			return m, m.tick()
		}

	case TickMsg:
		if !m.running {
			return m, nil
		}
		for i := 0; i < m.stepsPerFrame && m.t < m.cfg.TimeMax-1; i++ {
			m.t++
			c := m.series.Control(m.t)
			top := m.curve.Top(c)
			bottom := m.curve.Bottom(c)
			m.controls = append(m.controls, c)
			m.tops = append(m.tops, top)
			m.bottoms = append(m.bottoms, bottom)
			m.volumes = append(m.volumes, icesheet.Step(m.volumes[m.t-1], c, top, bottom, m.rates))
		}
		if m.t >= m.cfg.TimeMax-1 {
			m.running = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	graph := "warming up..."
	if m.t >= 2 {
		start := 1
		if m.t+1-liveWindow > start {
			start = m.t + 1 - liveWindow
		}
		graph = asciigraph.PlotMany(
			[][]float64{m.volumes[start : m.t+1], m.tops[start : m.t+1], m.bottoms[start : m.t+1]},
			asciigraph.Height(16),
			asciigraph.Width(72),
			asciigraph.Caption("ice volume / eq top / eq bottom"),
			asciigraph.SeriesColors(asciigraph.White, asciigraph.Red, asciigraph.Blue),
		)
	}

	regime := "hold"
	if m.t >= 1 {
		switch {
		case m.volumes[m.t] > m.volumes[m.t-1]:
			regime = "growth"
		case m.volumes[m.t] < m.volumes[m.t-1]:
			regime = "decay"
		}
	}

	status := "running"
	if !m.running {
		status = "paused"
		if m.t >= m.cfg.TimeMax-1 {
			status = "finished"
		}
	}

	stats := headerStyle.Render(fmt.Sprintf("icesim live — %s", m.curveName)) + "\n"
	stats += statLine("status", status)
	stats += statLine("step", fmt.Sprintf("%d / %d", m.t, m.cfg.TimeMax-1))
	if m.t >= 1 {
		stats += statLine("control", fmt.Sprintf("%.4f", m.controls[m.t]))
		stats += statLine("eq top", fmt.Sprintf("%.4f", m.tops[m.t]))
		stats += statLine("eq bottom", fmt.Sprintf("%.4f", m.bottoms[m.t]))
	}
	stats += statLine("volume", fmt.Sprintf("%.4f", m.volumes[m.t]))
	stats += statLine("regime", regime)

	help := helpStyle.Render("space: pause/resume  r: restart  q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, graphStyle.Render(graph), statsStyle.Render(stats)),
		help,
	)
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}
