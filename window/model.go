package window

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/npillmayer/canopy/pipeline"
)

const tickInterval = 100 * time.Millisecond

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

// Model is the bubbletea Model that renders a pipeline's shared
// display-list slot to the terminal once per tick. It only ever reads
// the pipeline; it never submits frames itself.
type Model struct {
	pipe   *pipeline.Pipeline
	width  int
	height int
	err    error
}

// New returns a Model that polls pipe for display lists to render.
func New(pipe *pipeline.Pipeline) Model {
	return Model{pipe: pipe}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	list, _ := m.pipe.DisplayList()
	g := newGrid(m.width, m.height)
	g.apply(list)
	return g.render()
}

// Err returns the last fatal error the window encountered, if any.
func (m Model) Err() error { return m.err }
