package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// SpeedSelection is what the speed selector returns.
type SpeedSelection struct {
	Speed       engine.Speed
	Progression bool // raise the tier as lines are cleared
}

// SpeedKeyMap defines the key bindings for the speed selector.
type SpeedKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Progression key.Binding
	Select      key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SpeedKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Progression, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SpeedKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Progression}, {k.Select, k.Back, k.Quit}}
}

// DefaultSpeedKeyMap returns default key bindings.
func DefaultSpeedKeyMap() SpeedKeyMap {
	return SpeedKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("up", "faster")),
		Down:        key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("down", "slower")),
		Progression: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "progression")),
		Select:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// SpeedModel lets users pick the starting speed tier. The list runs from the
// fastest tier at the top to the slowest at the bottom.
type SpeedModel struct {
	tiers       engine.SpeedTable
	cursor      engine.Speed
	progression bool
	width       int
	height      int
	keys        SpeedKeyMap
	help        help.Model
	chosen      bool
	quitting    bool
	back        bool
}

// NewSpeedModel creates a selector positioned on the configured initial tier.
func NewSpeedModel(cfg config.TetrisConfig, width, height int) SpeedModel {
	h := help.New()
	h.Width = width
	return SpeedModel{
		tiers:       cfg.Engine().Speeds,
		cursor:      cfg.InitialSpeed(),
		progression: cfg.Difficulty.Enabled,
		width:       width,
		height:      height,
		keys:        DefaultSpeedKeyMap(),
		help:        h,
	}
}

// Init initializes the model.
func (m SpeedModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SpeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor < engine.SpeedImpossible {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor > engine.SpeedSlow {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Progression):
			m.progression = !m.progression
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the tier list.
func (m SpeedModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S P E E D"), m.width))
	b.WriteString("\n\n")

	for i := len(engine.Speeds) - 1; i >= 0; i-- {
		s := engine.Speeds[i]
		tier := m.tiers.Tier(s)
		text := fmt.Sprintf("%-10s %4dms  x%.2f", s, tier.Interval.Milliseconds(), tier.Multiplier)
		line := "  " + text
		if s == m.cursor {
			line = menuCursorStyle.Render("> " + text)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	prog := "off"
	if m.progression {
		prog = "on"
	}
	b.WriteString("\n")
	b.WriteString(centerText("Speed progression: "+prog, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Selected returns the selection, or nil if the user backed out.
func (m SpeedModel) Selected() *SpeedSelection {
	if !m.chosen {
		return nil
	}
	return &SpeedSelection{Speed: m.cursor, Progression: m.progression}
}

// IsQuitting returns true if user wants to quit.
func (m SpeedModel) IsQuitting() bool {
	return m.quitting
}

// RunSpeedSelector runs the speed selector. A nil selection means the user
// went back or quit.
func RunSpeedSelector(cfg config.TetrisConfig, rc core.RuntimeConfig) (*SpeedSelection, bool, error) {
	p := tea.NewProgram(NewSpeedModel(cfg, rc.ScreenW, rc.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	m, ok := finalModel.(SpeedModel)
	if !ok {
		return nil, true, nil
	}
	return m.Selected(), m.IsQuitting(), nil
}
