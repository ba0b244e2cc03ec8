package tui

import (
	"log/slog"
	"time"

	"pawlist/internal/catalog"
	"pawlist/internal/config"
	"pawlist/internal/nav"
	"pawlist/ui/tui/state"
	"pawlist/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	source     catalog.Source
	config     config.Config
	log        *slog.Logger
	nav        *nav.Controller
	keys       keyMap
	help       help.Model
	cursor     int
	animCursor float64
	velocity   float64 // Physics velocity
	spring     harmonica.Spring
	frame      time.Duration
	hover      int // row under the mouse, -1 for none
	quitting   bool
	width      int
	height     int
}

// Messages
type AnimateMsg time.Time

func InitialModel(source catalog.Source, cfg config.Config, log *slog.Logger) MainModel {
	return MainModel{
		source: source,
		config: cfg,
		log:    log,
		nav:    nav.New(),
		hover:  -1,
		keys:   newKeyMap(),
		help:   help.New(),
		spring: harmonica.NewSpring(harmonica.FPS(cfg.SpringFPS), cfg.SpringFrequency, cfg.SpringDamping),
		frame:  time.Second / time.Duration(cfg.SpringFPS),
	}
}

func (m *MainModel) Init() tea.Cmd {
	return m.animateCmd()
}

// Commands
func (m *MainModel) animateCmd() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.route(msg)
	m.guardDetail()
	return model, cmd
}

func (m *MainModel) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.back()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.nav.Current().Screen != nav.ScreenList {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.source.Animals())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selectRow(m.cursor)
	}
	return m, nil
}

// selectRow is the row tap: the tapped animal's key rides on the Detail
// entry pushed by the controller.
func (m *MainModel) selectRow(i int) {
	animals := m.source.Animals()
	if i < 0 || i >= len(animals) {
		return
	}
	m.cursor = i
	m.nav.Select(animals[i].ID, i)
	m.log.Debug("navigate", "to", nav.ScreenDetail.String(), "animal", animals[i].Name, "id", animals[i].ID.String())
}

func (m *MainModel) back() (tea.Model, tea.Cmd) {
	from := m.nav.Current().Screen
	next := m.nav.Back()
	m.log.Debug("navigate back", "from", from.String(), "to", next.String())

	if next == nav.ScreenExit {
		m.quitting = true
		return m, tea.Quit
	}
	m.cursor = m.nav.Current().Resume
	return m, nil
}

// guardDetail enforces that Detail is only shown for a resolvable animal.
func (m *MainModel) guardDetail() {
	cur := m.nav.Current()
	if cur.Screen != nav.ScreenDetail {
		return
	}
	if _, ok := catalog.Find(m.source.Animals(), cur.AnimalID); ok {
		return
	}

	err := m.nav.Redirect("selected animal does not resolve")
	m.log.Warn("detail screen without selection, returning to list", "error", err)
	m.cursor = m.nav.Current().Resume
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, float64(m.cursor), v)
	m.velocity = v
	return m, m.animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.nav.Current().Screen != nav.ScreenList {
		return m, nil
	}

	m.hover = -1
	for i, a := range m.source.Animals() {
		if zone.Get(views.RowZoneID(a.ID)).InBounds(msg) {
			m.hover = i
			break
		}
	}

	if msg.Action == tea.MouseActionRelease && m.hover >= 0 {
		m.selectRow(m.hover)
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	route := m.nav.Current()
	s := state.Build(m.source, route)

	keys := m.keys
	keys.screen = route.Screen
	helpView := m.help.View(keys)

	switch route.Screen {
	case nav.ScreenDetail:
		return views.RenderDetail(s, m.width, m.height, helpView)
	default:
		return views.RenderList(s, m.width, m.height, m.cursor, m.hover, m.animCursor, helpView)
	}
}

func Start(source catalog.Source, cfg config.Config, log *slog.Logger) error {
	zone.NewGlobal()

	m := InitialModel(source, cfg, log)

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Info("starting browser", "animals", len(source.Animals()))
	_, err := tea.NewProgram(&m, opts...).Run()
	return err
}
