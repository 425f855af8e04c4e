package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the number of rows reserved below the board for key help.
const helpHeight = 1

// windowTitle is shown by terminals that support OSC window titles.
const windowTitle = "Snake Game"

// Model is the Bubble Tea model running one snake session.
type Model struct {
	loop      *snake.Loop
	renderer  *snake.Renderer
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	frameRate int
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a model for the given loop and renderer.
func NewModel(loop *snake.Loop, renderer *snake.Renderer, cfg core.RuntimeConfig, logger *log.Logger) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		loop:      loop,
		renderer:  renderer,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		keys:      DefaultKeyMap(),
		help:      h,
		frameRate: cfg.FrameRate,
		logger:    logger,
	}
}

// Init sets the window title and starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(windowTitle), frameCmd(m.frameRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Keys only become intents here; they are applied at the next frame.
		if a := m.keys.Action(msg); a != core.ActionNone {
			m.loop.Push(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleFrame runs one loop iteration and schedules the next frame.
// Stepping is held while the board does not fit on screen.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	m.loop.Hold(!snake.Fits(m.screen, m.loop.Game().Board()))
	res := m.loop.Frame()
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, frameCmd(m.frameRate)
}

// Quitting reports whether a quit intent has ended the session.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.loop.Game().Snapshot())

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(loop *snake.Loop, renderer *snake.Renderer, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(loop, renderer, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
