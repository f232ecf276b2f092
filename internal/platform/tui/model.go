package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gatefall/internal/bot"
	"github.com/vovakirdan/gatefall/internal/config"
	"github.com/vovakirdan/gatefall/internal/core"
	"github.com/vovakirdan/gatefall/internal/game"
)

// Options configure one terminal game session.
type Options struct {
	Config config.Config
	Seed   int64
	// Width and Height are the initial terminal size in cells.
	Width, Height int
	// Autopilot lets the bot play; keys still pause, restart and quit.
	Autopilot bool
	// ScreenshotDir defaults to ~/.gatefall/screenshots.
	ScreenshotDir string
	Logger        *log.Logger
	// Renderer decides the color profile; nil uses the local terminal's.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	loop     *game.Loop
	draw     *core.DrawList
	input    *core.EventQueue
	screen   *core.Screen
	canvas   *core.Canvas
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	termW, termH  int
	tickRate      int
	screenshotDir string
	status        string
	quitting      bool
}

// NewModel creates a model with a fresh game loop.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cfg := opts.Config
	draw := core.NewDrawList()
	queue := core.NewEventQueue()

	var loop *game.Loop
	var input core.InputSource = queue
	if opts.Autopilot {
		pilot := bot.NewPilot(func() game.Snapshot { return loop.Snapshot() }, queue)
		pilot.AutoRestart = true
		input = pilot
	}

	loop, err := game.NewLoop(cfg, opts.Seed, game.Deps{
		Surface: draw,
		Input:   input,
		// Bubble Tea schedules ticks, so the pacer only measures.
		Pacer:  core.NewMeter(cfg.Loop.TargetFPS),
		Logger: opts.Logger,
	})
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		loop:          loop,
		draw:          draw,
		input:         queue,
		screen:        core.NewScreen(1, 1),
		renderer:      NewRenderer(opts.Renderer),
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        opts.Logger,
		termW:         opts.Width,
		termH:         opts.Height,
		tickRate:      cfg.Loop.TargetFPS,
		screenshotDir: opts.ScreenshotDir,
	}
	m.canvas = core.NewCanvas(m.screen, float64(cfg.Screen.Width), float64(cfg.Screen.Height))
	m.fit()
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game events; the loop consumes them on its next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fit()
		return m, nil
	}

	if ev, ok := m.keys.MapKey(msg); ok {
		m.input.Push(ev)
	}
	return m, nil
}

// handleResize rescales the canvas. The game keeps running; the world size
// never changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW, m.termH = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.fit()
	return m, nil
}

// fit sizes the cell buffer to the terminal minus the footer.
func (m Model) fit() {
	m.screen.Resize(core.Max(m.termW, 1), core.Max(m.termH-m.footerHeight(), 1))
}

// handleTick advances the game by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.loop.Tick()
	if res.State == game.StateQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

func (m Model) footerHeight() int {
	if m.help.ShowAll {
		return 3
	}
	return 1
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.paint()

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".gatefall", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("gatefall_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// paint replays the last presented frame onto the cell buffer.
func (m Model) paint() {
	m.screen.Clear()
	m.draw.Replay(m.canvas)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.paint()
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	return m.renderer.Render(m.screen) + "\n" + footer
}

// Loop exposes the running game, mainly for tests.
func (m Model) Loop() *game.Loop {
	return m.loop
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
