package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadeworks/tui-breakout/internal/core"
	"github.com/arcadeworks/tui-breakout/internal/sim"
	"github.com/arcadeworks/tui-breakout/internal/storage"
)

// flashDuration is how many ticks the HUD impact marker stays visible after
// a collision event.
const flashDuration = 4

// Model is the Bubble Tea model hosting the simulation: it owns the tick
// loop, maps keys to input frames and renders snapshots. Pause and restart
// live here, not in the core - a paused host simply stops calling Step.
type Model struct {
	sim        *sim.Simulation
	screen     *core.Screen
	store      *storage.Store
	profile    string
	runtime    core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	viewport   Viewport

	paused     bool
	quitting   bool
	scoreSaved bool
	flashTicks int
}

// NewModel creates a new Bubble Tea model for the given simulation.
func NewModel(s *sim.Simulation, store *storage.Store, profile string, rc core.RuntimeConfig) Model {
	return Model{
		sim:        s,
		screen:     core.NewScreen(rc.ScreenW, rc.ScreenH),
		store:      store,
		profile:    profile,
		runtime:    rc,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		viewport:   ViewportFor(s.Config()),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveScreenshot writes the current screen to a timestamped text file.
func (m Model) saveScreenshot() {
	m.screen.Clear()
	DrawWorld(m.screen, m.sim.Snapshot(), m.viewport)

	dir := filepath.Join(os.Getenv("HOME"), ".breakout", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("breakout_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, the game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionPause) {
		m.paused = !m.paused
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.saveScore()
		if err := m.sim.Reset(); err == nil {
			m.paused = false
			m.scoreSaved = false
			m.flashTicks = 0
		}
		m.inputFrame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	if !m.paused {
		result := m.sim.Step(m.inputFrame)
		if len(result.Events) > 0 {
			m.flashTicks = flashDuration
		} else if m.flashTicks > 0 {
			m.flashTicks--
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// saveScore persists the session score once, best-effort.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.sim.Score() <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session ends regardless
	m.store.SaveScore(m.profile, m.sim.Score())
	m.scoreSaved = true
}

// View renders the current snapshot to a styled string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()

	snap := m.sim.Snapshot()
	DrawWorld(m.screen, snap, m.viewport)
	m.drawHUD(snap)

	return RenderScreen(m.screen)
}

// drawHUD draws the score line above the arena.
func (m Model) drawHUD(snap sim.Snapshot) {
	m.screen.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))
	m.screen.DrawTextCentered(0, fmt.Sprintf("Bricks: %d", snap.Bricks))

	status := ""
	switch {
	case m.paused:
		status = "PAUSED"
	case m.flashTicks > 0:
		status = "✦"
	}
	if status != "" {
		m.screen.DrawTextRight(0, status)
	}
}

// Run starts the Bubble Tea program hosting the simulation.
func Run(s *sim.Simulation, store *storage.Store, profile string, rc core.RuntimeConfig) error {
	model := NewModel(s, store, profile, rc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
