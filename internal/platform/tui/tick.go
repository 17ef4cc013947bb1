// Package tui provides the Bubble Tea integration for the simulation: the
// fixed-rate tick loop, key-to-intent mapping and terminal rendering. It is
// the "external runtime" collaborator the core is written against.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// configured rate. The rate only schedules the host loop; physics always
// advances by the fixed timestep regardless of real elapsed time.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
