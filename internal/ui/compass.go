// Package ui provides the compass-style selection view: eight compass
// points around a fixed listener, each key triggering one spatialized sound.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	soundfield "github.com/shaban/soundfield"
)

// Player is the playback surface the compass view drives.
type Player interface {
	PlayDirection(name string, dir soundfield.Direction, distance float64) error
	StopAll()
	IsPlaying() bool
}

// tickMsg refreshes the aggregate playing flag shown in the view.
type tickMsg time.Time

const tickInterval = 100 * time.Millisecond

var keyToDirection = map[string]soundfield.Direction{
	"1": soundfield.North,
	"2": soundfield.NorthEast,
	"3": soundfield.East,
	"4": soundfield.SouthEast,
	"5": soundfield.South,
	"6": soundfield.SouthWest,
	"7": soundfield.West,
	"8": soundfield.NorthWest,
	"n": soundfield.North,
	"e": soundfield.East,
	"s": soundfield.South,
	"w": soundfield.West,
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	roseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	playingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

// Model holds the compass view state.
type Model struct {
	player   Player
	sound    string
	distance float64

	width   int
	height  int
	playing bool
	lastDir soundfield.Direction
	hasLast bool
	lastErr string
}

// New creates a compass view that plays the named sound at the given
// distance through player.
func New(player Player, sound string, distance float64) Model {
	return Model{player: player, sound: sound, distance: distance}
}

// Init starts the playing-flag refresh ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.playing = m.player.IsPlaying()
		return m, tick()

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			m.player.StopAll()
			return m, tea.Quit

		case "x":
			m.player.StopAll()
			m.playing = m.player.IsPlaying()
			m.hasLast = false

		default:
			if dir, ok := keyToDirection[key]; ok {
				if err := m.player.PlayDirection(m.sound, dir, m.distance); err != nil {
					m.lastErr = err.Error()
				} else {
					m.lastErr = ""
					m.lastDir = dir
					m.hasLast = true
				}
				m.playing = m.player.IsPlaying()
			}
		}
	}
	return m, nil
}

// point renders one compass label, highlighted when it was triggered last.
func (m Model) point(d soundfield.Direction) string {
	label := d.String()
	if m.hasLast && m.lastDir == d && m.playing {
		return activeStyle.Render(label)
	}
	return roseStyle.Render(label)
}

// View renders the compass rose with the listener at the center.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("soundfield"))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("      %s      ", m.point(soundfield.North)),
		fmt.Sprintf("  %s        %s  ", m.point(soundfield.NorthWest), m.point(soundfield.NorthEast)),
		fmt.Sprintf("%s     %s      %s", m.point(soundfield.West), roseStyle.Render("•"), m.point(soundfield.East)),
		fmt.Sprintf("  %s        %s  ", m.point(soundfield.SouthWest), m.point(soundfield.SouthEast)),
		fmt.Sprintf("      %s      ", m.point(soundfield.South)),
	}
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n\n")

	if m.playing {
		b.WriteString(playingStyle.Render("▶ playing"))
	} else {
		b.WriteString(idleStyle.Render("· idle"))
	}
	b.WriteString(fmt.Sprintf("  sound: %s  distance: %.1f", m.sound, m.distance))

	if m.lastErr != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.lastErr))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("1-8 compass points · n/e/s/w cardinals · x stop all · q quit"))

	if m.width > 0 && m.height > 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(b.String())
	}
	return b.String()
}
