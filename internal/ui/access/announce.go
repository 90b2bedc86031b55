package access

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/ui/uiconst"
)

// ClearDelay is how long an announcement stays visible before the
// live region empties itself.
const ClearDelay = uiconst.AnnounceClearDelayMS * time.Millisecond

var liveRegionID atomic.Int64

// announceClearMsg asks one announcer to clear a specific
// announcement. The owner id routes the message when several
// announcers coexist in a model tree; the sequence number guards
// against a stale timer wiping a newer message.
type announceClearMsg struct {
	owner int64
	seq   int
}

// Announcer is a live region for transient status text: Announce
// writes a message and schedules an automatic clear after a fixed
// delay. Later announcements supersede earlier ones; an earlier
// clear timer firing late is ignored.
type Announcer struct {
	text string
	id   int64
	seq  int
}

// Announce sets the live region text and returns the command that
// clears it after ClearDelay.
func (a *Announcer) Announce(text string) tea.Cmd {
	if a.id == 0 {
		a.id = liveRegionID.Add(1)
	}
	a.text = text
	a.seq++
	owner, seq := a.id, a.seq
	return tea.Tick(ClearDelay, func(time.Time) tea.Msg {
		return announceClearMsg{owner: owner, seq: seq}
	})
}

// Update consumes this announcer's clear messages. The return value
// reports whether the message belonged to this announcer; clears
// addressed to other announcers are left for them.
func (a *Announcer) Update(msg tea.Msg) bool {
	clear, ok := msg.(announceClearMsg)
	if !ok || clear.owner != a.id {
		return false
	}
	// Only clear if no newer announcement replaced this one.
	if clear.seq == a.seq {
		a.text = ""
	}
	return true
}

// Text returns the current live region content.
func (a *Announcer) Text() string { return a.text }

// View renders the live region as a status bar line. An empty region
// renders as an empty string.
func (a *Announcer) View() string {
	if a.text == "" {
		return ""
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color("#333")).
		Foreground(lipgloss.Color("#fff")).
		Padding(0, 1)
	return style.Render(a.text)
}
