package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	notifyShowFor    = 3 * time.Second
	notifyErrShowFor = 5 * time.Second
)

type notifyExpireMsg struct{ seq int }

// notification is the single transient message slot. seq is the
// cancellation token: every show arms a fresh timer carrying the seq it was
// armed with, and expiry is ignored unless the seq still matches. A stale
// timer can therefore never clear a newer message.
type notification struct {
	text    string
	visible bool
	isError bool
	seq     int
}

// showNotification replaces any visible notification and arms its expiry.
// Error-severity notifications stay up longer.
func (m *appModel) showNotification(text string, isError bool) tea.Cmd {
	m.notif.seq++
	m.notif.text = text
	m.notif.visible = true
	m.notif.isError = isError

	seq := m.notif.seq
	d := notifyShowFor
	if isError {
		d = notifyErrShowFor
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return notifyExpireMsg{seq: seq} })
}

// expireNotification hides the message but keeps its text (a fade-out
// could still reference it).
func (m *appModel) expireNotification(seq int) {
	if seq != m.notif.seq {
		return
	}
	m.notif.visible = false
}
