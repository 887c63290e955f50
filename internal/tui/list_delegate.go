package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

// userRowDelegate renders one directory entry per line:
// "Ann  Age: 30  a@x.com". Styles come from the active theme so the
// runtime appearance toggle applies to the list too.
type userRowDelegate struct {
	th *theme
}

func newUserRowDelegate(th *theme) userRowDelegate {
	return userRowDelegate{th: th}
}

func (d userRowDelegate) Height() int                             { return 1 }
func (d userRowDelegate) Spacing() int                            { return 0 }
func (d userRowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d userRowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		return
	}

	style := d.th.rowNormal
	if index == m.Index() {
		style = d.th.rowSelected
	}

	txt := ""
	if it, ok := item.(userItem); ok {
		txt = it.Title()
	} else {
		txt = fmt.Sprint(item)
	}

	line := " " + txt
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}
