package tui

import (
	"context"
	"fmt"

	"userdir-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type userItem struct {
	user model.UserRecord
}

func (it userItem) Title() string {
	return fmt.Sprintf("%s  Age: %d  %s", it.user.Name, it.user.Age, it.user.Email)
}

func (it userItem) FilterValue() string { return it.user.Name + " " + it.user.Email }

func newUsersList(th *theme) list.Model {
	l := list.New([]list.Item{}, newUserRowDelegate(th), 0, 0)
	l.Title = "Users"
	// We render our own header/footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("user", "users")
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	return l
}

type usersLoadedMsg struct {
	seq   int
	users []model.UserRecord
	err   error
}

// startDirectoryRefresh issues a wholesale directory fetch. The seq guards
// against out-of-order arrivals: only the result of the latest fetch is
// applied, so a slow earlier response can never overwrite a newer one.
func (m *appModel) startDirectoryRefresh() tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	m.fetching = true
	client := m.client

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		users, err := client.ListUsers(ctx)
		return usersLoadedMsg{seq: seq, users: users, err: err}
	})
}

// setRecords replaces the cached directory wholesale and rebuilds the list,
// keeping the current selection when the same record is still present.
func (m *appModel) setRecords(users []model.UserRecord) {
	m.records = users
	m.syncListItems()
}

func (m *appModel) syncListItems() {
	curID := ""
	if it, ok := m.usersList.SelectedItem().(userItem); ok {
		curID = it.user.Identity()
	}
	items := make([]list.Item, 0, len(m.records))
	for _, u := range m.records {
		items = append(items, userItem{user: u})
	}
	m.usersList.SetItems(items)
	if curID != "" {
		for i, it := range m.usersList.Items() {
			if u, ok := it.(userItem); ok && u.user.Identity() == curID {
				m.usersList.Select(i)
				break
			}
		}
	}
}

// applyUpdate patches the record whose identity matches updated, in place
// and order-preserving. No match is a no-op: the record may have been
// removed server-side since editing began. Applying the same result twice
// yields the same sequence.
func applyUpdate(records []model.UserRecord, updated model.UserRecord) []model.UserRecord {
	for i, u := range records {
		if u.SameIdentity(updated) {
			records[i] = updated
			break
		}
	}
	return records
}
