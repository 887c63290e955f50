package tui

import (
	"errors"
	"fmt"
	"log"

	"userdir-cli/internal/api"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loginResultMsg:
		m.loggingIn = false
		if msg.err != nil {
			m.login.errText = loginErrorText(msg.err)
			return m, nil
		}
		m.login.errText = ""
		m.session = session{principal: msg.principal, authenticated: true}
		// Session just transitioned to authenticated: one of the two
		// conditions that issue a directory fetch.
		return m, m.startDirectoryRefresh()

	case usersLoadedMsg:
		if msg.seq != m.fetchSeq {
			// Stale fetch result; a newer refresh is already in flight.
			return m, nil
		}
		m.fetching = false
		if msg.err != nil {
			// Deliberate policy: reset to empty rather than keep a stale
			// directory. Empty-and-visibly-wrong beats silently-stale.
			log.Printf("directory refresh failed: %v", msg.err)
			m.setRecords(nil)
			return m, m.showNotification("Could not load users: "+msg.err.Error(), true)
		}
		m.setRecords(msg.users)
		return m, nil

	case createResultMsg:
		m.saving = false
		if msg.err != nil {
			// No cache mutation, no notification; input stays for retry.
			m.createForm.errText = msg.err.Error()
			return m, nil
		}
		m.createForm = newUserForm()
		if m.dirFocus != focusCreateForm {
			m.createForm.blurAll()
		}
		// Creation never patches locally: bump the counter and refetch, so
		// the directory always reflects the server-assigned id.
		m.refreshCounter++
		return m, tea.Batch(
			m.startDirectoryRefresh(),
			m.showNotification(fmt.Sprintf("User %s has been created successfully!", msg.created.Name), false),
		)

	case updateResultMsg:
		m.saving = false
		if msg.err != nil {
			// Stay on the edit view so the user's input is not lost.
			if m.editTarget != nil {
				m.editForm.errText = msg.err.Error()
				return m, nil
			}
			// The edit was dismissed while the write was in flight; the
			// failure still needs a visible signal.
			return m, m.showNotification(msg.err.Error(), true)
		}
		// The server mutation happened regardless of where the user is now:
		// patch the cache by identity. Never reopen the edit view for a
		// stale response, and only close/notify when the result is for the
		// record still being edited.
		m.records = applyUpdate(m.records, msg.updated)
		m.syncListItems()
		if m.editTarget != nil && m.editTarget.SameIdentity(msg.updated) {
			m.editTarget = nil
			m.dirFocus = focusList
			return m, m.showNotification(fmt.Sprintf("User %s has been updated successfully!", msg.updated.Name), false)
		}
		return m, nil

	case notifyExpireMsg:
		m.expireNotification(msg.seq)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		// Appearance toggle; display-only, never touches session or
		// directory state.
		*m.th = newTheme(!m.th.dark)
		return m, nil
	}

	switch m.currentView() {
	case viewLogin:
		return m.updateLoginKeys(msg)
	case viewEdit:
		return m.updateEditKeys(msg)
	default:
		return m.updateDirectoryKeys(msg)
	}
}

func (m appModel) updateLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.login.focusField(m.login.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.login.focusField(m.login.focus - 1)
		return m, nil
	case "enter":
		if m.login.focus == loginFieldEmail {
			m.login.focusField(loginFieldPassword)
			return m, nil
		}
		if m.loggingIn {
			return m, nil
		}
		if m.login.email() == "" || m.login.password() == "" {
			m.login.errText = "email and password are required"
			return m, nil
		}
		m.login.errText = ""
		return m, m.startLogin(m.login.email(), m.login.password())
	}

	cmd := m.login.update(msg)
	return m, cmd
}

func (m appModel) updateEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel: back to Idle, directory reappears, nothing saved.
		m.editTarget = nil
		m.editForm = userForm{}
		m.dirFocus = focusList
		return m, nil
	case "tab", "down":
		m.editForm.focusField(m.editForm.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.editForm.focusField(m.editForm.focus - 1)
		return m, nil
	case "ctrl+s":
		return m.submitEdit()
	case "enter":
		if m.editForm.focus < fieldCount-1 {
			m.editForm.focusField(m.editForm.focus + 1)
			return m, nil
		}
		return m.submitEdit()
	}

	cmd := m.editForm.update(msg)
	return m, cmd
}

func (m appModel) submitEdit() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	draft, err := m.editForm.record()
	if err != nil {
		m.editForm.errText = err.Error()
		return m, nil
	}
	if m.editForm.id == "" {
		// Caller/state bug, not a transient fault: the selected record was
		// never persisted.
		m.editForm.errText = (&api.MissingIDError{Email: draft.Email}).Error()
		return m, nil
	}
	m.editForm.errText = ""
	return m, m.startUpdate(m.editForm.id, draft)
}

func (m appModel) submitCreate() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	draft, err := m.createForm.record()
	if err != nil {
		m.createForm.errText = err.Error()
		return m, nil
	}
	m.createForm.errText = ""
	return m, m.startCreate(draft)
}

func (m appModel) updateDirectoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dirFocus == focusCreateForm {
		switch msg.String() {
		case "esc":
			m.dirFocus = focusList
			m.createForm.blurAll()
			return m, nil
		case "tab", "down":
			m.createForm.focusField(m.createForm.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.createForm.focusField(m.createForm.focus - 1)
			return m, nil
		case "ctrl+s":
			return m.submitCreate()
		case "enter":
			if m.createForm.focus < fieldCount-1 {
				m.createForm.focusField(m.createForm.focus + 1)
				return m, nil
			}
			return m.submitCreate()
		}
		cmd := m.createForm.update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n", "tab":
		m.dirFocus = focusCreateForm
		m.createForm.focusField(m.createForm.focus)
		return m, nil
	case "enter":
		if it, ok := m.usersList.SelectedItem().(userItem); ok {
			// Select-for-edit: Idle -> Editing.
			u := it.user
			m.editTarget = &u
			m.editForm = newEditForm(u)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.usersList, cmd = m.usersList.Update(msg)
	return m, cmd
}

func loginErrorText(err error) string {
	var authErr *api.AuthError
	if errors.As(err, &authErr) && authErr.Status != 0 {
		return "Login failed. Please check your credentials."
	}
	return "Login failed: " + err.Error()
}
