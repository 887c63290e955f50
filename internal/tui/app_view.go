package tui

import (
	"fmt"
	"strings"
)

func (m appModel) View() string {
	var b strings.Builder

	b.WriteString(m.th.header.Render("User Directory"))
	if m.session.authenticated {
		b.WriteString("  ")
		b.WriteString(m.th.faint.Render(fmt.Sprintf("Welcome, %s!", m.session.principal.Name)))
	}
	b.WriteString("\n")

	// Notification slot. Rendered (blank) even when hidden so the layout
	// below it does not jump when a message appears.
	if m.notif.visible {
		st := m.th.notifOK
		if m.notif.isError {
			st = m.th.notifErr
		}
		b.WriteString(st.Render(m.notif.text))
	}
	b.WriteString("\n\n")

	switch m.currentView() {
	case viewLogin:
		b.WriteString(m.viewLogin())
	case viewEdit:
		b.WriteString(m.viewEdit())
	default:
		b.WriteString(m.viewDirectory())
	}

	b.WriteString("\n\n")
	b.WriteString(m.th.faint.Render(m.footerHints()))
	return b.String()
}

func (m appModel) footerHints() string {
	switch m.currentView() {
	case viewLogin:
		return "enter: log in  tab: next field  ctrl+t: theme  ctrl+c: quit"
	case viewEdit:
		return "enter/ctrl+s: save  tab: next field  esc: cancel  ctrl+t: theme  ctrl+c: quit"
	default:
		if m.dirFocus == focusCreateForm {
			return "enter/ctrl+s: create  tab: next field  esc: back to list  ctrl+t: theme  ctrl+c: quit"
		}
		return "enter: edit user  n/tab: new user  ctrl+t: theme  q: quit"
	}
}

func (m appModel) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.th.header.Render("Log in"))
	b.WriteString("\n\n")
	b.WriteString(m.th.label.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.login.inputs[loginFieldEmail].View())
	b.WriteString("\n")
	b.WriteString(m.th.label.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.login.inputs[loginFieldPassword].View())
	b.WriteString("\n")
	if m.loggingIn {
		b.WriteString("\n" + m.spinner.View() + m.th.faint.Render("logging in…"))
	}
	if m.login.errText != "" {
		b.WriteString("\n" + m.th.errorText.Render(m.login.errText))
	}
	return b.String()
}

func (m appModel) viewEdit() string {
	var b strings.Builder
	b.WriteString(m.th.header.Render("Edit User"))
	b.WriteString("\n\n")
	b.WriteString(renderFormFields(m.th, m.editForm))
	if m.saving {
		b.WriteString("\n" + m.spinner.View() + m.th.faint.Render("saving…"))
	}
	if m.editForm.errText != "" {
		b.WriteString("\n" + m.th.errorText.Render(m.editForm.errText))
	}
	return b.String()
}

func (m appModel) viewDirectory() string {
	var b strings.Builder
	if m.fetching {
		b.WriteString(m.spinner.View() + m.th.faint.Render("loading users…") + "\n")
	}
	b.WriteString(m.usersList.View())
	b.WriteString("\n")
	b.WriteString(m.th.faint.Render(fmt.Sprintf("New users: %d", m.refreshCounter)))
	b.WriteString("\n\n")
	b.WriteString(m.th.header.Render("Create User"))
	b.WriteString("\n")
	b.WriteString(renderFormFields(m.th, m.createForm))
	if m.saving {
		b.WriteString("\n" + m.spinner.View() + m.th.faint.Render("saving…"))
	}
	if m.createForm.errText != "" {
		b.WriteString("\n" + m.th.errorText.Render(m.createForm.errText))
	}
	return b.String()
}

func renderFormFields(th *theme, f userForm) string {
	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		b.WriteString(th.label.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
