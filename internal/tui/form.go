package tui

import (
	"context"
	"strconv"
	"strings"

	"userdir-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldAge
	fieldEmail
	fieldPassword
	fieldPhone
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Age", "Email", "Password", "Phone (optional)"}

// userForm backs both the create form (empty, on the directory view) and
// the edit form (prefilled, full screen). id is the server id when editing;
// the create form never has one.
type userForm struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	errText string
	id      string
}

func newUserForm() userForm {
	f := userForm{}
	for i := range f.inputs {
		in := textinput.New()
		in.CharLimit = 120
		in.Width = 32
		f.inputs[i] = in
	}
	f.inputs[fieldName].Placeholder = "name"
	f.inputs[fieldAge].Placeholder = "age"
	f.inputs[fieldAge].CharLimit = 3
	f.inputs[fieldAge].Width = 6
	f.inputs[fieldEmail].Placeholder = "email"
	f.inputs[fieldPassword].Placeholder = "password"
	f.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	f.inputs[fieldPassword].EchoCharacter = '•'
	f.inputs[fieldPhone].Placeholder = "phone"
	f.inputs[fieldPhone].CharLimit = 15
	f.inputs[fieldPhone].Width = 16
	f.focusField(fieldName)
	return f
}

// newEditForm prefills from the selected record. The password is write-only
// and never redisplayed: the field starts empty and an empty submit leaves
// it unchanged server-side.
func newEditForm(u model.UserRecord) userForm {
	f := newUserForm()
	f.id = u.ID
	f.inputs[fieldName].SetValue(u.Name)
	if u.Age > 0 {
		f.inputs[fieldAge].SetValue(strconv.Itoa(u.Age))
	}
	f.inputs[fieldEmail].SetValue(u.Email)
	f.inputs[fieldPassword].Placeholder = "enter new password or leave unchanged"
	f.inputs[fieldPassword].Width = 36
	if u.Phone > 0 {
		f.inputs[fieldPhone].SetValue(strconv.Itoa(u.Phone))
	}
	return f
}

func (f *userForm) focusField(i int) {
	if i < 0 {
		i = fieldCount - 1
	}
	if i >= fieldCount {
		i = 0
	}
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *userForm) blurAll() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

func (f *userForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// record parses the form into a UserRecord and runs local validation.
// Fail-fast: an invalid draft never reaches the network.
func (f userForm) record() (model.UserRecord, error) {
	u := model.UserRecord{
		ID:       f.id,
		Name:     strings.TrimSpace(f.inputs[fieldName].Value()),
		Email:    strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Password: f.inputs[fieldPassword].Value(),
	}

	if v := strings.TrimSpace(f.inputs[fieldAge].Value()); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return u, model.ValidationError{Field: "age", Reason: "must be a number"}
		}
		u.Age = age
	}
	if v := strings.TrimSpace(f.inputs[fieldPhone].Value()); v != "" {
		phone, err := strconv.Atoi(v)
		if err != nil {
			return u, model.ValidationError{Field: "phone", Reason: "must be a number"}
		}
		u.Phone = phone
	}

	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

type createResultMsg struct {
	created model.UserRecord
	err     error
}

type updateResultMsg struct {
	updated model.UserRecord
	err     error
}

func (m *appModel) startCreate(draft model.UserRecord) tea.Cmd {
	m.saving = true
	client := m.client

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		created, err := client.CreateUser(ctx, draft)
		return createResultMsg{created: created, err: err}
	})
}

func (m *appModel) startUpdate(id string, draft model.UserRecord) tea.Cmd {
	m.saving = true
	client := m.client

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		updated, err := client.UpdateUser(ctx, id, draft)
		return updateResultMsg{updated: updated, err: err}
	})
}
