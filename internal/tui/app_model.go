package tui

import (
	"time"

	"userdir-cli/internal/api"
	"userdir-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 10 * time.Second

type view int

const (
	viewLogin view = iota
	viewEdit
	viewDirectory
)

// directoryFocus selects which half of the directory view receives keys:
// the user list or the create form beneath it.
type directoryFocus int

const (
	focusList directoryFocus = iota
	focusCreateForm
)

type appModel struct {
	client *api.Client
	th     *theme

	width  int
	height int

	session session

	// records is the in-memory directory; it is only ever replaced
	// wholesale by a refresh or patched by identity on update success.
	records []model.UserRecord
	// refreshCounter counts accepted creates. Its change is, together with
	// the login transition, the only thing that triggers a fetch.
	refreshCounter int
	fetchSeq       int
	fetching       bool
	usersList      list.Model

	// editTarget non-nil means the Edit view is shown, whatever else
	// changes underneath it. Only cancel or update success clears it.
	editTarget *model.UserRecord
	editForm   userForm

	createForm userForm
	dirFocus   directoryFocus

	login     loginForm
	loggingIn bool

	saving  bool
	spinner spinner.Model

	notif notification
}

func newAppModel(client *api.Client) appModel {
	th := newTheme(initialDarkBackground())
	m := appModel{
		client: client,
		th:     &th,
	}
	m.usersList = newUsersList(m.th)
	m.login = newLoginForm()
	m.createForm = newUserForm()
	m.createForm.blurAll()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd { return nil }

// currentView is the view selector: a pure precedence over the model
// snapshot. Unauthenticated always shows Login; a live edit target always
// suppresses the directory; everything else is the directory.
func (m appModel) currentView() view {
	if !m.session.authenticated {
		return viewLogin
	}
	if m.editTarget != nil {
		return viewEdit
	}
	return viewDirectory
}

func (m *appModel) resizeLists() {
	// Leave room for header, notification line, counter, create form, footer.
	h := m.height - 16
	if h < 6 {
		h = 6
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.usersList.SetSize(w, h)
}

func (m *appModel) busy() bool {
	return m.fetching || m.loggingIn || m.saving
}
