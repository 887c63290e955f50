package tui

import (
	"testing"

	"userdir-cli/internal/model"
)

func TestCurrentView_UnauthenticatedAlwaysLogin(t *testing.T) {
	m := newAppModel(nil)

	u := model.UserRecord{ID: "1", Name: "Ann", Age: 30, Email: "a@x.com"}
	m.editTarget = &u
	(&m).setRecords([]model.UserRecord{u})

	if got := m.currentView(); got != viewLogin {
		t.Fatalf("expected login view while unauthenticated; got %v", got)
	}
}

func TestCurrentView_EditTargetSuppressesDirectory(t *testing.T) {
	m := newAppModel(nil)
	m.session = session{principal: model.UserRecord{ID: "1", Name: "Ann"}, authenticated: true}

	u := model.UserRecord{ID: "1", Name: "Ann", Age: 30, Email: "a@x.com"}
	m.editTarget = &u

	// Edit wins no matter what the directory holds.
	for _, records := range [][]model.UserRecord{nil, {u}, {u, {ID: "2", Name: "Bo", Age: 25, Email: "b@x.com"}}} {
		(&m).setRecords(records)
		if got := m.currentView(); got != viewEdit {
			t.Fatalf("expected edit view with %d records; got %v", len(records), got)
		}
	}
}

func TestCurrentView_AuthenticatedNoTargetIsDirectory(t *testing.T) {
	m := newAppModel(nil)
	m.session = session{principal: model.UserRecord{ID: "1", Name: "Ann"}, authenticated: true}

	if got := m.currentView(); got != viewDirectory {
		t.Fatalf("expected directory view; got %v", got)
	}
}
