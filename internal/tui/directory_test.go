package tui

import (
	"errors"
	"reflect"
	"testing"

	"userdir-cli/internal/api"
	"userdir-cli/internal/model"
)

func TestApplyUpdate_PatchesByIdentityPreservingOrder(t *testing.T) {
	t.Parallel()

	records := []model.UserRecord{
		{ID: "1", Name: "Ann", Age: 30, Email: "a@x.com"},
		{ID: "2", Name: "Bo", Age: 25, Email: "b@x.com"},
	}
	got := applyUpdate(records, model.UserRecord{ID: "1", Name: "Ann", Age: 31, Email: "a@x.com"})

	if got[0].Age != 31 || got[0].ID != "1" {
		t.Fatalf("expected Ann patched in place; got %+v", got[0])
	}
	if got[1].ID != "2" {
		t.Fatalf("expected Bo untouched in position 1; got %+v", got[1])
	}
}

func TestApplyUpdate_Idempotent(t *testing.T) {
	t.Parallel()

	records := []model.UserRecord{
		{ID: "1", Name: "Ann", Age: 30, Email: "a@x.com"},
		{ID: "2", Name: "Bo", Age: 25, Email: "b@x.com"},
	}
	updated := model.UserRecord{ID: "1", Name: "Ann", Age: 31, Email: "a@x.com"}

	once := applyUpdate(append([]model.UserRecord{}, records...), updated)
	twice := applyUpdate(applyUpdate(append([]model.UserRecord{}, records...), updated), updated)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("applyUpdate is not idempotent: once=%+v twice=%+v", once, twice)
	}
}

func TestApplyUpdate_NoMatchIsNoOp(t *testing.T) {
	t.Parallel()

	records := []model.UserRecord{{ID: "1", Name: "Ann", Age: 30, Email: "a@x.com"}}
	got := applyUpdate(records, model.UserRecord{ID: "404", Name: "Ghost", Age: 1, Email: "g@x.com"})

	if len(got) != 1 || got[0].ID != "1" || got[0].Age != 30 {
		t.Fatalf("expected unchanged records; got %+v", got)
	}
}

func TestApplyUpdate_FallsBackToEmailIdentity(t *testing.T) {
	t.Parallel()

	records := []model.UserRecord{{Name: "Ann", Age: 30, Email: "a@x.com"}}
	got := applyUpdate(records, model.UserRecord{Name: "Ann", Age: 31, Email: "a@x.com"})

	if got[0].Age != 31 {
		t.Fatalf("expected email-keyed patch; got %+v", got[0])
	}
}

func TestUpdate_UsersLoaded_ReplacesWholesale(t *testing.T) {
	m := newAppModel(nil)
	m.session = session{authenticated: true}
	(&m).setRecords([]model.UserRecord{{ID: "old", Name: "Old", Age: 99, Email: "old@x.com"}})
	m.fetchSeq = 1
	m.fetching = true

	mm, _ := m.Update(usersLoadedMsg{seq: 1, users: []model.UserRecord{
		{ID: "1", Name: "Ann", Age: 30, Email: "a@x.com"},
	}})
	m = mm.(appModel)

	if m.fetching {
		t.Fatalf("expected fetching cleared")
	}
	if len(m.records) != 1 || m.records[0].ID != "1" {
		t.Fatalf("expected wholesale replacement; got %+v", m.records)
	}
	if len(m.usersList.Items()) != 1 {
		t.Fatalf("expected 1 list item; got %d", len(m.usersList.Items()))
	}
}

func TestUpdate_UsersLoaded_FailureResetsToEmpty(t *testing.T) {
	m := newAppModel(nil)
	m.session = session{authenticated: true}
	(&m).setRecords([]model.UserRecord{{ID: "1", Name: "Ann", Age: 30, Email: "a@x.com"}})
	m.fetchSeq = 1
	m.fetching = true

	mm, _ := m.Update(usersLoadedMsg{seq: 1, err: &api.FetchError{Err: errors.New("connection refused")}})
	m = mm.(appModel)

	// Empty, never partial or stale.
	if len(m.records) != 0 {
		t.Fatalf("expected empty records after failed refresh; got %+v", m.records)
	}
	if !m.notif.visible || !m.notif.isError {
		t.Fatalf("expected error notification; got %+v", m.notif)
	}
}

func TestUpdate_UsersLoaded_StaleSeqIgnored(t *testing.T) {
	m := newAppModel(nil)
	m.session = session{authenticated: true}
	(&m).setRecords([]model.UserRecord{{ID: "1", Name: "Ann", Age: 30, Email: "a@x.com"}})
	m.fetchSeq = 2
	m.fetching = true

	// Result of an older fetch arrives after a newer one was issued.
	mm, _ := m.Update(usersLoadedMsg{seq: 1, users: nil})
	m = mm.(appModel)

	if len(m.records) != 1 {
		t.Fatalf("stale fetch result was applied; got %+v", m.records)
	}
	if !m.fetching {
		t.Fatalf("stale fetch result cleared the in-flight flag")
	}
}
