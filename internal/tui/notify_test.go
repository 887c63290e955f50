package tui

import "testing"

func TestShowNotification_ReplacementCancelsOlderTimer(t *testing.T) {
	m := newAppModel(nil)

	_ = (&m).showNotification("first", false)
	firstSeq := m.notif.seq
	_ = (&m).showNotification("second", false)

	// The first timer fires after its message was replaced: it must be a
	// no-op, never clearing the newer message.
	mm, _ := m.Update(notifyExpireMsg{seq: firstSeq})
	m = mm.(appModel)

	if !m.notif.visible {
		t.Fatalf("stale expiry cleared a newer notification")
	}
	if m.notif.text != "second" {
		t.Fatalf("expected text %q; got %q", "second", m.notif.text)
	}
}

func TestNotification_ExpiryHidesButKeepsText(t *testing.T) {
	m := newAppModel(nil)

	_ = (&m).showNotification("hello", false)
	mm, _ := m.Update(notifyExpireMsg{seq: m.notif.seq})
	m = mm.(appModel)

	if m.notif.visible {
		t.Fatalf("expected notification hidden after expiry")
	}
	if m.notif.text != "hello" {
		t.Fatalf("expiry must not clear the text; got %q", m.notif.text)
	}
}

func TestShowNotification_RapidSequenceKeepsOnlyLast(t *testing.T) {
	m := newAppModel(nil)

	var seqs []int
	for _, txt := range []string{"one", "two", "three"} {
		_ = (&m).showNotification(txt, false)
		seqs = append(seqs, m.notif.seq)
	}

	// All earlier timers fire; only the last one may take effect.
	for _, seq := range seqs[:len(seqs)-1] {
		mm, _ := m.Update(notifyExpireMsg{seq: seq})
		m = mm.(appModel)
		if !m.notif.visible || m.notif.text != "three" {
			t.Fatalf("earlier timer affected newer message; visible=%v text=%q", m.notif.visible, m.notif.text)
		}
	}

	mm, _ := m.Update(notifyExpireMsg{seq: seqs[len(seqs)-1]})
	m = mm.(appModel)
	if m.notif.visible {
		t.Fatalf("expected notification hidden after its own timer fired")
	}
}

func TestShowNotification_ErrorSeverityUsesLongerWindow(t *testing.T) {
	m := newAppModel(nil)

	_ = (&m).showNotification("boom", true)
	if !m.notif.isError {
		t.Fatalf("expected error severity")
	}
	if notifyErrShowFor <= notifyShowFor {
		t.Fatalf("error window must exceed the success window")
	}
}
