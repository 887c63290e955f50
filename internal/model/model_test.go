package model

import (
	"errors"
	"testing"
)

func TestIdentity_PrefersServerID(t *testing.T) {
	t.Parallel()

	u := UserRecord{ID: "1", Email: "a@x.com"}
	if got := u.Identity(); got != "1" {
		t.Fatalf("expected identity %q; got %q", "1", got)
	}
}

func TestIdentity_FallsBackToEmail(t *testing.T) {
	t.Parallel()

	u := UserRecord{Email: "a@x.com"}
	if got := u.Identity(); got != "a@x.com" {
		t.Fatalf("expected identity %q; got %q", "a@x.com", got)
	}
}

func TestSameIdentity_EmptyNeverMatches(t *testing.T) {
	t.Parallel()

	if (UserRecord{}).SameIdentity(UserRecord{}) {
		t.Fatalf("two empty records must not share an identity")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		user      UserRecord
		wantField string
	}{
		{name: "valid", user: UserRecord{Name: "Ann", Age: 30, Email: "a@x.com"}},
		{name: "missing name", user: UserRecord{Age: 30, Email: "a@x.com"}, wantField: "name"},
		{name: "zero age", user: UserRecord{Name: "Ann", Email: "a@x.com"}, wantField: "age"},
		{name: "negative age", user: UserRecord{Name: "Ann", Age: -1, Email: "a@x.com"}, wantField: "age"},
		{name: "missing email", user: UserRecord{Name: "Ann", Age: 30}, wantField: "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.user.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid; got %v", err)
				}
				return
			}
			var vErr ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError; got %T (%v)", err, err)
			}
			if vErr.Field != tc.wantField {
				t.Fatalf("expected field %q; got %q", tc.wantField, vErr.Field)
			}
		})
	}
}
