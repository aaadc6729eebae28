package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	// 23:30 in UTC+2 is 21:30 UTC the previous calendar day there.
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2026, 3, 1, 0, 30, 0, 0, loc)

	if got := DayKey(local); got != "2026-02-28" {
		t.Errorf("DayKey = %q, want 2026-02-28", got)
	}
	if got := DayKey(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)); got != "2026-03-01" {
		t.Errorf("DayKey = %q, want 2026-03-01", got)
	}
}

func TestLeaveDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"single day", day(2), day(2), 1},
		{"work week", day(2), day(6), 5},
		{"inverted range", day(6), day(2), 0},
		{"time of day ignored", day(2).Add(18 * time.Hour), day(3).Add(2 * time.Hour), 2},
	}
	for _, tc := range cases {
		if got := LeaveDays(tc.start, tc.end); got != tc.want {
			t.Errorf("%s: LeaveDays = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestValidPeriod(t *testing.T) {
	valid := []string{"2026-01", "2026-12", "1999-09"}
	invalid := []string{"", "2026-13", "2026-00", "2026-1", "202601", "2026-02-01", "feb 2026"}

	for _, p := range valid {
		if !ValidPeriod(p) {
			t.Errorf("ValidPeriod(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if ValidPeriod(p) {
			t.Errorf("ValidPeriod(%q) = true, want false", p)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleHRManager, RoleEmployee} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false", role)
		}
	}
	for _, role := range []string{"", "root", "Admin"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true", role)
		}
	}
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	u := User{
		ID:           "user_1",
		Email:        "ana@acme.test",
		PasswordHash: "$2a$10$abcdefg",
		Role:         RoleEmployee,
		CompanyID:    "company_1",
	}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "abcdefg") {
		t.Fatalf("hash leaked: %s", data)
	}
}

func TestUserPrincipal(t *testing.T) {
	u := User{ID: "user_1", Email: "ana@acme.test", Role: RoleHRManager, CompanyID: "company_1"}
	p := u.Principal()
	if p.UserID != "user_1" || p.Email != "ana@acme.test" || p.Role != RoleHRManager || p.CompanyID != "company_1" {
		t.Fatalf("principal = %+v", p)
	}
}
