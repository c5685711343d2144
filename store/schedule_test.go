package store

import (
	"testing"
	"time"

	"serenefit-backend/models"
)

func TestGenerateMonthCoversEveryDay(t *testing.T) {
	days := GenerateMonth(2026, time.September)
	if len(days) != 30 {
		t.Fatalf("expected 30 days, got %d", len(days))
	}
	if _, ok := days["2026-09-01"]; !ok {
		t.Error("expected entry for the 1st")
	}
	if _, ok := days["2026-09-30"]; !ok {
		t.Error("expected entry for the 30th")
	}
}

func TestGenerateMonthRestDays(t *testing.T) {
	days := GenerateMonth(2026, time.September)
	for key, workout := range days {
		d, err := time.Parse("2006-01-02", key)
		if err != nil {
			t.Fatalf("bad date key %q: %v", key, err)
		}
		isRestDay := d.Weekday() == time.Sunday || d.Weekday() == time.Monday
		if isRestDay && workout != models.WorkoutRest {
			t.Errorf("%s (%s) should rest, got %s", key, d.Weekday(), workout)
		}
		if !isRestDay && workout == models.WorkoutRest {
			t.Errorf("%s (%s) should not rest", key, d.Weekday())
		}
	}
}

func TestGenerateMonthRotationByDayOfMonth(t *testing.T) {
	days := GenerateMonth(2026, time.September)
	// Non-rest days with the same day-of-month mod 5 share a workout.
	// 2026-09-02 (Wednesday, day 2) and 2026-09-17 (Thursday, day 17).
	if days["2026-09-02"] != days["2026-09-17"] {
		t.Errorf("day 2 and day 17 should match, got %s vs %s", days["2026-09-02"], days["2026-09-17"])
	}
	if days["2026-09-02"] != models.WorkoutRotation[2] {
		t.Errorf("day 2 should follow the rotation, got %s", days["2026-09-02"])
	}
}

func TestGenerateMonthDeterministic(t *testing.T) {
	a := GenerateMonth(2026, time.October)
	b := GenerateMonth(2026, time.October)
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for key, workout := range a {
		if b[key] != workout {
			t.Errorf("%s: %s vs %s", key, workout, b[key])
		}
	}
}

func TestGenerateMonthHandlesFebruary(t *testing.T) {
	if got := len(GenerateMonth(2028, time.February)); got != 29 {
		t.Errorf("expected 29 days in Feb 2028, got %d", got)
	}
	if got := len(GenerateMonth(2026, time.February)); got != 28 {
		t.Errorf("expected 28 days in Feb 2026, got %d", got)
	}
}

func TestDefaultServicesSeedSet(t *testing.T) {
	services := DefaultServices()
	if len(services) != 4 {
		t.Fatalf("expected 4 seed services, got %d", len(services))
	}

	seen := map[string]bool{}
	for _, svc := range services {
		if svc.ID == "" || svc.Title == "" {
			t.Errorf("seed service missing id or title: %+v", svc)
		}
		if seen[svc.ID] {
			t.Errorf("duplicate seed id %s", svc.ID)
		}
		seen[svc.ID] = true
		if !svc.IsActive || !svc.IsBookable {
			t.Errorf("seed services start active and bookable: %s", svc.ID)
		}
	}
	if !seen["personal-training"] || !seen["yoga-classes"] {
		t.Errorf("expected the standard seed ids, got %v", seen)
	}
}

func TestDefaultConsultationSettings(t *testing.T) {
	s := DefaultConsultationSettings()
	if s.Fee != 99 || s.Duration != 45 {
		t.Errorf("unexpected defaults: fee %v duration %d", s.Fee, s.Duration)
	}
	if len(s.TimeSlots) != 5 {
		t.Errorf("expected 5 default slots, got %d", len(s.TimeSlots))
	}
}
