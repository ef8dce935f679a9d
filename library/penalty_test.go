package library

import "testing"

func TestPenaltyOnDueDateIsZero(t *testing.T) {
	cfg := DefaultPenaltyConfig()
	got, err := cfg.Penalty("2024-01-01", "2024-01-15")
	if err != nil {
		t.Fatalf("penalty: %v", err)
	}
	if got != 0 {
		t.Fatalf("want 0 on due date, got %v", got)
	}
}

func TestPenaltyEarlyReturnIsZero(t *testing.T) {
	cfg := DefaultPenaltyConfig()
	got, err := cfg.Penalty("2024-01-01", "2024-01-05")
	if err != nil {
		t.Fatalf("penalty: %v", err)
	}
	if got != 0 {
		t.Fatalf("want 0 for early return, got %v", got)
	}
}

func TestPenaltySkipsWeekendDays(t *testing.T) {
	// Due 2024-01-15 (Monday). Late window is Jan 16-20; Jan 20 is a
	// Saturday, so 4 of the 5 late days are chargeable.
	cfg := DefaultPenaltyConfig()
	got, err := cfg.Penalty("2024-01-01", "2024-01-20")
	if err != nil {
		t.Fatalf("penalty: %v", err)
	}
	if want := 4 * cfg.DailyRate; got != want {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestPenaltyGraceDaysShiftDueDate(t *testing.T) {
	// Grace 2 moves the due date to 2024-01-17 (Wednesday). Late window
	// Jan 18-20 contains one Saturday, leaving 2 chargeable days.
	cfg := DefaultPenaltyConfig()
	cfg.GraceDays = 2
	got, err := cfg.Penalty("2024-01-01", "2024-01-20")
	if err != nil {
		t.Fatalf("penalty: %v", err)
	}
	if want := 2 * cfg.DailyRate; got != want {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestPenaltyWeekendCheckCrossesMonthBoundary(t *testing.T) {
	// Due 2024-02-03 (Saturday). Late window Feb 4-7 starts on a Sunday,
	// so 3 of the 4 late days are chargeable.
	cfg := DefaultPenaltyConfig()
	got, err := cfg.Penalty("2024-01-20", "2024-02-07")
	if err != nil {
		t.Fatalf("penalty: %v", err)
	}
	if want := 3 * cfg.DailyRate; got != want {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestPenaltyCapped(t *testing.T) {
	cfg := DefaultPenaltyConfig()
	cfg.MaxPenalty = 5
	got, err := cfg.Penalty("2024-01-01", "2024-01-20")
	if err != nil {
		t.Fatalf("penalty: %v", err)
	}
	if got != 5 {
		t.Fatalf("want capped penalty 5, got %v", got)
	}
}

func TestPenaltyBadDate(t *testing.T) {
	cfg := DefaultPenaltyConfig()
	if _, err := cfg.Penalty("01/01/2024", "2024-01-20"); err == nil {
		t.Fatalf("want error for bad issue date")
	}
	if _, err := cfg.Penalty("2024-01-01", "20-01-2024"); err == nil {
		t.Fatalf("want error for bad return date")
	}
}
