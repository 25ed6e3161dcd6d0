package booking

import (
	"testing"
	"time"
)

func TestFormatMinute(t *testing.T) {
	cases := map[int]string{
		0:    "12:00 AM",
		600:  "10:00 AM",
		630:  "10:30 AM",
		720:  "12:00 PM",
		1020: "5:00 PM",
		1425: "11:45 PM",
	}

	for minute, want := range cases {
		if got := FormatMinute(minute); got != want {
			t.Errorf("FormatMinute(%d) = %q, want %q", minute, got, want)
		}
	}
}

func TestPeriodFor(t *testing.T) {
	cases := map[int]string{
		0:    PeriodMorning,
		719:  PeriodMorning,
		720:  PeriodAfternoon,
		1019: PeriodAfternoon,
		1020: PeriodEvening,
		1380: PeriodEvening,
	}

	for minute, want := range cases {
		if got := PeriodFor(minute); got != want {
			t.Errorf("PeriodFor(%d) = %q, want %q", minute, got, want)
		}
	}
}

func TestIsPastTodayOnly(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC) // minuto 630

	// Hoje: slot antes do minuto atual é passado, mesmo marcado disponível.
	if !IsPast("2026-09-01", 600, now) {
		t.Error("slot at 600 should be past at 10:30")
	}
	if IsPast("2026-09-01", 630, now) {
		t.Error("slot at current minute is not past")
	}
	if IsPast("2026-09-01", 660, now) {
		t.Error("future slot today is not past")
	}

	// Outro dia: a política não se aplica.
	if IsPast("2026-09-02", 0, now) {
		t.Error("slots on other days are never past")
	}
}

func TestRequestKeyOrderInsensitive(t *testing.T) {
	a := RequestKey("2026-09-01", []string{"20", "10"})
	b := RequestKey("2026-09-01", []string{"10", "20"})

	if a != b {
		t.Errorf("keys differ for same service set: %q vs %q", a, b)
	}

	c := RequestKey("2026-09-02", []string{"10", "20"})
	if a == c {
		t.Error("different dates must produce different keys")
	}

	d := RequestKey("2026-09-01", []string{"10"})
	if a == d {
		t.Error("different service sets must produce different keys")
	}
}

func TestGroupByPeriod(t *testing.T) {
	slots := []Slot{
		{StartMinute: 540, Period: PeriodMorning},
		{StartMinute: 780, Period: PeriodAfternoon},
		{StartMinute: 1080, Period: PeriodEvening},
		{StartMinute: 600, Period: PeriodMorning},
	}

	grouped := GroupByPeriod(slots)

	if len(grouped[PeriodMorning]) != 2 {
		t.Errorf("morning = %d, want 2", len(grouped[PeriodMorning]))
	}
	if len(grouped[PeriodAfternoon]) != 1 || len(grouped[PeriodEvening]) != 1 {
		t.Error("afternoon/evening buckets wrong")
	}

	// Ordem preservada dentro do bucket.
	if grouped[PeriodMorning][0].StartMinute != 540 {
		t.Error("bucket order not preserved")
	}
}

func TestWeekdayName(t *testing.T) {
	day, err := WeekdayName("2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	if day != "Tuesday" {
		t.Errorf("WeekdayName = %q, want Tuesday", day)
	}

	if _, err := WeekdayName("not-a-date"); err == nil {
		t.Error("expected error for invalid date")
	}
}
