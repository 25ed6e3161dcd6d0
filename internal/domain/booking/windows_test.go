package booking

import (
	"reflect"
	"testing"

	"github.com/BruksfildServices01/spa-booking/internal/models"
)

func TestChainServiceWindowsContiguous(t *testing.T) {
	items := []models.CartItem{
		{ServiceID: "1", Name: "Massagem", DurationMin: 30, Price: 500},
		{ServiceID: "2", Name: "Limpeza de pele", DurationMin: 45, Price: 800},
	}

	windows := ChainServiceWindows(items, 600) // 10:00 AM

	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}

	if windows[0].StartMinute != 600 || windows[0].EndMinute != 630 {
		t.Errorf("first window = [%d,%d), want [600,630)", windows[0].StartMinute, windows[0].EndMinute)
	}
	if windows[1].StartMinute != 630 || windows[1].EndMinute != 675 {
		t.Errorf("second window = [%d,%d), want [630,675)", windows[1].StartMinute, windows[1].EndMinute)
	}
}

func TestChainServiceWindowsNoGapsNoOverlap(t *testing.T) {
	items := []models.CartItem{
		{ServiceID: "a", DurationMin: 20},
		{ServiceID: "b", DurationMin: 60},
		{ServiceID: "c", DurationMin: 15},
		{ServiceID: "d", DurationMin: 90},
	}

	windows := ChainServiceWindows(items, 540)

	if windows[0].StartMinute != 540 {
		t.Fatalf("first window must start at slot start, got %d", windows[0].StartMinute)
	}

	for i := 0; i < len(windows)-1; i++ {
		if windows[i+1].StartMinute != windows[i].EndMinute {
			t.Errorf("window %d starts at %d, previous ends at %d",
				i+1, windows[i+1].StartMinute, windows[i].EndMinute)
		}
	}
}

// A duração default de 30min vale só para a submissão; a atribuição de
// exibição usa a duração crua. Assimetria herdada e mantida de propósito.
func TestZeroDurationAsymmetry(t *testing.T) {
	items := []models.CartItem{
		{ServiceID: "1", DurationMin: 0},
		{ServiceID: "2", DurationMin: 45},
	}

	windows := ChainServiceWindows(items, 600)
	if windows[0].EndMinute != 630 {
		t.Errorf("submission window should default to 30min, got end %d", windows[0].EndMinute)
	}
	if windows[1].StartMinute != 630 {
		t.Errorf("second submission window should start at 630, got %d", windows[1].StartMinute)
	}

	assigned := AssignSlotTimes(items, 600, "", "2026-09-01", "Tuesday")
	if assigned[0].TimeSlot != "10:00 AM" {
		t.Errorf("first display slot = %q, want 10:00 AM", assigned[0].TimeSlot)
	}
	// Sem default na exibição: o item de duração zero não avança o cursor.
	if assigned[1].TimeSlot != "10:00 AM" {
		t.Errorf("second display slot = %q, want 10:00 AM (no fallback at display time)", assigned[1].TimeSlot)
	}
}

func TestAssignSlotTimes(t *testing.T) {
	items := []models.CartItem{
		{ServiceID: "1", Name: "Massagem", DurationMin: 30},
		{ServiceID: "2", Name: "Manicure", DurationMin: 45},
	}

	assigned := AssignSlotTimes(items, 600, "Ana", "2026-09-01", "Tuesday")

	if assigned[0].TimeSlot != "10:00 AM" || assigned[1].TimeSlot != "10:30 AM" {
		t.Errorf("display slots = %q, %q", assigned[0].TimeSlot, assigned[1].TimeSlot)
	}

	for _, item := range assigned {
		if item.Operator != "Ana" {
			t.Errorf("operator = %q, want Ana", item.Operator)
		}
		if item.SelectedDate != "2026-09-01" || item.SelectedDay != "Tuesday" {
			t.Errorf("date context = %q/%q", item.SelectedDate, item.SelectedDay)
		}
	}

	// Itens originais não podem ser alterados.
	if items[0].TimeSlot != "" {
		t.Error("input items must not be mutated")
	}
}

func TestAssignSlotTimesDefaultsOperator(t *testing.T) {
	items := []models.CartItem{{ServiceID: "1", DurationMin: 30}}

	assigned := AssignSlotTimes(items, 60, "", "2026-09-01", "Tuesday")
	if assigned[0].Operator != NoPreferenceName {
		t.Errorf("operator = %q, want %q", assigned[0].Operator, NoPreferenceName)
	}
}

func TestDistinctServiceIDs(t *testing.T) {
	items := []models.CartItem{
		{ServiceID: "10"},
		{ServiceID: "20"},
		{ServiceID: "10"},
	}

	got := DistinctServiceIDs(items)
	want := []string{"10", "20"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctServiceIDs = %v, want %v", got, want)
	}
}
