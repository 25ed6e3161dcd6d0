package catalog

import (
	"testing"

	"github.com/BruksfildServices01/spa-booking/internal/upstream"
)

func ops() []upstream.Operator {
	return []upstream.Operator{
		{ID: "1", Name: "Ana", ServiceIDs: []string{"10", "20"}},
		{ID: "2", Name: "Bia", ServiceIDs: []string{"10"}},
		{ID: "3", Name: "Carla", ServiceIDs: []string{"20", "30"}},
	}
}

func TestFilterOperatorsEmptyCartReturnsAll(t *testing.T) {
	filtered := FilterOperators(ops(), nil)

	// No Preference + todos.
	if len(filtered) != 4 {
		t.Fatalf("len = %d, want 4", len(filtered))
	}
	if filtered[0].ID != NoPreferenceID {
		t.Errorf("first entry = %s, want synthetic %s", filtered[0].ID, NoPreferenceID)
	}
}

func TestFilterOperatorsSupersetOnly(t *testing.T) {
	filtered := FilterOperators(ops(), []string{"10", "20"})

	if len(filtered) != 2 {
		t.Fatalf("len = %d, want 2 (No Preference + Ana)", len(filtered))
	}
	if filtered[0].ID != NoPreferenceID {
		t.Error("No Preference must always come first")
	}
	if filtered[1].ID != "1" {
		t.Errorf("qualified operator = %s, want 1", filtered[1].ID)
	}
}

func TestFilterOperatorsNoneCovers(t *testing.T) {
	filtered := FilterOperators(ops(), []string{"10", "30"})

	if len(filtered) != 1 || filtered[0].ID != NoPreferenceID {
		t.Fatalf("expected only No Preference, got %d entries", len(filtered))
	}

	if !NoneCoversAll(filtered, []string{"10", "30"}) {
		t.Error("NoneCoversAll should flag the warning")
	}
}

func TestNoneCoversAllEmptyCart(t *testing.T) {
	filtered := FilterOperators(ops(), nil)
	if NoneCoversAll(filtered, nil) {
		t.Error("empty cart never warns")
	}
}
