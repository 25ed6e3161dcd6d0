package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/spa-booking/internal/domain/booking"
	"github.com/BruksfildServices01/spa-booking/internal/httperr"
	"github.com/BruksfildServices01/spa-booking/internal/models"
	"github.com/BruksfildServices01/spa-booking/internal/upstream"
)

type slotsGateway struct {
	fakeGateway
	resp       *upstream.SlotsResponse
	gotIDs     []string
	gotStart   string
	gotEnd     string
	slotsError error
}

func (g *slotsGateway) GetSlots(
	_ context.Context,
	_ string,
	startDate string,
	endDate string,
	serviceIDs []string,
) (*upstream.SlotsResponse, error) {

	g.gotStart = startDate
	g.gotEnd = endDate
	g.gotIDs = serviceIDs

	if g.slotsError != nil {
		return nil, g.slotsError
	}
	return g.resp, nil
}

func TestGetDaySlotsFormatsAndBuckets(t *testing.T) {
	gw := &slotsGateway{
		resp: &upstream.SlotsResponse{
			Slots: []upstream.RawSlot{
				{Date: "2026-09-01", StartMinute: 600, EndMinute: 675, Available: true},
				{Date: "2026-09-01", StartMinute: 780, EndMinute: 855, Available: true},
				{Date: "2026-09-01", StartMinute: 1080, EndMinute: 1155, Available: false},
			},
			MaxAvailableDate: "2026-10-01",
		},
	}
	uc := NewGetDaySlots(gw)

	items := []models.CartItem{
		{ServiceID: "1", DurationMin: 30},
		{ServiceID: "2", DurationMin: 45},
		{ServiceID: "1", DurationMin: 30}, // repetido: ids distintos na busca
	}

	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	out, err := uc.Execute(context.Background(), GetDaySlotsInput{
		LocationID: "loc-1",
		Date:       "2026-09-01",
		Items:      items,
		Now:        now,
	})
	if err != nil {
		t.Fatal(err)
	}

	// Um dia por vez.
	if gw.gotStart != "2026-09-01" || gw.gotEnd != "2026-09-01" {
		t.Errorf("range = [%s,%s], want single day", gw.gotStart, gw.gotEnd)
	}
	if len(gw.gotIDs) != 2 {
		t.Errorf("service ids = %v, want distinct [1 2]", gw.gotIDs)
	}

	morning := out.Periods[domain.PeriodMorning]
	if len(morning) != 1 || morning[0].Time != "10:00 AM" {
		t.Errorf("morning = %+v", morning)
	}
	if len(out.Periods[domain.PeriodAfternoon]) != 1 {
		t.Error("afternoon bucket wrong")
	}
	if len(out.Periods[domain.PeriodEvening]) != 1 {
		t.Error("evening bucket wrong")
	}

	if out.MaxAvailableDate != "2026-10-01" {
		t.Errorf("max date = %q", out.MaxAvailableDate)
	}
	if out.RequestKey != domain.RequestKey("2026-09-01", []string{"1", "2"}) {
		t.Errorf("request key = %q", out.RequestKey)
	}
}

// Para hoje, slot que já começou fica indisponível mesmo que o
// servidor diga o contrário.
func TestGetDaySlotsPastSlotPolicy(t *testing.T) {
	gw := &slotsGateway{
		resp: &upstream.SlotsResponse{
			Slots: []upstream.RawSlot{
				{Date: "2026-09-01", StartMinute: 600, EndMinute: 630, Available: true},
				{Date: "2026-09-01", StartMinute: 660, EndMinute: 690, Available: true},
			},
		},
	}
	uc := NewGetDaySlots(gw)

	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC) // minuto 630
	out, err := uc.Execute(context.Background(), GetDaySlotsInput{
		LocationID: "loc-1",
		Date:       "2026-09-01",
		Items:      []models.CartItem{{ServiceID: "1"}},
		Now:        now,
	})
	if err != nil {
		t.Fatal(err)
	}

	morning := out.Periods[domain.PeriodMorning]
	if len(morning) != 2 {
		t.Fatalf("morning = %d slots, want 2", len(morning))
	}
	if morning[0].Available {
		t.Error("elapsed slot must be unavailable")
	}
	if !morning[1].Available {
		t.Error("future slot must keep server availability")
	}
}

func TestGetDaySlotsInvalidDate(t *testing.T) {
	uc := NewGetDaySlots(&slotsGateway{})

	_, err := uc.Execute(context.Background(), GetDaySlotsInput{
		LocationID: "loc-1",
		Date:       "01/09/2026",
		Now:        time.Now(),
	})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("want invalid_date, got %v", err)
	}
}
