package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/spa-booking/internal/domain/booking"
	"github.com/BruksfildServices01/spa-booking/internal/httperr"
	"github.com/BruksfildServices01/spa-booking/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type GetDaySlotsInput struct {
	LocationID string
	Date       string // YYYY-MM-DD
	Items      []models.CartItem

	// Relógio da requisição, no fuso da unidade (política de horário vencido).
	Now time.Time
}

type GetDaySlotsOutput struct {
	Date             string                   `json:"date"`
	RequestKey       string                   `json:"request_key"`
	Periods          map[string][]domain.Slot `json:"periods"`
	MaxAvailableDate string                   `json:"max_available_date"`
}

// ======================================================
// USE CASE
// ======================================================

type GetDaySlots struct {
	gw domain.Gateway
}

func NewGetDaySlots(gw domain.Gateway) *GetDaySlots {
	return &GetDaySlots{gw: gw}
}

func (uc *GetDaySlots) Execute(
	ctx context.Context,
	in GetDaySlotsInput,
) (*GetDaySlotsOutput, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	serviceIDs := domain.DistinctServiceIDs(in.Items)

	// Um dia por vez: start == end == data selecionada.
	resp, err := uc.gw.GetSlots(ctx, in.LocationID, in.Date, in.Date, serviceIDs)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0, len(resp.Slots))
	for _, raw := range resp.Slots {
		available := raw.Available
		if domain.IsPast(raw.Date, raw.StartMinute, in.Now) {
			available = false
		}

		slots = append(slots, domain.Slot{
			Date:        raw.Date,
			StartMinute: raw.StartMinute,
			EndMinute:   raw.EndMinute,
			Available:   available,
			Time:        domain.FormatMinute(raw.StartMinute),
			Period:      domain.PeriodFor(raw.StartMinute),
		})
	}

	return &GetDaySlotsOutput{
		Date:             in.Date,
		RequestKey:       domain.RequestKey(in.Date, serviceIDs),
		Periods:          domain.GroupByPeriod(slots),
		MaxAvailableDate: resp.MaxAvailableDate,
	}, nil
}
