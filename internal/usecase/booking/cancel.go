package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/spa-booking/internal/audit"
	domain "github.com/BruksfildServices01/spa-booking/internal/domain/booking"
)

// CancelBooking repassa o cancelamento à plataforma e marca o
// snapshot local. O cancelamento em si é operação do sistema externo.
type CancelBooking struct {
	gw      domain.Gateway
	records domain.Records
	audit   Auditor
}

func NewCancelBooking(
	gw domain.Gateway,
	records domain.Records,
	auditor Auditor,
) *CancelBooking {
	return &CancelBooking{
		gw:      gw,
		records: records,
		audit:   auditor,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID string,
	ownerKey string,
) error {

	rec, err := uc.records.GetForOwner(ctx, bookingID, ownerKey)
	if err != nil {
		return err
	}

	if err := domain.CanCancel(domain.Status(rec.Status)); err != nil {
		return err
	}

	if err := uc.gw.CancelBooking(ctx, bookingID); err != nil {
		return err
	}

	now := time.Now()
	rec.Status = string(domain.StatusCancelled)
	rec.CancelledAt = &now

	if err := uc.records.Update(ctx, rec); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerKey: ownerKey,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: bookingID,
	})

	return nil
}
