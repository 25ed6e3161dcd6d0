package booking

import (
	"context"

	"github.com/BruksfildServices01/spa-booking/internal/models"
	"github.com/BruksfildServices01/spa-booking/internal/upstream"
)

// Gateway é o contrato com a plataforma externa de gestão do salão.
type Gateway interface {
	ListServices(
		ctx context.Context,
		locationID string,
	) ([]upstream.Service, error)

	ListOperators(
		ctx context.Context,
		locationID string,
	) ([]upstream.Operator, error)

	GetSlots(
		ctx context.Context,
		locationID string,
		startDate string,
		endDate string,
		serviceIDs []string,
	) (*upstream.SlotsResponse, error)

	CreateBooking(
		ctx context.Context,
		req upstream.CreateBookingRequest,
	) (*upstream.CreateBookingResponse, error)

	CancelBooking(
		ctx context.Context,
		bookingID string,
	) error
}

// Records guarda os snapshots locais de agendamentos confirmados.
type Records interface {
	Save(
		ctx context.Context,
		rec *models.BookingRecord,
	) error

	GetForOwner(
		ctx context.Context,
		bookingID string,
		ownerKey string,
	) (*models.BookingRecord, error)

	Update(
		ctx context.Context,
		rec *models.BookingRecord,
	) error
}
