package booking

import "github.com/BruksfildServices01/spa-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	// Agendamento enviado, ainda não confirmado/pago na plataforma.
	StatusTentative Status = "tentative"
	StatusCancelled Status = "cancelled"
)

// CanCancel define se um agendamento local ainda pode ser cancelado.
func CanCancel(current Status) error {
	if current != StatusTentative {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusTentative
}
