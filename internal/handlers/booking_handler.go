package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/spa-booking/internal/cart"
	domain "github.com/BruksfildServices01/spa-booking/internal/domain/booking"
	"github.com/BruksfildServices01/spa-booking/internal/httperr"
	"github.com/BruksfildServices01/spa-booking/internal/httpresp"
	"github.com/BruksfildServices01/spa-booking/internal/middleware"
	"github.com/BruksfildServices01/spa-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/spa-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	confirm *ucBooking.ConfirmBooking
	cancel  *ucBooking.CancelBooking
	records domain.Records
	storage cart.Storage
}

func NewBookingHandler(
	confirm *ucBooking.ConfirmBooking,
	cancel *ucBooking.CancelBooking,
	records domain.Records,
	storage cart.Storage,
) *BookingHandler {
	return &BookingHandler{
		confirm: confirm,
		cancel:  cancel,
		records: records,
		storage: storage,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	LocationID    string `json:"location_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	StartMinute   *int   `json:"start_minute"`
	Comment       string `json:"comment"`
	TermsAccepted bool   `json:"terms_accepted"`
	RequestKey    string `json:"request_key"`
}

////////////////////////////////////////////////////////
// CREATE
////////////////////////////////////////////////////////

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	id := middleware.IdentityFrom(c)
	store := cart.Open(c.Request.Context(), h.storage, id)

	startMinute := 0
	slotChosen := req.StartMinute != nil
	if slotChosen {
		startMinute = *req.StartMinute
	}

	rec, err := h.confirm.Execute(c.Request.Context(), store, ucBooking.ConfirmBookingInput{
		Identity:        id,
		LocationID:      req.LocationID,
		Date:            req.Date,
		SlotStartMinute: startMinute,
		SlotChosen:      slotChosen,
		Comment:         req.Comment,
		TermsAccepted:   req.TermsAccepted,
		RequestKey:      req.RequestKey,
	})
	if err != nil {
		mapConfirmErrors(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"booking_id": rec.BookingID,
		"booking":    rec,
	})
}

// Cada pré-condição tem mensagem própria; a recusa da plataforma
// preserva o carrinho e orienta a escolher outro horário.
func mapConfirmErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "terms_not_accepted":
		httperr.BadRequest(c, "terms_not_accepted", "Aceite os termos de serviço para continuar.")
	case "missing_date_or_slot":
		httperr.BadRequest(c, "missing_date_or_slot", "Escolha uma data e um horário.")
	case "empty_cart":
		httperr.BadRequest(c, "empty_cart", "Seu carrinho está vazio.")
	case "missing_location":
		httperr.BadRequest(c, "missing_location", "Selecione uma unidade.")
	case "login_required":
		httperr.Unauthorized(c, "login_required", "Faça login para concluir o agendamento.")
	case "stale_selection":
		httperr.Conflict(c, "stale_selection", "Seu carrinho mudou. Escolha o horário novamente.")
	case "booking_in_progress":
		httperr.Conflict(c, "booking_in_progress", "Agendamento já está sendo enviado.")
	case "slot_unavailable":
		httperr.Conflict(c, "slot_unavailable", "Esse horário acabou de ser ocupado. Escolha outro horário.")
	default:
		httperr.BadGateway(c, "booking_failed", "Erro ao confirmar o agendamento. Tente novamente.")
	}
}

////////////////////////////////////////////////////////
// CONFIRMATION PAGE
////////////////////////////////////////////////////////

func (h *BookingHandler) Get(c *gin.Context) {
	bookingID := c.Param("id")
	ownerKey := cart.KeyFor(middleware.IdentityFrom(c))

	rec, err := h.records.GetForOwner(c.Request.Context(), bookingID, ownerKey)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		return
	}

	var items []models.CartItem
	_ = json.Unmarshal([]byte(rec.ItemsJSON), &items)

	c.JSON(http.StatusOK, gin.H{
		"booking": rec,
		"items":   items,
	})
}

////////////////////////////////////////////////////////
// CANCEL (repasse à plataforma)
////////////////////////////////////////////////////////

func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID := c.Param("id")
	ownerKey := cart.KeyFor(middleware.IdentityFrom(c))

	if err := h.cancel.Execute(c.Request.Context(), bookingID, ownerKey); err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.Conflict(c, "invalid_state", "Esse agendamento não pode mais ser cancelado.")
		default:
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agendamento cancelado."})
}
