package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/spa-booking/internal/cart"
	"github.com/BruksfildServices01/spa-booking/internal/httperr"
	"github.com/BruksfildServices01/spa-booking/internal/middleware"
	"github.com/BruksfildServices01/spa-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/spa-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type SlotHandler struct {
	getSlots *ucBooking.GetDaySlots
	assign   *ucBooking.AssignSlot
	storage  cart.Storage
}

func NewSlotHandler(
	getSlots *ucBooking.GetDaySlots,
	assign *ucBooking.AssignSlot,
	storage cart.Storage,
) *SlotHandler {
	return &SlotHandler{
		getSlots: getSlots,
		assign:   assign,
		storage:  storage,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type ChooseSlotRequest struct {
	LocationID  string `json:"location_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	StartMinute *int   `json:"start_minute" binding:"required"`
	OperatorID  string `json:"operator_id"`
}

////////////////////////////////////////////////////////
// SLOTS DO DIA
////////////////////////////////////////////////////////

func (h *SlotHandler) GetDaySlots(c *gin.Context) {
	locationID := c.Query("location_id")
	date := c.Query("date")

	if locationID == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "Unidade e data obrigatórias.")
		return
	}

	store := cart.Open(c.Request.Context(), h.storage, middleware.IdentityFrom(c))

	out, err := h.getSlots.Execute(c.Request.Context(), ucBooking.GetDaySlotsInput{
		LocationID: locationID,
		Date:       date,
		Items:      store.Items(),
		Now:        timezone.Now(),
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		// Falha transitória: nada do estado atual é alterado.
		httperr.BadGateway(c, "slots_failed", "Erro ao buscar horários. Tente novamente.")
		return
	}

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// ESCOLHA DO SLOT (atribuição encadeada)
////////////////////////////////////////////////////////

func (h *SlotHandler) ChooseSlot(c *gin.Context) {
	var req ChooseSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	store := cart.Open(c.Request.Context(), h.storage, middleware.IdentityFrom(c))

	items, key, err := h.assign.Execute(c.Request.Context(), ucBooking.AssignSlotInput{
		LocationID:      req.LocationID,
		Date:            req.Date,
		SlotStartMinute: *req.StartMinute,
		OperatorID:      req.OperatorID,
		Items:           store.Items(),
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "empty_cart"):
			httperr.BadRequest(c, "empty_cart", "Carrinho vazio.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		default:
			httperr.Internal(c, "assign_failed", "Erro ao reservar o horário.")
		}
		return
	}

	store.ReplaceAll(c.Request.Context(), items)

	c.JSON(http.StatusOK, gin.H{
		"items":       store.Items(),
		"request_key": key,
	})
}
