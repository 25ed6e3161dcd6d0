package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/spa-booking/internal/audit"
	"github.com/BruksfildServices01/spa-booking/internal/cart"
	"github.com/BruksfildServices01/spa-booking/internal/httperr"
	"github.com/BruksfildServices01/spa-booking/internal/middleware"
	"github.com/BruksfildServices01/spa-booking/internal/models"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type CartHandler struct {
	storage cart.Storage
	audit   *audit.Dispatcher
}

func NewCartHandler(storage cart.Storage, dispatcher *audit.Dispatcher) *CartHandler {
	return &CartHandler{
		storage: storage,
		audit:   dispatcher,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type AddItemRequest struct {
	ServiceID          string   `json:"id" binding:"required"`
	Name               string   `json:"name" binding:"required"`
	DurationMin        int      `json:"duration"`
	Price              float64  `json:"price"`
	Category           string   `json:"category"`
	Tags               []string `json:"tags"`
	VendorLocationUUID string   `json:"vendor_location_uuid" binding:"required"`
}

type SetLocationRequest struct {
	LocationID string `json:"location_id" binding:"required"`
}

func cartResponse(store *cart.Store) gin.H {
	items := store.Items()

	var total float64
	for _, item := range items {
		total += item.Price
	}

	return gin.H{
		"items":            items,
		"total":            total,
		"storage_degraded": store.Err != nil,
	}
}

////////////////////////////////////////////////////////
// CART
////////////////////////////////////////////////////////

func (h *CartHandler) Get(c *gin.Context) {
	store := cart.Open(c.Request.Context(), h.storage, middleware.IdentityFrom(c))
	c.JSON(http.StatusOK, cartResponse(store))
}

// AddItem acrescenta o serviço ao carrinho. Item de outra unidade
// primeiro esvazia o carrinho: itens nunca misturam localizações.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço inválido.")
		return
	}

	id := middleware.IdentityFrom(c)
	store := cart.Open(c.Request.Context(), h.storage, id)

	if items := store.Items(); len(items) > 0 &&
		items[0].VendorLocationUUID != req.VendorLocationUUID {
		store.Clear(c.Request.Context())
	}

	store.Add(c.Request.Context(), models.CartItem{
		ServiceID:          req.ServiceID,
		Name:               req.Name,
		DurationMin:        req.DurationMin,
		Price:              req.Price,
		Category:           req.Category,
		Tags:               req.Tags,
		VendorLocationUUID: req.VendorLocationUUID,
	})

	h.audit.Dispatch(audit.Event{
		OwnerKey: store.Key(),
		Action:   "cart_item_added",
		Entity:   "service",
		EntityID: req.ServiceID,
	})

	c.JSON(http.StatusOK, cartResponse(store))
}

// RemoveItem remove por índice; fora do intervalo é silencioso.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.BadRequest(c, "invalid_index", "Índice inválido.")
		return
	}

	store := cart.Open(c.Request.Context(), h.storage, middleware.IdentityFrom(c))
	store.RemoveAt(c.Request.Context(), index)

	c.JSON(http.StatusOK, cartResponse(store))
}

func (h *CartHandler) Clear(c *gin.Context) {
	store := cart.Open(c.Request.Context(), h.storage, middleware.IdentityFrom(c))
	store.Clear(c.Request.Context())

	c.JSON(http.StatusOK, cartResponse(store))
}

// SetLocation troca a unidade selecionada. Troca real sempre resulta
// em carrinho vazio — item de outra unidade nunca sobrevive.
func (h *CartHandler) SetLocation(c *gin.Context) {
	var req SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	store := cart.Open(c.Request.Context(), h.storage, middleware.IdentityFrom(c))

	cleared := false
	if items := store.Items(); len(items) > 0 &&
		items[0].VendorLocationUUID != req.LocationID {
		store.Clear(c.Request.Context())
		cleared = true
	}

	c.JSON(http.StatusOK, gin.H{
		"location_id":  req.LocationID,
		"cart_cleared": cleared,
		"items":        store.Items(),
	})
}

// ResetBookingContext descarta o slot escolhido e limpa o contexto de
// agendamento dos itens (troca de operador, data ou mês no calendário).
func (h *CartHandler) ResetBookingContext(c *gin.Context) {
	store := cart.Open(c.Request.Context(), h.storage, middleware.IdentityFrom(c))
	store.ClearBookingContext(c.Request.Context())

	c.JSON(http.StatusOK, cartResponse(store))
}
