package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/spa-booking/internal/cart"
	"github.com/BruksfildServices01/spa-booking/internal/catalog"
	domain "github.com/BruksfildServices01/spa-booking/internal/domain/booking"
	"github.com/BruksfildServices01/spa-booking/internal/httperr"
	"github.com/BruksfildServices01/spa-booking/internal/httpresp"
	"github.com/BruksfildServices01/spa-booking/internal/middleware"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type CatalogHandler struct {
	catalog *catalog.Catalog
	storage cart.Storage
}

func NewCatalogHandler(cat *catalog.Catalog, storage cart.Storage) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		storage: storage,
	}
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *CatalogHandler) ListServices(c *gin.Context) {
	locationID := c.Param("uuid")

	services, _, err := h.catalog.Snapshot(c.Request.Context(), locationID)
	if err != nil {
		httperr.BadGateway(c, "catalog_failed", "Erro ao carregar os serviços. Tente novamente.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// OPERATORS (filtrados pelo carrinho)
////////////////////////////////////////////////////////

// ListOperators devolve apenas os operadores capazes de executar todos
// os serviços do carrinho atual, com "No Preference" sempre presente.
func (h *CatalogHandler) ListOperators(c *gin.Context) {
	locationID := c.Param("uuid")

	_, operators, err := h.catalog.Snapshot(c.Request.Context(), locationID)
	if err != nil {
		httperr.BadGateway(c, "catalog_failed", "Erro ao carregar os profissionais. Tente novamente.")
		return
	}

	store := cart.Open(c.Request.Context(), h.storage, middleware.IdentityFrom(c))
	serviceIDs := domain.DistinctServiceIDs(store.Items())

	filtered := catalog.FilterOperators(operators, serviceIDs)

	c.JSON(http.StatusOK, gin.H{
		"operators": filtered,
		// Aviso de usabilidade: nenhum profissional cobre o carrinho
		// inteiro. Agendar com "No Preference" segue possível.
		"no_single_operator": catalog.NoneCoversAll(filtered, serviceIDs),
	})
}
