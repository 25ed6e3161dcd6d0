package booking

import (
	"context"

	"github.com/BruksfildServices01/spa-booking/internal/catalog"
	domain "github.com/BruksfildServices01/spa-booking/internal/domain/booking"
	"github.com/BruksfildServices01/spa-booking/internal/httperr"
	"github.com/BruksfildServices01/spa-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AssignSlotInput struct {
	LocationID      string
	Date            string // YYYY-MM-DD
	SlotStartMinute int
	OperatorID      string // vazio ou "0" = No Preference
	Items           []models.CartItem
}

// ======================================================
// USE CASE
// ======================================================

// AssignSlot grava o contexto de agendamento nos itens quando o
// usuário clica num horário: tempos encadeados de exibição, operador
// resolvido e data/dia escolhidos.
type AssignSlot struct {
	catalog *catalog.Catalog
}

func NewAssignSlot(cat *catalog.Catalog) *AssignSlot {
	return &AssignSlot{catalog: cat}
}

func (uc *AssignSlot) Execute(
	ctx context.Context,
	in AssignSlotInput,
) ([]models.CartItem, string, error) {

	if len(in.Items) == 0 {
		return nil, "", httperr.ErrBusiness("empty_cart")
	}

	day, err := domain.WeekdayName(in.Date)
	if err != nil {
		return nil, "", httperr.ErrBusiness("invalid_date")
	}

	operatorName := uc.catalog.OperatorName(ctx, in.LocationID, in.OperatorID)

	items := domain.AssignSlotTimes(
		in.Items,
		in.SlotStartMinute,
		operatorName,
		in.Date,
		day,
	)

	key := domain.RequestKey(in.Date, domain.DistinctServiceIDs(items))
	return items, key, nil
}
