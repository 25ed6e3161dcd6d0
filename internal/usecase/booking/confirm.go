package booking

import (
	"context"
	"encoding/json"
	"math"
	"sync"

	"github.com/BruksfildServices01/spa-booking/internal/audit"
	"github.com/BruksfildServices01/spa-booking/internal/cart"
	domain "github.com/BruksfildServices01/spa-booking/internal/domain/booking"
	"github.com/BruksfildServices01/spa-booking/internal/httperr"
	"github.com/BruksfildServices01/spa-booking/internal/identity"
	"github.com/BruksfildServices01/spa-booking/internal/models"
	"github.com/BruksfildServices01/spa-booking/internal/upstream"
)

// ======================================================
// INPUT
// ======================================================

type ConfirmBookingInput struct {
	Identity identity.Identity

	LocationID      string
	Date            string // YYYY-MM-DD
	SlotStartMinute int
	SlotChosen      bool

	Comment       string
	TermsAccepted bool

	// Chave devolvida pela última busca de slots; seleção obsoleta é recusada.
	RequestKey string
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

type Notifier interface {
	BookingConfirmed(rec *models.BookingRecord)
}

// ======================================================
// USE CASE
// ======================================================

type ConfirmBooking struct {
	gw      domain.Gateway
	records domain.Records
	audit   Auditor
	notify  Notifier
	tax     float64

	mu       sync.Mutex
	inflight map[string]bool
}

func NewConfirmBooking(
	gw domain.Gateway,
	records domain.Records,
	auditor Auditor,
	notifier Notifier,
	tax float64,
) *ConfirmBooking {
	return &ConfirmBooking{
		gw:       gw,
		records:  records,
		audit:    auditor,
		notify:   notifier,
		tax:      tax,
		inflight: make(map[string]bool),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	store *cart.Store,
	in ConfirmBookingInput,
) (*models.BookingRecord, error) {

	// --------------------------------------------------
	// Pré-condições, em ordem; a primeira falha encerra.
	// --------------------------------------------------
	if !in.TermsAccepted {
		return nil, httperr.ErrBusiness("terms_not_accepted")
	}

	if in.Date == "" || !in.SlotChosen {
		return nil, httperr.ErrBusiness("missing_date_or_slot")
	}

	items := store.Items()
	if len(items) == 0 {
		return nil, httperr.ErrBusiness("empty_cart")
	}

	if in.LocationID == "" {
		return nil, httperr.ErrBusiness("missing_location")
	}

	if !in.Identity.Authenticated {
		return nil, httperr.ErrBusiness("login_required")
	}

	// Seleção feita sobre uma busca de slots que já não corresponde
	// ao carrinho/data atuais.
	if in.RequestKey != "" {
		current := domain.RequestKey(in.Date, domain.DistinctServiceIDs(items))
		if in.RequestKey != current {
			return nil, httperr.ErrBusiness("stale_selection")
		}
	}

	// --------------------------------------------------
	// Guarda de reentrância: uma submissão por carrinho.
	// --------------------------------------------------
	if !uc.acquire(store.Key()) {
		return nil, httperr.ErrBusiness("booking_in_progress")
	}
	defer uc.release(store.Key())

	// --------------------------------------------------
	// Payload: recomputa as janelas a partir do slot
	// escolhido — nunca dos timeSlot gravados nos itens.
	// --------------------------------------------------
	windows := domain.ChainServiceWindows(items, in.SlotStartMinute)

	var sum float64
	for _, item := range items {
		sum += item.Price
	}
	total := round2(sum + uc.tax)

	services := make([]upstream.BookingService, len(windows))
	for i, w := range windows {
		services[i] = upstream.BookingService{
			ServiceID:   w.ServiceID,
			ServiceName: w.ServiceName,
			StartMinute: w.StartMinute,
			EndMinute:   w.EndMinute,
		}
	}

	req := upstream.CreateBookingRequest{
		LocationID:     in.LocationID,
		Date:           in.Date,
		Comment:        in.Comment,
		Status:         string(domain.InitialStatus()),
		MergeSameStaff: true,
		Total:          total,
		Services:       services,
	}

	// --------------------------------------------------
	// Submissão. Recusa preserva carrinho e comentário.
	// --------------------------------------------------
	resp, err := uc.gw.CreateBooking(ctx, req)
	if err != nil {
		if upstream.IsSlotUnavailable(err) {
			return nil, httperr.ErrBusiness("slot_unavailable")
		}
		return nil, err
	}

	// --------------------------------------------------
	// Sucesso: snapshot, limpeza do carrinho, avisos.
	// --------------------------------------------------
	itemsJSON, _ := json.Marshal(items)
	servicesJSON, _ := json.Marshal(services)

	rec := &models.BookingRecord{
		BookingID:      resp.BookingID,
		OwnerKey:       store.Key(),
		LocationID:     in.LocationID,
		Date:           in.Date,
		Comment:        in.Comment,
		Status:         string(domain.InitialStatus()),
		MergeSameStaff: true,
		Total:          total,
		ItemsJSON:      string(itemsJSON),
		ServicesJSON:   string(servicesJSON),
	}

	if err := uc.records.Save(ctx, rec); err != nil {
		// Agendamento já existe na plataforma; o snapshot local é
		// conveniência da página de confirmação.
		return nil, err
	}

	store.Clear(ctx)

	uc.audit.Dispatch(audit.Event{
		OwnerKey: store.Key(),
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: rec.BookingID,
		Metadata: map[string]any{"total": total, "date": in.Date},
	})

	if uc.notify != nil {
		uc.notify.BookingConfirmed(rec)
	}

	return rec, nil
}

func (uc *ConfirmBooking) acquire(key string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.inflight[key] {
		return false
	}
	uc.inflight[key] = true
	return true
}

func (uc *ConfirmBooking) release(key string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inflight, key)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
