package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	booking "github.com/BruksfildServices01/spa-booking/internal/domain/booking"
	"github.com/BruksfildServices01/spa-booking/internal/upstream"
)

const cacheTTL = 5 * time.Minute

type entry struct {
	services  []upstream.Service
	operators []upstream.Operator
	fetchedAt time.Time
}

// Catalog mantém um cache por localização de serviços e operadores,
// refeito na troca de localização ou quando o TTL vence.
type Catalog struct {
	gw booking.Gateway

	mu      sync.Mutex
	entries map[string]entry
}

func New(gw booking.Gateway) *Catalog {
	return &Catalog{
		gw:      gw,
		entries: make(map[string]entry),
	}
}

// Snapshot devolve serviços e operadores da localização, buscando da
// plataforma em paralelo quando o cache está frio.
func (c *Catalog) Snapshot(
	ctx context.Context,
	locationID string,
) ([]upstream.Service, []upstream.Operator, error) {

	c.mu.Lock()
	e, ok := c.entries[locationID]
	c.mu.Unlock()

	if ok && time.Since(e.fetchedAt) < cacheTTL {
		return e.services, e.operators, nil
	}

	var (
		services  []upstream.Service
		operators []upstream.Operator
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		services, err = c.gw.ListServices(gctx, locationID)
		return err
	})

	g.Go(func() error {
		var err error
		operators, err = c.gw.ListOperators(gctx, locationID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	c.mu.Lock()
	c.entries[locationID] = entry{
		services:  services,
		operators: operators,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()

	return services, operators, nil
}

// Invalidate derruba o cache da localização (troca de unidade).
func (c *Catalog) Invalidate(locationID string) {
	c.mu.Lock()
	delete(c.entries, locationID)
	c.mu.Unlock()
}

// OperatorName resolve o nome de exibição de um operador da localização.
// Id vazio ou "0" é a entrada sintética "No Preference".
func (c *Catalog) OperatorName(
	ctx context.Context,
	locationID string,
	operatorID string,
) string {

	if operatorID == "" || operatorID == NoPreferenceID {
		return booking.NoPreferenceName
	}

	_, operators, err := c.Snapshot(ctx, locationID)
	if err != nil {
		return booking.NoPreferenceName
	}

	for _, op := range operators {
		if op.ID == operatorID {
			return op.Name
		}
	}
	return booking.NoPreferenceName
}
