package catalog

import (
	booking "github.com/BruksfildServices01/spa-booking/internal/domain/booking"
	"github.com/BruksfildServices01/spa-booking/internal/upstream"
)

// Id da entrada sintética "No Preference", sempre elegível.
const NoPreferenceID = "0"

func NoPreference() upstream.Operator {
	return upstream.Operator{
		ID:   NoPreferenceID,
		Name: booking.NoPreferenceName,
	}
}

// FilterOperators devolve os operadores capazes de executar TODOS os
// serviços do carrinho, com "No Preference" sempre na frente.
// Carrinho vazio: todos os operadores.
func FilterOperators(
	operators []upstream.Operator,
	cartServiceIDs []string,
) []upstream.Operator {

	out := []upstream.Operator{NoPreference()}

	if len(cartServiceIDs) == 0 {
		return append(out, operators...)
	}

	for _, op := range operators {
		capable := make(map[string]bool, len(op.ServiceIDs))
		for _, id := range op.ServiceIDs {
			capable[id] = true
		}

		covers := true
		for _, required := range cartServiceIDs {
			if !capable[required] {
				covers = false
				break
			}
		}

		if covers {
			out = append(out, op)
		}
	}

	return out
}

// NoneCoversAll indica que nenhum operador real cobre o carrinho todo.
// Aviso de usabilidade, não erro: agendar com "No Preference" continua possível.
func NoneCoversAll(filtered []upstream.Operator, cartServiceIDs []string) bool {
	return len(cartServiceIDs) > 0 && len(filtered) <= 1
}
