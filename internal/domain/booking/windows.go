package booking

import "github.com/BruksfildServices01/spa-booking/internal/models"

// ===============================
// Encadeamento de horários
// ===============================

// Duração usada na montagem do payload quando o serviço veio sem duração.
// Só se aplica na submissão; a atribuição de exibição usa a duração crua.
const FallbackDurationMin = 30

// Nome exibido quando nenhum operador foi escolhido.
const NoPreferenceName = "No Preference"

type ServiceWindow struct {
	ServiceID   string
	ServiceName string
	StartMinute int
	EndMinute   int
}

// ChainServiceWindows percorre o carrinho na ordem e produz janelas
// contíguas e sem sobreposição a partir do início do slot escolhido.
// Cálculo autoritativo da submissão — nunca reaproveita os timeSlot
// já gravados nos itens.
func ChainServiceWindows(items []models.CartItem, slotStartMinute int) []ServiceWindow {
	windows := make([]ServiceWindow, 0, len(items))

	cursor := slotStartMinute
	for _, item := range items {
		dur := item.DurationMin
		if dur <= 0 {
			dur = FallbackDurationMin
		}

		windows = append(windows, ServiceWindow{
			ServiceID:   item.ServiceID,
			ServiceName: item.Name,
			StartMinute: cursor,
			EndMinute:   cursor + dur,
		})
		cursor += dur
	}

	return windows
}

// AssignSlotTimes grava o contexto de agendamento em cada item para
// exibição: horário encadeado formatado, operador e data escolhidos.
// Aqui a duração crua é usada como está, mesmo zerada.
func AssignSlotTimes(
	items []models.CartItem,
	slotStartMinute int,
	operatorName string,
	date string,
	day string,
) []models.CartItem {

	if operatorName == "" {
		operatorName = NoPreferenceName
	}

	out := make([]models.CartItem, len(items))
	cursor := slotStartMinute

	for i, item := range items {
		item.TimeSlot = FormatMinute(cursor)
		item.Operator = operatorName
		item.SelectedDate = date
		item.SelectedDay = day

		out[i] = item
		cursor += item.DurationMin
	}

	return out
}

// DistinctServiceIDs retorna os ids de serviço do carrinho, sem repetição,
// na ordem da primeira ocorrência.
func DistinctServiceIDs(items []models.CartItem) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))

	for _, item := range items {
		if !seen[item.ServiceID] {
			seen[item.ServiceID] = true
			ids = append(ids, item.ServiceID)
		}
	}
	return ids
}
