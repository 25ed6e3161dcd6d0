package booking

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/spa-booking/internal/timezone"
)

// ===============================
// Slots de horário
// ===============================

const (
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
	PeriodEvening   = "evening"
)

type Slot struct {
	Date        string `json:"date"`
	StartMinute int    `json:"start_minute"`
	EndMinute   int    `json:"end_minute"`
	Available   bool   `json:"available"`

	// Derivados para exibição.
	Time   string `json:"time"`
	Period string `json:"period"`
}

// FormatMinute formata minutos desde a meia-noite como "10:00 AM".
func FormatMinute(m int) string {
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(m) * time.Minute).Format("3:04 PM")
}

// PeriodFor classifica o slot pelo horário de início:
// antes de 12h manhã, antes de 17h tarde, depois noite.
func PeriodFor(startMinute int) string {
	switch {
	case startMinute < 12*60:
		return PeriodMorning
	case startMinute < 17*60:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// IsPast aplica a política de horário vencido: para o dia de hoje,
// qualquer slot que começa antes do minuto atual é tratado como
// indisponível, ignorando a flag do servidor.
func IsPast(slotDate string, startMinute int, now time.Time) bool {
	if slotDate != now.Format("2006-01-02") {
		return false
	}
	return startMinute < timezone.MinuteOfDay(now)
}

// RequestKey identifica uma busca de slots por (data, serviços).
// Usada para descartar respostas/seleções que ficaram obsoletas.
func RequestKey(date string, serviceIDs []string) string {
	ids := make([]string, len(serviceIDs))
	copy(ids, serviceIDs)
	sort.Strings(ids)
	return date + "|" + strings.Join(ids, ",")
}

// GroupByPeriod separa slots em manhã/tarde/noite preservando a ordem.
func GroupByPeriod(slots []Slot) map[string][]Slot {
	grouped := map[string][]Slot{
		PeriodMorning:   {},
		PeriodAfternoon: {},
		PeriodEvening:   {},
	}
	for _, s := range slots {
		grouped[s.Period] = append(grouped[s.Period], s)
	}
	return grouped
}

// WeekdayName retorna o dia da semana de uma data YYYY-MM-DD ("Monday"...).
func WeekdayName(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Weekday().String(), nil
}
