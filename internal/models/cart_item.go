package models

// Item do carrinho. Serializado como JSON no storage (Redis),
// nunca persiste via gorm — o carrinho ainda não é um agendamento.
type CartItem struct {
	ServiceID   string   `json:"id"`
	Name        string   `json:"name"`
	DurationMin int      `json:"duration"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`

	// Localização em que o item foi adicionado. Todos os itens de um
	// carrinho compartilham a mesma localização (troca de unidade limpa o carrinho).
	VendorLocationUUID string `json:"vendor_location_uuid"`

	// Contexto de agendamento — preenchido apenas após a escolha do horário.
	Operator     string `json:"operator,omitempty"`
	SelectedDate string `json:"selectedDate,omitempty"`
	SelectedDay  string `json:"selectedDay,omitempty"`
	TimeSlot     string `json:"timeSlot,omitempty"`
}
