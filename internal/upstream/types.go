package upstream

// Tipos do contrato com a plataforma externa de gestão do salão.
// O contrato é fixo; nós apenas consumimos.

type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DurationMin int      `json:"duration"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type Operator struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Image      string   `json:"image"`
	ServiceIDs []string `json:"service_ids"`
}

type RawSlot struct {
	Date        string `json:"date"` // YYYY-MM-DD
	StartMinute int    `json:"start_minute"`
	EndMinute   int    `json:"end_minute"`
	Available   bool   `json:"available"`
}

type SlotsResponse struct {
	Slots            []RawSlot `json:"slots"`
	MaxAvailableDate string    `json:"max_available_date"`
}

type BookingService struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	StartMinute int    `json:"start_time"`
	EndMinute   int    `json:"end_time"`
}

type CreateBookingRequest struct {
	LocationID     string           `json:"location_id"`
	Date           string           `json:"date"` // YYYY-MM-DD
	Comment        string           `json:"comment"`
	Status         string           `json:"status"`
	MergeSameStaff bool             `json:"merge_same_staff"`
	Total          float64          `json:"total"`
	Services       []BookingService `json:"services"`
}

type CreateBookingResponse struct {
	BookingID string `json:"booking_id"`
}
