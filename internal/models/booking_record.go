package models

import "time"

// Snapshot local de um agendamento confirmado na plataforma do salão.
// Usado pela página de confirmação; a fonte de verdade é o sistema externo.
type BookingRecord struct {
	ID uint `gorm:"primaryKey" json:"-"`

	BookingID string `gorm:"size:64;uniqueIndex;not null" json:"booking_id"`

	// Chave de identidade do dono (mesma chave usada no storage do carrinho).
	OwnerKey string `gorm:"size:120;index;not null" json:"-"`

	LocationID string `gorm:"size:64;not null" json:"location_id"`
	Date       string `gorm:"size:10;not null" json:"date"`
	Comment    string `gorm:"size:255" json:"comment"`

	Status         string  `gorm:"size:20;default:'tentative'" json:"status"`
	MergeSameStaff bool    `json:"merge_same_staff"`
	Total          float64 `json:"total"`

	// JSON: itens do carrinho e janelas de serviço no momento da confirmação.
	ItemsJSON    string `gorm:"type:text" json:"-"`
	ServicesJSON string `gorm:"type:text" json:"-"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
