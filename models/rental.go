package models

import "time"

const (
	RentalPending   = "pendente"
	RentalConfirmed = "confirmado"
	RentalDone      = "concluído"
	RentalCancelled = "cancelado"
)

// ValidRentalStatus verifica o status do contrato de locação.
func ValidRentalStatus(status string) bool {
	switch status {
	case RentalPending, RentalConfirmed, RentalDone, RentalCancelled:
		return true
	}
	return false
}

// Rental é um contrato de locação para eventos. Notes guarda o tipo de
// evento em texto livre e alimenta o relatório por tipo de evento.
type Rental struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CustomerID    uint      `gorm:"not null;index" json:"customer_id"`
	Customer      Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	EventDate     time.Time `gorm:"not null" json:"event_date"`
	Total         float64   `gorm:"type:decimal(10,2);not null" json:"total"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pendente'" json:"status"`
	PaymentStatus string    `gorm:"type:varchar(20);not null;default:'pendente'" json:"payment_status"`
	Notes         *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
