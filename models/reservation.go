package models

import "time"

const (
	ReservationPending   = "pendente"
	ReservationConfirmed = "confirmada"
	ReservationCancelled = "cancelada"
	ReservationDone      = "concluída"
)

// ValidReservationStatus verifica o status da reserva.
func ValidReservationStatus(status string) bool {
	switch status {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationDone:
		return true
	}
	return false
}

type Reservation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Date       time.Time `gorm:"not null" json:"date"`
	TimeStart  string    `gorm:"type:varchar(8);not null" json:"time_start"`
	TimeEnd    string    `gorm:"type:varchar(8);not null" json:"time_end"`
	People     int       `gorm:"not null" json:"people"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pendente'" json:"status"`
	TableID    *uint     `gorm:"index" json:"table_id,omitempty"`
	Contact    *string   `gorm:"type:varchar(50)" json:"contact,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
