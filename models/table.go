package models

import "time"

const (
	TableAvailable = "disponível"
	TableOccupied  = "ocupada"
	TableReserved  = "reservada"
)

// ValidTableStatus verifica se o status da mesa pertence ao conjunto fixo.
func ValidTableStatus(status string) bool {
	return status == TableAvailable || status == TableOccupied || status == TableReserved
}

// Table é uma mesa de uma unidade. O número é único dentro da unidade
// (verificado no controller para não conflitar com mesas desativadas).
type Table struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UnitID    uint      `gorm:"not null;index" json:"unit_id"`
	Unit      Unit      `gorm:"foreignKey:UnitID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Number    int       `gorm:"not null" json:"number"`
	Seats     int       `gorm:"not null" json:"seats"`
	Status    string    `gorm:"type:varchar(20);not null;default:'disponível'" json:"status"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
