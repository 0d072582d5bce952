package models

import "time"

const (
	PaymentPending = "pendente"
	PaymentPaid    = "pago"
	PaymentPartial = "parcial"
)

// ValidPaymentStatus verifica o status de pagamento de pedidos e locações.
func ValidPaymentStatus(status string) bool {
	return status == PaymentPending || status == PaymentPaid || status == PaymentPartial
}

// Order é um pedido do restaurante. O total é sempre recalculado no servidor
// a partir dos preços dos produtos no momento da criação.
type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UnitID        uint        `gorm:"not null;index" json:"unit_id"`
	TableID       *uint       `gorm:"index" json:"table_id,omitempty"`
	CustomerID    *uint       `gorm:"index" json:"customer_id,omitempty"`
	Customer      *Customer   `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"customer,omitempty"`
	UserID        uint        `gorm:"not null;index" json:"user_id"`
	Status        string      `gorm:"type:varchar(20);not null;default:'novo'" json:"status"`
	Total         float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	PaymentStatus string      `gorm:"type:varchar(20);not null;default:'pendente'" json:"payment_status"`
	PaymentMethod *string     `gorm:"type:varchar(30)" json:"payment_method,omitempty"`
	Notes         *string     `gorm:"type:text" json:"notes,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}
