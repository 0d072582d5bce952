package models

import "time"

// Cargos aceitos pelo sistema.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleCashier    = "cashier"
	RoleWaiter     = "waiter"
	RoleSupervisor = "supervisor"
	RoleChef       = "chef"
)

var validRoles = map[string]bool{
	RoleAdmin:      true,
	RoleManager:    true,
	RoleCashier:    true,
	RoleWaiter:     true,
	RoleSupervisor: true,
	RoleChef:       true,
}

// ValidRole verifica se o cargo pertence ao conjunto fixo.
func ValidRole(role string) bool {
	return validRoles[role]
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
