package models

import "time"

// Tenant registra uma instalação de cliente com banco de dados isolado.
// Mora no banco mestre, nunca no banco de um tenant.
type Tenant struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	DBName     string    `gorm:"type:varchar(64);unique;not null" json:"db_name"`
	DBHost     string    `gorm:"type:varchar(255);not null" json:"db_host"`
	DBUser     string    `gorm:"type:varchar(64);not null" json:"db_user"`
	DBPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	DBPort     int       `gorm:"not null;default:3306" json:"db_port"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
