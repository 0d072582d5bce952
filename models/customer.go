package models

import "time"

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     *string   `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address   *string   `gorm:"type:varchar(255)" json:"address,omitempty"`
	Document  *string   `gorm:"type:varchar(30)" json:"document,omitempty"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	Type      *string   `gorm:"type:varchar(20)" json:"type,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
