package models

import "time"

// Service is one orderable catalog entry. CallbackID is the stable opaque
// token embedded in the service-selection button.
type Service struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Emoji      string    `gorm:"default:'🔹'" json:"emoji"`
	Name       string    `gorm:"not null" json:"name"`
	CallbackID string    `gorm:"uniqueIndex;not null" json:"callback_id"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
