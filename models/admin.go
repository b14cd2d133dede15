package models

import "time"

// Admin is a store-backed worker administrator. The statically configured
// super-admin never appears here; it has full rights regardless of this table.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"uniqueIndex;not null" json:"user_id"` // Telegram user id
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `gorm:"default:'worker'" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}
