package models

import "time"

// User represents anyone who has started the bot. Rows are upserted on every
// /start and double as the broadcast recipient list.
type User struct {
	UserID    int64     `gorm:"primaryKey" json:"user_id"` // Telegram user id
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
