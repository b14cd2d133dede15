package models

import "time"

// UserQuestion is a free-text question submitted through the contact flow,
// forwarded to the admins and answerable through the reply button.
type UserQuestion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Replied   bool      `gorm:"default:false" json:"replied"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the UserQuestion model
func (UserQuestion) TableName() string {
	return "user_questions"
}
