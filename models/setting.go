package models

import "time"

// Setting is a free-text key/value pair (contact details, about text).
// Absent keys fall back to hardcoded defaults in the settings service.
type Setting struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
