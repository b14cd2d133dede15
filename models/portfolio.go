package models

import "time"

// PortfolioCategory groups portfolio items. CallbackID is the stable token in
// the category-selection button; items reference it rather than the row id.
type PortfolioCategory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Emoji      string    `gorm:"default:'📌'" json:"emoji"`
	Name       string    `gorm:"not null" json:"name"`
	CallbackID string    `gorm:"uniqueIndex;not null" json:"callback_id"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the PortfolioCategory model
func (PortfolioCategory) TableName() string {
	return "portfolio_categories"
}

// PortfolioItem is one published work sample. Category holds the category's
// callback token; deleting a category does not cascade, so the reference may
// dangle and the item simply stops being reachable from the menu.
type PortfolioItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Category    string    `gorm:"not null;index" json:"category"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	PhotoID     *string   `json:"photo_id"` // Telegram file id, nil for text-only items
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the PortfolioItem model
func (PortfolioItem) TableName() string {
	return "portfolio"
}
