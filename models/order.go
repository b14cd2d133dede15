package models

import (
	"encoding/json"
	"time"
)

// Order represents one customer service request, from intake through
// fulfillment. The ID is a human-readable identifier (e.g. MBR-1024) assigned
// once at creation and never changed.
type Order struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"` // Telegram user id of the customer
	UserName    string    `json:"user_name"`
	Phone       string    `json:"phone"`
	ServiceType string    `json:"service_type"`
	CompanyName string    `json:"company_name"`
	Description string    `gorm:"type:text" json:"description"`
	SizeFormat  string    `json:"size_format"`
	Address     string    `json:"address"`
	Deadline    string    `json:"deadline"`
	BudgetRange string    `json:"budget_range"`
	Status      string    `gorm:"not null;default:'YANGI';index" json:"status"`
	Files       string    `gorm:"type:text;not null;default:'[]'" json:"files"`        // JSON array of FileRef
	ArchiveKeys string    `gorm:"type:text;not null;default:'[]'" json:"archive_keys"` // JSON array of S3 keys
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// FileRef is one attached file, kept as the transport's stable file identifier.
type FileRef struct {
	Type   string `json:"type"` // "photo" or "document"
	FileID string `json:"file_id"`
}

// FileRefs decodes the order's attached-file list. A malformed column decodes
// to an empty list rather than an error.
func (o *Order) FileRefs() []FileRef {
	var refs []FileRef
	if err := json.Unmarshal([]byte(o.Files), &refs); err != nil {
		return nil
	}
	return refs
}

// EncodeFileRefs serializes a file-reference list for the Files column.
// A nil list encodes as the empty array, matching the column default.
func EncodeFileRefs(refs []FileRef) string {
	if len(refs) == 0 {
		return "[]"
	}
	data, err := json.Marshal(refs)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// EncodeStringList serializes a plain string list (archive keys).
func EncodeStringList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}
