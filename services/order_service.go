package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/milliybrend/reklama-bot/models"
	"github.com/milliybrend/reklama-bot/utils"
)

// orderIDBase offsets generated order numbers so the very first order is
// MBR-1001 rather than MBR-1.
const orderIDBase = 1000

// OrderService is the data-access layer for orders.
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates an OrderService backed by the given database.
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// NextOrderID derives the next identifier from the current order count.
// Generation is not atomic with respect to concurrent confirmations; at the
// request volume of a single agency this is an accepted limitation.
func (s *OrderService) NextOrderID() (string, error) {
	var count int64
	if err := s.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to count orders: %w", err)
	}
	return fmt.Sprintf("%s-%d", utils.OrderIDPrefix, orderIDBase+count+1), nil
}

// Create persists a new order.
func (s *OrderService) Create(order *models.Order) error {
	if order.Status == "" {
		order.Status = models.StatusNew
	}
	if order.Files == "" {
		order.Files = "[]"
	}
	if order.ArchiveKeys == "" {
		order.ArchiveKeys = "[]"
	}
	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID returns the order with the given identifier, or nil if none exists.
func (s *OrderService) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := s.db.Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", id, err)
	}
	return &order, nil
}

// ListRecent returns the newest orders, most recent first.
func (s *OrderService) ListRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Order("created_at DESC").Limit(limit).Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListNew returns the newest orders still in the NEW status.
func (s *OrderService) ListNew(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("status = ?", models.StatusNew).
		Order("created_at DESC").Limit(limit).Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list new orders: %w", err)
	}
	return orders, nil
}

// ListByUser returns all orders placed by one customer, newest first.
func (s *OrderService) ListByUser(userID int64) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// Search matches the query as a case-insensitive substring against the order
// id, company name, customer name and phone, returning the newest 10 matches.
func (s *OrderService) Search(query string) ([]models.Order, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var orders []models.Order
	err := s.db.Where(
		"lower(id) LIKE ? OR lower(company_name) LIKE ? OR lower(user_name) LIKE ? OR lower(phone) LIKE ?",
		pattern, pattern, pattern, pattern,
	).Order("created_at DESC").Limit(10).Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets the status of an existing order and refreshes its
// timestamp. It reports false when no such order exists; any status string is
// accepted, transitions are unconstrained.
func (s *OrderService) UpdateStatus(id, status string) (bool, error) {
	result := s.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update status of %s: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// SetArchiveKeys records the S3 keys of archived attachments on an order.
func (s *OrderService) SetArchiveKeys(id string, keys []string) error {
	err := s.db.Model(&models.Order{}).Where("id = ?", id).
		Update("archive_keys", models.EncodeStringList(keys)).Error
	if err != nil {
		return fmt.Errorf("failed to record archive keys for %s: %w", id, err)
	}
	return nil
}

// Count returns the total number of orders.
func (s *OrderService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
