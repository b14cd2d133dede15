package services

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/milliybrend/reklama-bot/models"
)

// ErrAdminExists is returned when adding a worker identity that is already an
// active administrator.
var ErrAdminExists = errors.New("admin already exists")

// AdminStore is the slice of the store the access policy needs. AdminService
// implements it; tests may substitute their own.
type AdminStore interface {
	AdminByUserID(userID int64) (*models.Admin, error)
	ListActiveAdmins() ([]models.Admin, error)
}

// AdminService is the data-access layer for worker administrators.
type AdminService struct {
	db *gorm.DB
}

// NewAdminService creates an AdminService backed by the given database.
func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// AdminByUserID returns the active admin row for an identity, nil when the
// identity is not a store-backed admin.
func (s *AdminService) AdminByUserID(userID int64) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.Where("user_id = ? AND is_active = ?", userID, true).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load admin %d: %w", userID, err)
	}
	return &admin, nil
}

// ListActiveAdmins returns every active admin row, newest first.
func (s *AdminService) ListActiveAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	err := s.db.Where("is_active = ?", true).Order("created_at DESC").Find(&admins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

// AddWorker registers a new worker admin. Duplicate active identities return
// ErrAdminExists rather than a store error.
func (s *AdminService) AddWorker(userID int64, username, fullName string) (*models.Admin, error) {
	existing, err := s.AdminByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAdminExists
	}
	admin := models.Admin{
		UserID:   userID,
		Username: username,
		FullName: fullName,
		Role:     "worker",
		IsActive: true,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to add worker %d: %w", userID, err)
	}
	return &admin, nil
}

// RemoveWorker deletes a worker admin by identity; false means no such row.
func (s *AdminService) RemoveWorker(userID int64) (bool, error) {
	result := s.db.Where("user_id = ?", userID).Delete(&models.Admin{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove worker %d: %w", userID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// AccessPolicy decides whether a numeric identity is a super-admin, a regular
// admin or an ordinary customer. The store dependency is injected so the
// policy carries no database knowledge of its own.
type AccessPolicy struct {
	staticIDs    []int64
	superAdminID int64
	store        AdminStore
}

// NewAccessPolicy builds a policy over the static allow-list, the designated
// super-admin identity and the dynamic admin store. A zero super-admin id
// falls back to the first static entry.
func NewAccessPolicy(staticIDs []int64, superAdminID int64, store AdminStore) *AccessPolicy {
	return &AccessPolicy{staticIDs: staticIDs, superAdminID: superAdminID, store: store}
}

// IsSuperAdmin reports whether the identity has super-admin rights.
func (p *AccessPolicy) IsSuperAdmin(userID int64) bool {
	if p.superAdminID != 0 {
		return userID == p.superAdminID
	}
	return len(p.staticIDs) > 0 && userID == p.staticIDs[0]
}

// IsAdmin reports whether the identity may use the admin panel: static list
// membership, super-admin equality and an active store row are each
// individually sufficient.
func (p *AccessPolicy) IsAdmin(userID int64) bool {
	for _, id := range p.staticIDs {
		if id == userID {
			return true
		}
	}
	if p.IsSuperAdmin(userID) {
		return true
	}
	if p.store == nil {
		return false
	}
	admin, err := p.store.AdminByUserID(userID)
	if err != nil {
		// Treat a store failure as "not an admin"; the caller gets the
		// standard not-authorized reply and can retry.
		return false
	}
	return admin != nil
}

// AllAdminIDs returns the union of the static list, the active store rows and
// the super-admin identity, de-duplicated and in stable order.
func (p *AccessPolicy) AllAdminIDs() []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	add := func(id int64) {
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, id := range p.staticIDs {
		add(id)
	}
	add(p.superAdminID)
	if p.store != nil {
		if admins, err := p.store.ListActiveAdmins(); err == nil {
			// Stable order for the dynamic part regardless of store ordering.
			sort.Slice(admins, func(i, j int) bool { return admins[i].UserID < admins[j].UserID })
			for _, admin := range admins {
				add(admin.UserID)
			}
		}
	}
	return ids
}
