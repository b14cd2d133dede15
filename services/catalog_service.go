package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/milliybrend/reklama-bot/models"
)

// CatalogService is the data-access layer for services, portfolio categories
// and portfolio items.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a CatalogService backed by the given database.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

var defaultServices = []models.Service{
	{Emoji: "🎨", Name: "Grafika dizayni (post, banner, logo...)", CallbackID: "service_grafika"},
	{Emoji: "🖨", Name: "Poligrafiya (vizitka, flyer, buklet, katalog)", CallbackID: "service_poligrafiya"},
	{Emoji: "🧱", Name: "3D lettering va hajmli yozuvlar", CallbackID: "service_3d"},
	{Emoji: "🧬", Name: "Brending / Rebrending", CallbackID: "service_brending"},
	{Emoji: "📱", Name: "SMM dizayn (Instagram, TikTok, YouTube)", CallbackID: "service_smm"},
	{Emoji: "🧾", Name: "Boshqa xizmat (izohda yozaman)", CallbackID: "service_boshqa"},
}

var defaultCategories = []models.PortfolioCategory{
	{Emoji: "📌", Name: "3D lettering va hajmli yozuvlar", CallbackID: "portfolio_3d"},
	{Emoji: "🖨", Name: "Banner va poligrafiya", CallbackID: "portfolio_banner"},
	{Emoji: "🎨", Name: "Logotip va brending", CallbackID: "portfolio_logo"},
	{Emoji: "📱", Name: "SMM dizaynlar", CallbackID: "portfolio_smm"},
}

// SeedDefaults inserts the default catalog rows when the tables are empty,
// so a fresh install has something to sell before the admin edits anything.
func (s *CatalogService) SeedDefaults() error {
	var count int64
	if err := s.db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if count == 0 {
		for i := range defaultServices {
			svc := defaultServices[i]
			svc.IsActive = true
			if err := s.db.Create(&svc).Error; err != nil {
				return fmt.Errorf("failed to seed service %q: %w", svc.Name, err)
			}
		}
	}

	if err := s.db.Model(&models.PortfolioCategory{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count portfolio categories: %w", err)
	}
	if count == 0 {
		for i := range defaultCategories {
			cat := defaultCategories[i]
			cat.IsActive = true
			if err := s.db.Create(&cat).Error; err != nil {
				return fmt.Errorf("failed to seed category %q: %w", cat.Name, err)
			}
		}
	}
	return nil
}

// ActiveServices returns the orderable services in menu order.
func (s *CatalogService) ActiveServices() ([]models.Service, error) {
	var services []models.Service
	err := s.db.Where("is_active = ?", true).Order("id").Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active services: %w", err)
	}
	return services, nil
}

// AllServices returns every service row, active or not.
func (s *CatalogService) AllServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Order("id").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// AddService creates a service with a freshly minted callback token.
func (s *CatalogService) AddService(emoji, name string) (*models.Service, error) {
	svc := models.Service{
		Emoji:      emoji,
		Name:       name,
		CallbackID: fmt.Sprintf("service_%d", time.Now().UnixMilli()),
		IsActive:   true,
	}
	if err := s.db.Create(&svc).Error; err != nil {
		return nil, fmt.Errorf("failed to add service %q: %w", name, err)
	}
	return &svc, nil
}

// DeleteService removes a service row; false means it was already gone.
func (s *CatalogService) DeleteService(id uint) (bool, error) {
	result := s.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete service %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ServiceByCallbackID resolves a service-selection token, nil when unknown.
func (s *CatalogService) ServiceByCallbackID(callbackID string) (*models.Service, error) {
	var svc models.Service
	err := s.db.Where("callback_id = ?", callbackID).First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load service %q: %w", callbackID, err)
	}
	return &svc, nil
}

// ActiveCategories returns the browsable portfolio categories in menu order.
func (s *CatalogService) ActiveCategories() ([]models.PortfolioCategory, error) {
	var cats []models.PortfolioCategory
	err := s.db.Where("is_active = ?", true).Order("id").Find(&cats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active categories: %w", err)
	}
	return cats, nil
}

// AllCategories returns every portfolio category row.
func (s *CatalogService) AllCategories() ([]models.PortfolioCategory, error) {
	var cats []models.PortfolioCategory
	if err := s.db.Order("id").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return cats, nil
}

// AddCategory creates a portfolio category with a fresh callback token.
func (s *CatalogService) AddCategory(emoji, name string) (*models.PortfolioCategory, error) {
	cat := models.PortfolioCategory{
		Emoji:      emoji,
		Name:       name,
		CallbackID: fmt.Sprintf("portfolio_%d", time.Now().UnixMilli()),
		IsActive:   true,
	}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, fmt.Errorf("failed to add category %q: %w", name, err)
	}
	return &cat, nil
}

// DeleteCategory removes a category row. Items referencing its token are left
// in place; they simply become unreachable from the menu.
func (s *CatalogService) DeleteCategory(id uint) (bool, error) {
	result := s.db.Delete(&models.PortfolioCategory{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete category %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ItemsByCategory returns the active items of one category, newest first.
func (s *CatalogService) ItemsByCategory(categoryToken string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := s.db.Where("category = ? AND is_active = ?", categoryToken, true).
		Order("id DESC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items of %q: %w", categoryToken, err)
	}
	return items, nil
}

// AllItems returns every portfolio item row, newest first.
func (s *CatalogService) AllItems() ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	if err := s.db.Order("id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	return items, nil
}

// AddItem creates a portfolio item under the category identified by its token.
func (s *CatalogService) AddItem(categoryToken, title, description string, photoID *string) (*models.PortfolioItem, error) {
	item := models.PortfolioItem{
		Category:    categoryToken,
		Title:       title,
		Description: description,
		PhotoID:     photoID,
		IsActive:    true,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to add portfolio item %q: %w", title, err)
	}
	return &item, nil
}

// DeleteItem removes a portfolio item row; false means it was already gone.
func (s *CatalogService) DeleteItem(id uint) (bool, error) {
	result := s.db.Delete(&models.PortfolioItem{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete portfolio item %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
