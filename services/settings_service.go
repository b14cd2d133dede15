package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appConfig "github.com/milliybrend/reklama-bot/config"
	"github.com/milliybrend/reklama-bot/models"
)

// Setting keys edited through the admin menu.
const (
	SettingPhone1   = "phone1"
	SettingPhone2   = "phone2"
	SettingTelegram = "telegram"
	SettingAddress  = "address"
	SettingAbout    = "about_text"
)

// DefaultAboutText is seeded on first startup and used as the fallback when
// the about_text setting is missing.
const DefaultAboutText = `🎯 Milliy Brend Reklama Agentligi
"Grafika, poligrafiya va innovatsion reklama markazi"

Asosiy yo'nalishlar:
• Grafika va SMM dizayn
• Poligrafiya (vizitka, flyer, buklet, menyu, katalog)
• 3D burtma harflar va hajmli yozuvlar
• Brending va rebrending
• Veb-sayt va taqdimot dizayni

Bizning maqsadimiz – sizning biznesingizni yangi bosqichga olib chiqish va brendingizni bozorda ajralib turadigan darajaga chiqarish.`

// SettingsService is the data-access layer for free-text settings. Defaults
// come from the static config contact block so the bot degrades gracefully on
// an empty table.
type SettingsService struct {
	db       *gorm.DB
	defaults map[string]string
}

// DefaultSettings builds the seed and fallback map from the static contact
// block.
func DefaultSettings(contact appConfig.ContactInfo) map[string]string {
	return map[string]string{
		SettingPhone1:   contact.Phone1,
		SettingPhone2:   contact.Phone2,
		SettingTelegram: contact.Telegram,
		SettingAddress:  contact.Address,
		SettingAbout:    DefaultAboutText,
	}
}

// NewSettingsService creates a SettingsService. The defaults map provides the
// per-key fallback for missing rows.
func NewSettingsService(db *gorm.DB, defaults map[string]string) *SettingsService {
	if defaults == nil {
		defaults = map[string]string{}
	}
	return &SettingsService{db: db, defaults: defaults}
}

// SeedDefaults inserts the default settings rows when the table is empty.
func (s *SettingsService) SeedDefaults() error {
	var count int64
	if err := s.db.Model(&models.Setting{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count settings: %w", err)
	}
	if count > 0 {
		return nil
	}
	for key, value := range s.defaults {
		if err := s.db.Create(&models.Setting{Key: key, Value: value}).Error; err != nil {
			return fmt.Errorf("failed to seed setting %q: %w", key, err)
		}
	}
	return nil
}

// Get returns the stored value for a key, falling back to the default and
// finally to the empty string.
func (s *SettingsService) Get(key string) string {
	var setting models.Setting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.defaults[key]
	}
	if err != nil {
		return s.defaults[key]
	}
	return setting.Value
}

// Set upserts one setting value.
func (s *SettingsService) Set(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}

// All returns every stored setting as a map.
func (s *SettingsService) All() (map[string]string, error) {
	var rows []models.Setting
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}
