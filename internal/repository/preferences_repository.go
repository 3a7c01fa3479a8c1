package repository

import (
	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"gorm.io/gorm"
)

type PreferencesRepository struct {
	DB *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) *PreferencesRepository {
	return &PreferencesRepository{DB: db}
}

func (r *PreferencesRepository) FindByUser(userID uint) (*model.UserPreferences, error) {
	var prefs model.UserPreferences
	err := r.DB.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// Upsert stores the user's preferences, replacing any earlier row.
func (r *PreferencesRepository) Upsert(prefs *model.UserPreferences) error {
	var existing model.UserPreferences
	err := r.DB.Where("user_id = ?", prefs.UserID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(prefs).Error
	}
	if err != nil {
		return err
	}

	prefs.ID = existing.ID
	prefs.CreatedAt = existing.CreatedAt
	return r.DB.Save(prefs).Error
}
