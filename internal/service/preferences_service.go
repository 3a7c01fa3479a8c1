package service

import (
	"errors"

	"github.com/Lucifer-0905/ignitiaLearn/internal/model"
	"github.com/Lucifer-0905/ignitiaLearn/internal/repository"
	"gorm.io/gorm"
)

// PreferencesInput is the client-supplied preference set.
type PreferencesInput struct {
	LearningGoals        []string `json:"learningGoals"`
	PreferredCategories  []string `json:"preferredCategories"`
	WeeklyTimeCommitment int      `json:"weeklyTimeCommitment"`
	SkillLevel           string   `json:"skillLevel"`
}

type PreferencesService struct {
	prefsRepo *repository.PreferencesRepository
}

func NewPreferencesService(prefsRepo *repository.PreferencesRepository) *PreferencesService {
	return &PreferencesService{prefsRepo: prefsRepo}
}

// GetPreferences returns the user's stored preferences, or an empty
// set when none were saved yet.
func (s *PreferencesService) GetPreferences(userID uint) (*model.UserPreferences, error) {
	prefs, err := s.prefsRepo.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.UserPreferences{
			UserID:              userID,
			LearningGoals:       model.StringList{},
			PreferredCategories: model.StringList{},
		}, nil
	}
	return prefs, err
}

func (s *PreferencesService) SavePreferences(userID uint, input PreferencesInput) (*model.UserPreferences, error) {
	level := model.Level(input.SkillLevel)
	if input.SkillLevel != "" && !level.Valid() {
		level = model.LevelBeginner
	}

	// Unknown categories are filtered rather than rejected.
	categories := model.StringList{}
	for _, c := range input.PreferredCategories {
		if model.Category(c).Valid() {
			categories = append(categories, c)
		}
	}

	prefs := &model.UserPreferences{
		UserID:               userID,
		LearningGoals:        model.StringList(input.LearningGoals),
		PreferredCategories:  categories,
		WeeklyTimeCommitment: input.WeeklyTimeCommitment,
		SkillLevel:           level,
	}
	if err := s.prefsRepo.Upsert(prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
