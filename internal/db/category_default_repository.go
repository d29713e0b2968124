package db

import (
	"github.com/mkendrick/keepsake/internal/models"
	"gorm.io/gorm"
)

type CategoryDefaultRepository struct {
	database *gorm.DB
}

func NewCategoryDefaultRepository(database *gorm.DB) *CategoryDefaultRepository {
	return &CategoryDefaultRepository{database: database}
}

// SeedForUser creates an all-false default row for every category the user
// does not have one for yet. Called once at registration.
func (repo *CategoryDefaultRepository) SeedForUser(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for _, category := range models.Categories() {
			var matched int64
			if err := tx.Model(&models.CategoryDefault{}).
				Where("user_id = ? AND category = ?", userID, category).
				Count(&matched).Error; err != nil {
				return err
			}
			if matched > 0 {
				continue
			}
			if err := tx.Create(&models.CategoryDefault{
				UserID:   userID,
				Category: category,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (repo *CategoryDefaultRepository) ListForUser(userID uint) ([]models.CategoryDefault, error) {
	defaults := make([]models.CategoryDefault, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Find(&defaults).Error; err != nil {
		return nil, err
	}
	return defaults, nil
}

func (repo *CategoryDefaultRepository) FindForCategory(userID uint, category string) (models.CategoryDefault, error) {
	var def models.CategoryDefault
	if err := repo.database.
		Where("user_id = ? AND category = ?", userID, category).
		First(&def).Error; err != nil {
		return models.CategoryDefault{}, err
	}
	return def, nil
}

// UpdateFlags overwrites one category's standing default triple; part of the
// apply-to-category bulk operation.
func (repo *CategoryDefaultRepository) UpdateFlags(userID uint, category string, flags models.ReminderFlags) error {
	return repo.database.Model(&models.CategoryDefault{}).
		Where("user_id = ? AND category = ?", userID, category).
		Updates(map[string]any{
			"day":   flags.Day,
			"week":  flags.Week,
			"month": flags.Month,
		}).Error
}

// UpdateFlagsForAll overwrites every category's standing default triple; part
// of the apply-to-all bulk operation.
func (repo *CategoryDefaultRepository) UpdateFlagsForAll(userID uint, flags models.ReminderFlags) error {
	return repo.database.Model(&models.CategoryDefault{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"day":   flags.Day,
			"week":  flags.Week,
			"month": flags.Month,
		}).Error
}
