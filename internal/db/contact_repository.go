package db

import (
	"github.com/mkendrick/keepsake/internal/models"
	"gorm.io/gorm"
)

type ContactRepository struct {
	database *gorm.DB
}

func NewContactRepository(database *gorm.DB) *ContactRepository {
	return &ContactRepository{database: database}
}

func (repo *ContactRepository) FindByID(userID uint, contactID uint) (models.Contact, error) {
	var contact models.Contact
	if err := repo.database.
		Where("id = ? AND user_id = ?", contactID, userID).
		First(&contact).Error; err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

// ListSorted returns the user's contacts ordered by last name,
// case-insensitively, then first name.
func (repo *ContactRepository) ListSorted(userID uint) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("lower(last_name) ASC, lower(first_name) ASC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (repo *ContactRepository) Create(contact *models.Contact) error {
	return repo.database.Create(contact).Error
}

func (repo *ContactRepository) Save(contact *models.Contact) error {
	return repo.database.Save(contact).Error
}

func (repo *ContactRepository) Delete(userID uint, contactID uint) (bool, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", contactID, userID).
		Delete(&models.Contact{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ContactRepository) UpdateFlags(userID uint, contactID uint, flags models.ReminderFlags) (bool, error) {
	result := repo.database.Model(&models.Contact{}).
		Where("id = ? AND user_id = ?", contactID, userID).
		Updates(map[string]any{
			"day_reminder":   flags.Day,
			"week_reminder":  flags.Week,
			"month_reminder": flags.Month,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateFlagsForAll overwrites the stored flags of every contact of the user;
// part of the apply-to-all bulk operation.
func (repo *ContactRepository) UpdateFlagsForAll(userID uint, flags models.ReminderFlags) error {
	return repo.database.Model(&models.Contact{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"day_reminder":   flags.Day,
			"week_reminder":  flags.Week,
			"month_reminder": flags.Month,
		}).Error
}

// UpdateFlagsForCategory overwrites the stored flags of the user's contacts in
// one category, leaving every other category untouched.
func (repo *ContactRepository) UpdateFlagsForCategory(userID uint, category string, flags models.ReminderFlags) error {
	return repo.database.Model(&models.Contact{}).
		Where("user_id = ? AND category = ?", userID, category).
		Updates(map[string]any{
			"day_reminder":   flags.Day,
			"week_reminder":  flags.Week,
			"month_reminder": flags.Month,
		}).Error
}

// ListFlaggedWithOwners returns every contact (across all users) with at
// least one reminder flag enabled, joined with the owning user. This is the
// sweep's single read.
func (repo *ContactRepository) ListFlaggedWithOwners() ([]models.FlaggedContact, error) {
	rows := make([]models.FlaggedContact, 0)
	if err := repo.database.Model(&models.Contact{}).
		Select("contacts.id AS contact_id, contacts.first_name, contacts.last_name, contacts.birthday, " +
			"contacts.day_reminder, contacts.week_reminder, contacts.month_reminder, " +
			"users.username AS owner_username, users.email AS owner_email").
		Joins("INNER JOIN users ON users.id = contacts.user_id").
		Where("contacts.day_reminder OR contacts.week_reminder OR contacts.month_reminder").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
