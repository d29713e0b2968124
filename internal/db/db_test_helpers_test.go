package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mkendrick/keepsake/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "keepsake-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createTestContact(t *testing.T, database *gorm.DB, userID uint, lastName string, category string, flags models.ReminderFlags) models.Contact {
	t.Helper()

	contact := models.Contact{
		UserID:        userID,
		FirstName:     "Test",
		LastName:      lastName,
		Birthday:      time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
		Category:      category,
		PhoneNumber:   "555-123-4567",
		DayReminder:   flags.Day,
		WeekReminder:  flags.Week,
		MonthReminder: flags.Month,
	}
	if err := database.Create(&contact).Error; err != nil {
		t.Fatalf("create contact %s: %v", lastName, err)
	}
	return contact
}
