package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/mkendrick/keepsake/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestApplyCategoryDefaultsTouchesOnlyThatCategory(t *testing.T) {
	app, database, _ := newTestApp(t)
	user := createTestAccount(t, database, "margaret", "Sunnyday#1")
	authCookie := signInAndExtractAuthCookie(t, app, "margaret", "Sunnyday#1")

	family := createOwnedContact(t, database, user.ID, "June", "Mcintyre", models.ReminderFlags{})
	if err := database.Model(&models.Contact{}).Where("id = ?", family.ID).
		Update("category", models.CategoryFamily).Error; err != nil {
		t.Fatalf("recategorize contact: %v", err)
	}
	friend := createOwnedContact(t, database, user.ID, "Omar", "Reyes", models.ReminderFlags{Day: true})

	response := postForm(t, app, "/settings/category", authCookie, url.Values{
		"category": {"family"},
		"week":     {"true"},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}

	var reloadedFamily models.Contact
	if err := database.First(&reloadedFamily, family.ID).Error; err != nil {
		t.Fatalf("load family contact: %v", err)
	}
	if reloadedFamily.DayReminder || !reloadedFamily.WeekReminder || reloadedFamily.MonthReminder {
		t.Fatalf("expected family contact week-only, got %+v", reloadedFamily.Flags())
	}

	var reloadedFriend models.Contact
	if err := database.First(&reloadedFriend, friend.ID).Error; err != nil {
		t.Fatalf("load friend contact: %v", err)
	}
	if !reloadedFriend.DayReminder || reloadedFriend.WeekReminder || reloadedFriend.MonthReminder {
		t.Fatalf("expected friend contact untouched, got %+v", reloadedFriend.Flags())
	}

	var familyDefault models.CategoryDefault
	if err := database.Where("user_id = ? AND category = ?", user.ID, models.CategoryFamily).
		First(&familyDefault).Error; err != nil {
		t.Fatalf("load family default: %v", err)
	}
	if familyDefault.Day || !familyDefault.Week || familyDefault.Month {
		t.Fatalf("expected family default week-only, got %+v", familyDefault.Flags())
	}
}

func TestApplyCategoryDefaultsRejectsUnknownCategory(t *testing.T) {
	app, database, _ := newTestApp(t)
	createTestAccount(t, database, "margaret", "Sunnyday#1")
	authCookie := signInAndExtractAuthCookie(t, app, "margaret", "Sunnyday#1")

	response := postForm(t, app, "/settings/category", authCookie, url.Values{
		"category": {"bestie"},
		"week":     {"true"},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 back to settings, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/settings" {
		t.Fatalf("expected redirect to /settings, got %q", location)
	}
}

func TestApplyDefaultsToAllOverwritesEverything(t *testing.T) {
	app, database, _ := newTestApp(t)
	user := createTestAccount(t, database, "margaret", "Sunnyday#1")
	authCookie := signInAndExtractAuthCookie(t, app, "margaret", "Sunnyday#1")

	createOwnedContact(t, database, user.ID, "June", "Mcintyre", models.ReminderFlags{Day: true})
	createOwnedContact(t, database, user.ID, "Omar", "Reyes", models.ReminderFlags{})

	response := postForm(t, app, "/settings/defaults", authCookie, url.Values{
		"month": {"true"},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}

	var contacts []models.Contact
	if err := database.Where("user_id = ?", user.ID).Find(&contacts).Error; err != nil {
		t.Fatalf("load contacts: %v", err)
	}
	for _, contact := range contacts {
		if contact.DayReminder || contact.WeekReminder || !contact.MonthReminder {
			t.Fatalf("expected contact %d month-only, got %+v", contact.ID, contact.Flags())
		}
	}

	var defaults []models.CategoryDefault
	if err := database.Where("user_id = ?", user.ID).Find(&defaults).Error; err != nil {
		t.Fatalf("load category defaults: %v", err)
	}
	for _, categoryDefault := range defaults {
		if categoryDefault.Day || categoryDefault.Week || !categoryDefault.Month {
			t.Fatalf("expected %s default month-only, got %+v", categoryDefault.Category, categoryDefault.Flags())
		}
	}

	var reloaded models.User
	if err := database.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if reloaded.DayReminder || reloaded.WeekReminder || !reloaded.MonthReminder {
		t.Fatalf("expected user default month-only, got %+v", reloaded.DefaultFlags())
	}
}

func TestChangePasswordRequiresCurrentPassword(t *testing.T) {
	app, database, _ := newTestApp(t)
	user := createTestAccount(t, database, "margaret", "Sunnyday#1")
	authCookie := signInAndExtractAuthCookie(t, app, "margaret", "Sunnyday#1")

	response := postForm(t, app, "/settings/password", authCookie, url.Values{
		"current_password": {"WrongPass#1"},
		"new_password":     {"Another#Pass2"},
		"confirm_password": {"Another#Pass2"},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 back to settings, got %d", response.StatusCode)
	}

	var reloaded models.User
	if err := database.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(reloaded.PasswordHash), []byte("Sunnyday#1")) != nil {
		t.Fatal("expected the old password to remain valid")
	}
}

func TestChangePasswordUpdatesHashAndClearsForcedFlag(t *testing.T) {
	app, database, _ := newTestApp(t)
	user := createTestAccount(t, database, "margaret", "Sunnyday#1")
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).
		Update("must_change_password", true).Error; err != nil {
		t.Fatalf("flag user: %v", err)
	}
	authCookie := signInAndExtractAuthCookie(t, app, "margaret", "Sunnyday#1")

	response := postForm(t, app, "/settings/password", authCookie, url.Values{
		"current_password": {"Sunnyday#1"},
		"new_password":     {"Another#Pass2"},
		"confirm_password": {"Another#Pass2"},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}

	var reloaded models.User
	if err := database.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(reloaded.PasswordHash), []byte("Another#Pass2")) != nil {
		t.Fatal("expected the new password to be stored")
	}
	if reloaded.MustChangePassword {
		t.Fatal("expected the forced change flag to be cleared")
	}
}

func TestDeleteAccountRemovesUserAndOwnedRows(t *testing.T) {
	app, database, _ := newTestApp(t)
	user := createTestAccount(t, database, "margaret", "Sunnyday#1")
	other := createTestAccount(t, database, "omar", "Sunnyday#1")
	createOwnedContact(t, database, user.ID, "June", "Mcintyre", models.ReminderFlags{Week: true})
	createOwnedContact(t, database, other.ID, "Zoe", "Abbott", models.ReminderFlags{})
	authCookie := signInAndExtractAuthCookie(t, app, "margaret", "Sunnyday#1")

	denied := postForm(t, app, "/settings/delete-account", authCookie, url.Values{
		"current_password": {"WrongPass#1"},
	})
	defer denied.Body.Close()
	if denied.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 back to settings, got %d", denied.StatusCode)
	}
	if location := denied.Header.Get("Location"); location != "/settings" {
		t.Fatalf("expected redirect to /settings, got %q", location)
	}

	response := postForm(t, app, "/settings/delete-account", authCookie, url.Values{
		"current_password": {"Sunnyday#1"},
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/" {
		t.Fatalf("expected redirect to /, got %q", location)
	}

	var userCount int64
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).Count(&userCount).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if userCount != 0 {
		t.Fatal("expected the account to be deleted")
	}

	var contactCount int64
	if err := database.Model(&models.Contact{}).Where("user_id = ?", user.ID).Count(&contactCount).Error; err != nil {
		t.Fatalf("count contacts: %v", err)
	}
	if contactCount != 0 {
		t.Fatal("expected owned contacts to be deleted")
	}

	var defaultCount int64
	if err := database.Model(&models.CategoryDefault{}).Where("user_id = ?", user.ID).Count(&defaultCount).Error; err != nil {
		t.Fatalf("count category defaults: %v", err)
	}
	if defaultCount != 0 {
		t.Fatal("expected owned category defaults to be deleted")
	}

	var otherContacts int64
	if err := database.Model(&models.Contact{}).Where("user_id = ?", other.ID).Count(&otherContacts).Error; err != nil {
		t.Fatalf("count other contacts: %v", err)
	}
	if otherContacts != 1 {
		t.Fatal("expected the other account's contacts to survive")
	}
}

func TestSettingsPageShowsCategoryDefaults(t *testing.T) {
	app, database, _ := newTestApp(t)
	createTestAccount(t, database, "margaret", "Sunnyday#1")
	authCookie := signInAndExtractAuthCookie(t, app, "margaret", "Sunnyday#1")

	response := getPage(t, app, "/settings", authCookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
}
