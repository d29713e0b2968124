package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mkendrick/keepsake/internal/db"
	"github.com/mkendrick/keepsake/internal/models"
	"github.com/mkendrick/keepsake/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type recordingSender struct {
	mu     sync.Mutex
	events []services.ReminderEvent
}

func (sender *recordingSender) Send(_ context.Context, event services.ReminderEvent) error {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	sender.events = append(sender.events, event)
	return nil
}

func (sender *recordingSender) sent() []services.ReminderEvent {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	return append([]services.ReminderEvent(nil), sender.events...)
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *recordingSender) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	templatesDir := filepath.Join(filepath.Dir(apiDir), "templates")
	databasePath := filepath.Join(t.TempDir(), "keepsake-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	sender := &recordingSender{}
	handler, err := NewHandler(database, "test-secret-key", templatesDir, time.UTC, sender, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, sender
}

func createTestAccount(t *testing.T, database *gorm.DB, username string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.NewCategoryDefaultRepository(database).SeedForUser(user.ID); err != nil {
		t.Fatalf("seed category defaults: %v", err)
	}
	return user
}

func signInAndExtractAuthCookie(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	form := url.Values{
		"username": {username},
		"password": {password},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signin request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected signin status 303, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == "keepsake_auth" && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in signin response")
	return ""
}

func postForm(t *testing.T, app *fiber.App, path string, authCookie string, form url.Values) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	return response
}

func getPage(t *testing.T, app *fiber.App, path string, authCookie string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	return response
}

func createOwnedContact(t *testing.T, database *gorm.DB, userID uint, firstName string, lastName string, flags models.ReminderFlags) models.Contact {
	t.Helper()

	contact := models.Contact{
		UserID:        userID,
		FirstName:     firstName,
		LastName:      lastName,
		Birthday:      time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
		Category:      models.CategoryFriend,
		PhoneNumber:   "555-123-4567",
		DayReminder:   flags.Day,
		WeekReminder:  flags.Week,
		MonthReminder: flags.Month,
	}
	if err := database.Create(&contact).Error; err != nil {
		t.Fatalf("create contact: %v", err)
	}
	return contact
}
