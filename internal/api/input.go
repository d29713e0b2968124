package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mkendrick/keepsake/internal/models"
	"github.com/mkendrick/keepsake/internal/services"
)

type credentialsInput struct {
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	RememberMe      bool   `json:"remember_me" form:"remember_me"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	credentials.Username = services.NormalizeUsername(credentials.Username)
	credentials.Email = services.NormalizeEmail(credentials.Email)
	credentials.Password = strings.TrimSpace(credentials.Password)
	credentials.ConfirmPassword = strings.TrimSpace(credentials.ConfirmPassword)
	credentials.RememberMe = credentials.RememberMe || parseBoolValue(c.FormValue("remember_me"))

	if credentials.Username == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}
	return credentials, nil
}

func parseContactInput(c *fiber.Ctx) services.ContactInput {
	return services.ContactInput{
		FirstName:   strings.TrimSpace(c.FormValue("first_name")),
		LastName:    strings.TrimSpace(c.FormValue("last_name")),
		Birthday:    strings.TrimSpace(c.FormValue("birthday")),
		Category:    strings.ToLower(strings.TrimSpace(c.FormValue("category"))),
		PhoneNumber: strings.TrimSpace(c.FormValue("phone_number")),
	}
}

// parseReminderFlags reads the three checkbox fields of a reminder form;
// absent boxes simply come through false.
func parseReminderFlags(c *fiber.Ctx) models.ReminderFlags {
	return models.ReminderFlags{
		Day:   parseBoolValue(c.FormValue("day")),
		Week:  parseBoolValue(c.FormValue("week")),
		Month: parseBoolValue(c.FormValue("month")),
	}
}

func parseBoolValue(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	return normalized == "1" || normalized == "true" || normalized == "on" || normalized == "yes"
}
