package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkendrick/keepsake/internal/models"
)

const (
	authCookieName  = "keepsake_auth"
	flashCookieName = "keepsake_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
