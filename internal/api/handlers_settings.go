package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mkendrick/keepsake/internal/models"
	"github.com/mkendrick/keepsake/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) ShowSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}

	defaults, err := handler.repos.CategoryDefaults.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load category defaults")
	}

	return handler.render(c, "settings", fiber.Map{
		"Title":            "Keepsake | Settings",
		"User":             user,
		"CategoryDefaults": defaults,
		"Categories":       models.Categories(),
	})
}

// ApplyDefaultsToAll overwrites the flags of every contact, every category
// default, and the user's global default triple in one stroke.
func (handler *Handler) ApplyDefaultsToAll(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}
	flags := parseReminderFlags(c)

	if err := handler.repos.Users.UpdateDefaultFlags(user.ID, flags); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update default preference")
	}
	if err := handler.repos.CategoryDefaults.UpdateFlagsForAll(user.ID, flags); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update category defaults")
	}
	if err := handler.repos.Contacts.UpdateFlagsForAll(user.ID, flags); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update contacts")
	}

	handler.setFlashCookie(c, FlashPayload{Success: "Preference set for all contacts."})
	return redirectOrJSON(c, "/settings")
}

// ApplyCategoryDefaults overwrites the flags of the user's contacts in one
// category and the standing default for that category, leaving every other
// category untouched.
func (handler *Handler) ApplyCategoryDefaults(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}

	category := strings.ToLower(strings.TrimSpace(c.FormValue("category")))
	if !models.IsValidCategory(category) {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "/settings", "unknown category")
	}
	flags := parseReminderFlags(c)

	if err := handler.repos.CategoryDefaults.UpdateFlags(user.ID, category, flags); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update category default")
	}
	if err := handler.repos.Contacts.UpdateFlagsForCategory(user.ID, category, flags); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update contacts")
	}

	handler.setFlashCookie(c, FlashPayload{
		Success: "Preference set for all " + categoryLabel(category) + " contacts.",
	})
	return redirectOrJSON(c, "/settings")
}

// DeleteAccount removes the user together with every contact and category
// default they own. Requires the current password as confirmation.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}

	currentPassword := strings.TrimSpace(c.FormValue("current_password"))
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "/settings", "invalid current password")
	}

	if err := handler.repos.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}

	currentPassword := strings.TrimSpace(c.FormValue("current_password"))
	newPassword := strings.TrimSpace(c.FormValue("new_password"))
	confirmPassword := strings.TrimSpace(c.FormValue("confirm_password"))

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "/settings", "invalid current password")
	}
	if newPassword != confirmPassword {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "/settings", "passwords must match")
	}
	if newPassword == currentPassword {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "/settings", "new password must differ")
	}
	if err := services.ValidatePassword(newPassword); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "/settings", err.Error())
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	if err := handler.repos.Users.UpdatePassword(user.ID, string(passwordHash), false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	handler.setFlashCookie(c, FlashPayload{Success: "Password updated."})
	return redirectOrJSON(c, "/settings")
}
