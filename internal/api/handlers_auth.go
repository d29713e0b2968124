package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mkendrick/keepsake/internal/models"
	"github.com/mkendrick/keepsake/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, redirectPath string, messages ...string) error {
	if acceptsJSON(c) {
		return apiError(c, status, messages[0])
	}
	handler.setFlashCookie(c, FlashPayload{Errors: messages})
	return c.Redirect(redirectPath, fiber.StatusSeeOther)
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "/register", "invalid input")
	}

	problems := make([]string, 0)
	if err := services.ValidateUsername(credentials.Username); err != nil {
		problems = append(problems, err.Error())
	}
	if err := services.ValidateEmail(credentials.Email); err != nil {
		problems = append(problems, err.Error())
	}
	if err := services.ValidatePassword(credentials.Password); err != nil {
		problems = append(problems, err.Error())
	}
	if credentials.Password != credentials.ConfirmPassword {
		problems = append(problems, "passwords must match")
	}

	if usernameTaken, err := handler.repos.Users.ExistsByUsername(credentials.Username); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check username")
	} else if usernameTaken {
		problems = append(problems, "username is taken")
	}
	if emailTaken, err := handler.repos.Users.ExistsByNormalizedEmail(credentials.Email); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check email")
	} else if emailTaken {
		problems = append(problems, "email is taken")
	}

	if len(problems) > 0 {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "/register", problems...)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Username:     credentials.Username,
		Email:        credentials.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.repos.Users.Create(&user); err != nil {
		return handler.respondAuthError(c, fiber.StatusConflict, "/register", "account already exists")
	}

	if err := handler.repos.CategoryDefaults.SeedForUser(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to seed category defaults")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, FlashPayload{Info: "Welcome!"})
	return c.Redirect("/contacts", fiber.StatusSeeOther)
}

func (handler *Handler) SignIn(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "/signin", "invalid credentials")
	}

	user, err := handler.repos.Users.FindByUsername(credentials.Username)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "/signin", "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "/signin", "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	if user.MustChangePassword {
		handler.setFlashCookie(c, FlashPayload{Info: "Set a new password to finish signing in."})
		return redirectOrJSON(c, "/settings")
	}

	handler.setFlashCookie(c, FlashPayload{Info: "Welcome!"})
	return redirectOrJSON(c, "/contacts")
}

func (handler *Handler) SignOut(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/signin", fiber.StatusSeeOther)
}
