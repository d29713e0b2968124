package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) ShowHome(c *fiber.Ctx) error {
	if user, err := handler.authenticateRequest(c); err == nil {
		c.Locals(contextUserKey, user)
	}
	return handler.render(c, "home", fiber.Map{
		"Title": "Keepsake",
	})
}

func (handler *Handler) ShowSignIn(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/contacts", fiber.StatusSeeOther)
	}
	return handler.render(c, "signin", fiber.Map{
		"Title": "Keepsake | Sign In",
	})
}

func (handler *Handler) ShowRegister(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/contacts", fiber.StatusSeeOther)
	}
	return handler.render(c, "register", fiber.Map{
		"Title": "Keepsake | Register",
	})
}
