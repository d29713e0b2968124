package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	app.Get("/", handler.ShowHome)
	app.Get("/signin", handler.ShowSignIn)
	app.Get("/register", handler.ShowRegister)

	auth := app.Group("/api/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/signin", handler.SignIn)
	auth.Post("/signout", handler.SignOut)

	contacts := app.Group("/contacts", handler.AuthRequired)
	contacts.Get("", handler.ShowContacts)
	contacts.Get("/new", handler.ShowNewContact)
	contacts.Post("/new", handler.CreateContact)
	contacts.Get("/:contactID/edit", handler.ShowEditContact)
	contacts.Post("/:contactID/edit", handler.UpdateContact)
	contacts.Post("/:contactID/destroy", handler.DestroyContact)
	contacts.Get("/:contactID/reminder", handler.ShowReminder)
	contacts.Post("/:contactID/reminder", handler.SetReminderFlags)
	contacts.Post("/:contactID/test-reminder", handler.SendTestReminder)

	settings := app.Group("/settings", handler.AuthRequired)
	settings.Get("", handler.ShowSettings)
	settings.Post("/defaults", handler.ApplyDefaultsToAll)
	settings.Post("/category", handler.ApplyCategoryDefaults)
	settings.Post("/password", handler.ChangePassword)
	settings.Post("/delete-account", handler.DeleteAccount)
}
