package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/mkendrick/keepsake/internal/services"
)

func (handler *Handler) ShowReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}
	contactID, err := parseContactID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid contact id")
	}

	contact, err := handler.repos.Contacts.FindByID(user.ID, contactID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "contact not found")
	}

	return handler.render(c, "reminder", fiber.Map{
		"Title":            "Keepsake | Reminder",
		"Contact":          contact,
		"TestReminderUsed": user.TestReminderUsed,
	})
}

func (handler *Handler) SetReminderFlags(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}
	contactID, err := parseContactID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid contact id")
	}

	updated, err := handler.repos.Contacts.UpdateFlags(user.ID, contactID, parseReminderFlags(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to set reminder preference")
	}
	if !updated {
		return apiError(c, fiber.StatusNotFound, "contact not found")
	}

	handler.setFlashCookie(c, FlashPayload{Success: "Reminder preference saved."})
	return redirectOrJSON(c, "/contacts")
}

// SendTestReminder fires one immediate reminder email for a contact so the
// user can verify delivery. Allowed exactly once per account.
func (handler *Handler) SendTestReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}
	contactID, err := parseContactID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid contact id")
	}

	contact, err := handler.repos.Contacts.FindByID(user.ID, contactID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "contact not found")
	}

	if user.TestReminderUsed {
		return handler.respondAuthError(c, fiber.StatusForbidden, "/contacts",
			"Cannot send more than one test message per account!")
	}

	today := services.DateAtLocation(c.Context().Time(), handler.location)
	daysUntil, err := services.DaysUntilBirthday(contact.Birthday, today)
	if err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, "contact has no usable birthday")
	}

	event := services.ReminderEvent{
		ContactID:         contact.ID,
		RecipientUsername: user.Username,
		RecipientEmail:    user.Email,
		FullName:          contact.FullName(),
		DaysUntil:         daysUntil,
		Age:               services.AgeOnNextBirthday(contact.Birthday, today),
		Message:           services.CountdownMessage(daysUntil),
	}

	if err := handler.repos.Users.MarkTestReminderUsed(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to record test reminder")
	}

	if err := handler.sender.Send(c.UserContext(), event); err != nil {
		log.Printf("test reminder for contact %d failed: %v", contact.ID, err)
	}

	handler.setFlashCookie(c, FlashPayload{Success: "Test email sent. Check your inbox."})
	return redirectOrJSON(c, "/contacts")
}
