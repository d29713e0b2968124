package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mkendrick/keepsake/internal/models"
	"github.com/mkendrick/keepsake/internal/services"
)

func parseContactID(c *fiber.Ctx) (uint, error) {
	contactID, err := strconv.ParseUint(c.Params("contactID"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(contactID), nil
}

func (handler *Handler) ShowContacts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}

	contacts, err := handler.repos.Contacts.ListSorted(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load contacts")
	}

	return handler.render(c, "contacts", fiber.Map{
		"Title":    "Keepsake | Contacts",
		"Contacts": contacts,
	})
}

func (handler *Handler) ShowNewContact(c *fiber.Ctx) error {
	return handler.render(c, "contact_form", fiber.Map{
		"Title":      "Keepsake | New Contact",
		"FormAction": "/contacts/new",
		"Categories": models.Categories(),
	})
}

func (handler *Handler) CreateContact(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}

	input := parseContactInput(c)
	if problems := services.ValidateContactInput(input, handler.location); len(problems) > 0 {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "/contacts/new", problems...)
	}

	defaults, err := handler.repos.CategoryDefaults.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load category defaults")
	}

	contact, err := services.BuildContact(input, user.ID, handler.location, defaults, user.DefaultFlags())
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "/contacts/new", err.Error())
	}

	if err := handler.repos.Contacts.Create(&contact); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create contact")
	}

	handler.setFlashCookie(c, FlashPayload{
		Success: contact.FullName() + " has been added to your contact list.",
	})
	return redirectOrJSON(c, "/contacts")
}

func (handler *Handler) ShowEditContact(c *fiber.Ctx) error {
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

	return handler.render(c, "contact_form", fiber.Map{
		"Title":      "Keepsake | Edit Contact",
		"FormAction": "/contacts/" + c.Params("contactID") + "/edit",
		"Contact":    contact,
		"Categories": models.Categories(),
	})
}

func (handler *Handler) UpdateContact(c *fiber.Ctx) error {
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

	input := parseContactInput(c)
	editPath := "/contacts/" + c.Params("contactID") + "/edit"
	if problems := services.ValidateContactInput(input, handler.location); len(problems) > 0 {
		return handler.respondAuthError(c, fiber.StatusBadRequest, editPath, problems...)
	}

	birthday, err := services.ParseBirthday(input.Birthday, handler.location)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, editPath, "invalid date of birth")
	}
	phone, err := services.FormatPhoneNumber(input.PhoneNumber)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, editPath, "invalid phone number")
	}

	// An edit never re-resolves reminder flags; the stored triple stays
	// authoritative even when the category changes.
	contact.FirstName = services.CapitalizeName(input.FirstName)
	contact.LastName = services.CapitalizeName(input.LastName)
	contact.Birthday = birthday
	contact.Category = input.Category
	contact.PhoneNumber = phone

	if err := handler.repos.Contacts.Save(&contact); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update contact")
	}

	handler.setFlashCookie(c, FlashPayload{Success: "Contact updated."})
	return redirectOrJSON(c, "/contacts")
}

func (handler *Handler) DestroyContact(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/signin", fiber.StatusSeeOther)
	}
	contactID, err := parseContactID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid contact id")
	}

	deleted, err := handler.repos.Contacts.Delete(user.ID, contactID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete contact")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "contact not found")
	}

	handler.setFlashCookie(c, FlashPayload{Success: "Contact deleted."})
	return redirectOrJSON(c, "/contacts")
}
