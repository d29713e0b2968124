package api

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

// FlashPayload survives exactly one redirect in a short-lived cookie.
type FlashPayload struct {
	Errors  []string `json:"errors,omitempty"`
	Success string   `json:"success,omitempty"`
	Info    string   `json:"info,omitempty"`
}

func (flash FlashPayload) Empty() bool {
	return len(flash.Errors) == 0 && flash.Success == "" && flash.Info == ""
}

func (handler *Handler) setFlashCookie(c *fiber.Ctx, flash FlashPayload) {
	if flash.Empty() {
		return
	}
	encoded, err := json.Marshal(flash)
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(string(encoded)),
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(2 * time.Minute),
	})
}

// popFlashCookie reads and clears the pending flash payload, if any.
func (handler *Handler) popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := c.Cookies(flashCookieName)
	if raw == "" {
		return FlashPayload{}
	}

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return FlashPayload{}
	}
	flash := FlashPayload{}
	if err := json.Unmarshal([]byte(decoded), &flash); err != nil {
		return FlashPayload{}
	}
	return flash
}
