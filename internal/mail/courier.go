package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkendrick/keepsake/internal/services"
)

const defaultEndpoint = "https://api.courier.com/send"

// Courier delivers reminder emails through the Courier REST API. When no
// access token is configured the client is disabled and Send becomes a
// logged no-op, so a bare development setup still runs sweeps.
type Courier struct {
	token    string
	eventID  string
	brand    string
	endpoint string
	enabled  bool
	client   *http.Client
}

type Config struct {
	Token    string
	EventID  string
	Brand    string
	Endpoint string
}

func NewCourier(config Config) *Courier {
	endpoint := strings.TrimSpace(config.Endpoint)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	token := strings.TrimSpace(config.Token)

	return &Courier{
		token:    token,
		eventID:  strings.TrimSpace(config.EventID),
		brand:    strings.TrimSpace(config.Brand),
		endpoint: endpoint,
		enabled:  token != "",
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func NewCourierFromEnv() *Courier {
	return NewCourier(Config{
		Token:    os.Getenv("COURIER_AUTH_TOKEN"),
		EventID:  os.Getenv("COURIER_EVENT_ID"),
		Brand:    os.Getenv("COURIER_BRAND"),
		Endpoint: os.Getenv("COURIER_ENDPOINT"),
	})
}

func (courier *Courier) Enabled() bool {
	return courier.enabled
}

type sendPayload struct {
	Event     string            `json:"event"`
	Brand     string            `json:"brand,omitempty"`
	Recipient string            `json:"recipient"`
	Profile   sendProfile       `json:"profile"`
	Data      map[string]string `json:"data"`
}

type sendProfile struct {
	Email string `json:"email"`
}

// Send delivers one reminder email. Callers treat a failure as affecting
// only this event.
func (courier *Courier) Send(ctx context.Context, event services.ReminderEvent) error {
	if !courier.enabled {
		log.Printf("mail: courier disabled, dropping reminder for %s (%s)", event.FullName, event.Message)
		return nil
	}

	payload := sendPayload{
		Event:     courier.eventID,
		Brand:     courier.brand,
		Recipient: event.RecipientUsername,
		Profile:   sendProfile{Email: event.RecipientEmail},
		Data: map[string]string{
			"fullname":  event.FullName,
			"firstName": firstWord(event.FullName),
			"msg":       event.Message,
			"age":       fmt.Sprintf("%d", event.Age),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, courier.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+courier.token)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := courier.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("courier status %d: %s", resp.StatusCode, string(snippet))
	}

	return nil
}

func firstWord(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
