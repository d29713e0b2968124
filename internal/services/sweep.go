package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mkendrick/keepsake/internal/models"
)

// ReminderEvent is the transient record of one due reminder. It is produced
// during a sweep, handed to the sender, and never persisted.
type ReminderEvent struct {
	ContactID         uint
	RecipientUsername string
	RecipientEmail    string
	FullName          string
	DaysUntil         int
	Horizon           Horizon
	Age               int
	Message           string
}

// Sender delivers one reminder to its recipient. Implementations must treat
// each call independently; the sweep logs failures and moves on.
type Sender interface {
	Send(ctx context.Context, event ReminderEvent) error
}

// ContactSource yields the contacts eligible for reminder evaluation.
type ContactSource interface {
	ListFlaggedWithOwners() ([]models.FlaggedContact, error)
}

// Sweeper walks all flagged contacts once a day and dispatches a reminder
// for each one whose birthday is exactly 1, 7, or 30 days away under its
// stored flags.
//
// Re-running a sweep on the same day re-sends the same reminders: no dedupe
// state is kept, by design, because the trigger fires once per day.
type Sweeper struct {
	contacts ContactSource
	sender   Sender
	location *time.Location
	hour     int

	// Serializes runs in case an external trigger ever overlaps them.
	mu sync.Mutex
}

func NewSweeper(contacts ContactSource, sender Sender, location *time.Location, hour int) *Sweeper {
	if location == nil {
		location = time.Local
	}
	if hour < 0 || hour > 23 {
		hour = 8
	}
	return &Sweeper{
		contacts: contacts,
		sender:   sender,
		location: location,
		hour:     hour,
	}
}

// Start schedules Run once a day at the configured hour in the configured
// location, until the context is cancelled.
func (sweeper *Sweeper) Start(ctx context.Context) {
	go func() {
		for {
			next := sweeper.nextRunAfter(time.Now())
			timer := time.NewTimer(time.Until(next))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				if _, err := sweeper.Run(ctx, time.Now()); err != nil {
					log.Printf("sweep: %v", err)
				}
			}
		}
	}()
}

func (sweeper *Sweeper) nextRunAfter(now time.Time) time.Time {
	local := now.In(sweeper.location)
	next := time.Date(local.Year(), local.Month(), local.Day(), sweeper.hour, 0, 0, 0, sweeper.location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run evaluates every flagged contact against "now" and dispatches one
// reminder per match. Contacts with unusable birthdays and failed sends are
// logged and skipped; only the storage read is fatal.
func (sweeper *Sweeper) Run(ctx context.Context, now time.Time) ([]ReminderEvent, error) {
	sweeper.mu.Lock()
	defer sweeper.mu.Unlock()

	rows, err := sweeper.contacts.ListFlaggedWithOwners()
	if err != nil {
		return nil, fmt.Errorf("load flagged contacts: %w", err)
	}

	today := now.In(sweeper.location)
	events := make([]ReminderEvent, 0)

	for _, row := range rows {
		daysUntil, err := DaysUntilBirthday(row.Birthday, today)
		if err != nil {
			log.Printf("sweep: contact %d has unusable birthday, skipping: %v", row.ContactID, err)
			continue
		}

		horizon, matched := MatchHorizon(daysUntil, row.Flags())
		if !matched {
			continue
		}

		event := ReminderEvent{
			ContactID:         row.ContactID,
			RecipientUsername: row.OwnerUsername,
			RecipientEmail:    row.OwnerEmail,
			FullName:          row.FullName(),
			DaysUntil:         daysUntil,
			Horizon:           horizon,
			Age:               AgeOnNextBirthday(row.Birthday, today),
			Message:           horizon.Message(),
		}
		events = append(events, event)

		if err := sweeper.sender.Send(ctx, event); err != nil {
			log.Printf("sweep: send reminder for contact %d failed: %v", row.ContactID, err)
		}
	}

	return events, nil
}
