package models

import "time"

const (
	CategoryFamily       = "family"
	CategoryFriend       = "friend"
	CategoryCoWorker     = "co-worker"
	CategoryAcquaintance = "acquaintance"
	CategoryOther        = "other"
)

// Categories lists the closed set of contact categories in display order.
func Categories() []string {
	return []string{
		CategoryFamily,
		CategoryFriend,
		CategoryCoWorker,
		CategoryAcquaintance,
		CategoryOther,
	}
}

func IsValidCategory(category string) bool {
	switch category {
	case CategoryFamily, CategoryFriend, CategoryCoWorker, CategoryAcquaintance, CategoryOther:
		return true
	default:
		return false
	}
}

// ReminderFlags is the day/week/month reminder triple used on contacts,
// user defaults, and category defaults alike.
type ReminderFlags struct {
	Day   bool `json:"day" form:"day"`
	Week  bool `json:"week" form:"week"`
	Month bool `json:"month" form:"month"`
}

func (flags ReminderFlags) Any() bool {
	return flags.Day || flags.Week || flags.Month
}

type Contact struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	FirstName   string    `gorm:"not null"`
	LastName    string    `gorm:"not null"`
	Birthday    time.Time `gorm:"not null"`
	Category    string    `gorm:"not null"`
	PhoneNumber string    `gorm:"not null"`

	// Flags are resolved from the owner's category default at creation time
	// and are authoritative afterwards; category default edits never touch
	// existing contacts outside the explicit bulk operations.
	DayReminder   bool `gorm:"not null;default:false"`
	WeekReminder  bool `gorm:"not null;default:false"`
	MonthReminder bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (contact *Contact) Flags() ReminderFlags {
	return ReminderFlags{
		Day:   contact.DayReminder,
		Week:  contact.WeekReminder,
		Month: contact.MonthReminder,
	}
}

func (contact *Contact) FullName() string {
	return contact.FirstName + " " + contact.LastName
}
