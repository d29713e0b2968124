package models

import "time"

// FlaggedContact is one row of the daily sweep query: a contact with at
// least one reminder flag enabled, joined with its owner's identity.
type FlaggedContact struct {
	ContactID     uint      `gorm:"column:contact_id"`
	FirstName     string    `gorm:"column:first_name"`
	LastName      string    `gorm:"column:last_name"`
	Birthday      time.Time `gorm:"column:birthday"`
	DayReminder   bool      `gorm:"column:day_reminder"`
	WeekReminder  bool      `gorm:"column:week_reminder"`
	MonthReminder bool      `gorm:"column:month_reminder"`
	OwnerUsername string    `gorm:"column:owner_username"`
	OwnerEmail    string    `gorm:"column:owner_email"`
}

func (row FlaggedContact) Flags() ReminderFlags {
	return ReminderFlags{
		Day:   row.DayReminder,
		Week:  row.WeekReminder,
		Month: row.MonthReminder,
	}
}

func (row FlaggedContact) FullName() string {
	return row.FirstName + " " + row.LastName
}
