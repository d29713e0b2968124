package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	// Standing default triple applied to brand-new contacts whose category
	// has no row in category_defaults yet, and overwritten by the
	// apply-to-all bulk operation.
	DayReminder   bool `gorm:"not null;default:false"`
	WeekReminder  bool `gorm:"not null;default:false"`
	MonthReminder bool `gorm:"not null;default:false"`

	TestReminderUsed   bool      `gorm:"not null;default:false"`
	MustChangePassword bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
}

func (user *User) DefaultFlags() ReminderFlags {
	return ReminderFlags{
		Day:   user.DayReminder,
		Week:  user.WeekReminder,
		Month: user.MonthReminder,
	}
}
