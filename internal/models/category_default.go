package models

// CategoryDefault is one user's standing reminder triple for one category.
// Five rows per user, seeded at registration, unique on (user_id, category).
type CategoryDefault struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"uniqueIndex:idx_category_defaults_user_category;not null"`
	Category string `gorm:"uniqueIndex:idx_category_defaults_user_category;not null"`

	Day   bool `gorm:"not null;default:false"`
	Week  bool `gorm:"not null;default:false"`
	Month bool `gorm:"not null;default:false"`
}

func (def *CategoryDefault) Flags() ReminderFlags {
	return ReminderFlags{Day: def.Day, Week: def.Week, Month: def.Month}
}
