package services

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidBirthday is returned when a contact's stored birthday is missing
// or unusable. The sweep logs and skips such contacts.
var ErrInvalidBirthday = errors.New("invalid birthday")

// DateAtLocation truncates a moment to midnight of its calendar day in the
// given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DaysUntilBirthday returns the number of whole calendar days from today to
// the next occurrence of the birthday's month and day. The birthday's year is
// ignored. The result is 0 when the birthday is today and never exceeds 366.
//
// Both dates are normalized to midnight before subtracting, so time-of-day
// and DST residues cannot shift the count. If this year's occurrence has
// already passed, the candidate moves to next year; that single rule also
// covers the December-to-January wrap.
func DaysUntilBirthday(birthday time.Time, today time.Time) (int, error) {
	if birthday.IsZero() {
		return 0, ErrInvalidBirthday
	}

	location := today.Location()
	todayMidnight := DateAtLocation(today, location)

	candidate := time.Date(todayMidnight.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, location)
	if candidate.Before(todayMidnight) {
		candidate = time.Date(todayMidnight.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, location)
	}

	days := int(math.Ceil(candidate.Sub(todayMidnight).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return days, nil
}

// AgeOnNextBirthday returns the age the contact turns on the upcoming
// occurrence of their birthday. Purely decorative; a missing birthday yields
// 0 rather than an error so it cannot block a reminder.
func AgeOnNextBirthday(birthday time.Time, today time.Time) int {
	if birthday.IsZero() {
		return 0
	}

	location := today.Location()
	todayMidnight := DateAtLocation(today, location)

	occurrenceYear := todayMidnight.Year()
	candidate := time.Date(occurrenceYear, birthday.Month(), birthday.Day(), 0, 0, 0, 0, location)
	if candidate.Before(todayMidnight) {
		occurrenceYear++
	}

	age := occurrenceYear - birthday.Year()
	if age < 0 {
		return 0
	}
	return age
}
