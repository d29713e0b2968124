package services

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/mkendrick/keepsake/internal/models"
)

const maxNameLength = 25

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$|^\d{10}$`)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrNameNotAlpha     = errors.New("name must be alphabetic")
	ErrPhoneInvalid     = errors.New("invalid phone number")
	ErrBirthdayRequired = errors.New("date of birth is required")
	ErrCategoryInvalid  = errors.New("unknown category")
)

// ContactInput carries a submitted contact form before normalization.
type ContactInput struct {
	FirstName   string
	LastName    string
	Birthday    string
	Category    string
	PhoneNumber string
}

// ValidateContactName enforces the contact naming rules: required,
// alphabetic, at most 25 characters.
func ValidateContactName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	if len([]rune(trimmed)) > maxNameLength {
		return ErrNameTooLong
	}
	for _, r := range trimmed {
		if !unicode.IsLetter(r) {
			return ErrNameNotAlpha
		}
	}
	return nil
}

// FormatPhoneNumber normalizes a valid phone number to ###-###-#### form.
// Returns ErrPhoneInvalid for anything that is not ten digits, dashed or not.
func FormatPhoneNumber(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !phonePattern.MatchString(trimmed) {
		return "", ErrPhoneInvalid
	}
	if strings.Contains(trimmed, "-") {
		return trimmed, nil
	}
	return trimmed[0:3] + "-" + trimmed[3:6] + "-" + trimmed[6:10], nil
}

// CapitalizeName upper-cases the first letter and lower-cases the rest.
func CapitalizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	runes := []rune(strings.ToLower(trimmed))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ParseBirthday parses the form's date input in the given location.
func ParseBirthday(raw string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, ErrBirthdayRequired
	}
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, location)
	if err != nil {
		return time.Time{}, ErrInvalidBirthday
	}
	return parsed, nil
}

// ValidateContactInput checks every field of a submitted contact form and
// returns one message per failing field, in form order. An empty slice means
// the input is acceptable.
func ValidateContactInput(input ContactInput, location *time.Location) []string {
	problems := make([]string, 0)

	if err := ValidateContactName(input.FirstName); err != nil {
		problems = append(problems, "First "+err.Error())
	}
	if err := ValidateContactName(input.LastName); err != nil {
		problems = append(problems, "Last "+err.Error())
	}
	if _, err := FormatPhoneNumber(input.PhoneNumber); err != nil {
		problems = append(problems, "Enter 10 digits in this format: ###-###-#### or ##########.")
	}
	if _, err := ParseBirthday(input.Birthday, location); err != nil {
		problems = append(problems, "Enter the date of birth as YYYY-MM-DD.")
	}
	if !models.IsValidCategory(strings.ToLower(strings.TrimSpace(input.Category))) {
		problems = append(problems, "Pick a category from the list.")
	}

	return problems
}

// BuildContact turns validated input into a contact owned by the given user,
// with its reminder triple resolved from the owner's defaults.
func BuildContact(input ContactInput, userID uint, location *time.Location, categoryDefaults []models.CategoryDefault, globalDefault models.ReminderFlags) (models.Contact, error) {
	if problems := ValidateContactInput(input, location); len(problems) > 0 {
		return models.Contact{}, errors.New(problems[0])
	}

	birthday, err := ParseBirthday(input.Birthday, location)
	if err != nil {
		return models.Contact{}, err
	}
	phone, err := FormatPhoneNumber(input.PhoneNumber)
	if err != nil {
		return models.Contact{}, err
	}

	category := strings.ToLower(strings.TrimSpace(input.Category))
	flags := EffectiveFlags(category, categoryDefaults, globalDefault)

	return models.Contact{
		UserID:        userID,
		FirstName:     CapitalizeName(input.FirstName),
		LastName:      CapitalizeName(input.LastName),
		Birthday:      birthday,
		Category:      category,
		PhoneNumber:   phone,
		DayReminder:   flags.Day,
		WeekReminder:  flags.Week,
		MonthReminder: flags.Month,
	}, nil
}
