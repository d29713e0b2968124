package services

import (
	"fmt"

	"github.com/mkendrick/keepsake/internal/models"
)

// Horizon is one of the three fixed reminder lead times, in days.
type Horizon int

const (
	HorizonDay   Horizon = 1
	HorizonWeek  Horizon = 7
	HorizonMonth Horizon = 30
)

// Message renders the human phrasing used in reminder emails.
func (horizon Horizon) Message() string {
	return CountdownMessage(int(horizon))
}

// CountdownMessage phrases an arbitrary day distance the way the reminder
// emails do; test reminders use it for distances outside the three horizons.
func CountdownMessage(daysUntil int) string {
	switch daysUntil {
	case 0:
		return "today!"
	case 1:
		return "tomorrow!"
	default:
		return fmt.Sprintf("in %d days", daysUntil)
	}
}

// MatchHorizon reports which horizon, if any, fires for the given day
// distance under the given flags. The three distances are disjoint, so at
// most one comparison can hold; should that invariant ever break, the
// tightest horizon wins because it is checked first.
func MatchHorizon(daysUntil int, flags models.ReminderFlags) (Horizon, bool) {
	switch {
	case daysUntil == int(HorizonDay) && flags.Day:
		return HorizonDay, true
	case daysUntil == int(HorizonWeek) && flags.Week:
		return HorizonWeek, true
	case daysUntil == int(HorizonMonth) && flags.Month:
		return HorizonMonth, true
	default:
		return 0, false
	}
}
