package kernel

import (
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// TimeOfDayLayout is the wire format of a TimeOfDay.
const TimeOfDayLayout = "15:04"

const minutesPerDay = 24 * 60

var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError("time of day must be created via NewTimeOfDay")

// TimeOfDay is a wall-clock time with minute precision, used for availability windows.
type TimeOfDay struct {
	minutes int
	guard   guard.ConstructorGuard
}

// Noon separates morning pickups from afternoon deliveries.
var Noon = TimeOfDay{minutes: 12 * 60, guard: guard.NewConstructorGuard()}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay{minutes: hour*60 + minute, guard: guard.NewConstructorGuard()}, nil
}

// TimeOfDayFromMinutes builds a time from minutes since midnight, as stored in the database.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minutes", minutes, 0, minutesPerDay-1)
	}
	return TimeOfDay{minutes: minutes, guard: guard.NewConstructorGuard()}, nil
}

// ParseTimeOfDay parses "15:04".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", fmt.Errorf("%q: %w", s, err))
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}

// Minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// Add shifts the time by d, saturating at 00:00 and 23:59.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	m := t.minutes + int(d/time.Minute)
	m = max(0, min(m, minutesPerDay-1))
	return TimeOfDay{minutes: m, guard: guard.NewConstructorGuard()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
