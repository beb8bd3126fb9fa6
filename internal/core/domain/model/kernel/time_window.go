package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// TimeWindow is the optional availability interval of a stop. Either bound may be absent.
type TimeWindow struct {
	from *TimeOfDay
	to   *TimeOfDay
}

// NewTimeWindow requires from <= to when both bounds are given.
func NewTimeWindow(from, to *TimeOfDay) (TimeWindow, error) {
	if from != nil {
		if err := from.Validate(); err != nil {
			return TimeWindow{}, err
		}
	}
	if to != nil {
		if err := to.Validate(); err != nil {
			return TimeWindow{}, err
		}
	}
	if from != nil && to != nil && to.Before(*from) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window",
			fmt.Errorf("availableFrom %s is after availableTo %s", from, to),
		)
	}

	return TimeWindow{from: copyTime(from), to: copyTime(to)}, nil
}

// OpenTimeWindow is a window without bounds.
func OpenTimeWindow() TimeWindow {
	return TimeWindow{}
}

func (w TimeWindow) From() *TimeOfDay {
	return copyTime(w.from)
}

func (w TimeWindow) To() *TimeOfDay {
	return copyTime(w.to)
}

func (w TimeWindow) IsOpen() bool {
	return w.from == nil && w.to == nil
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s]", optionalString(w.from), optionalString(w.to))
}

func copyTime(t *TimeOfDay) *TimeOfDay {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func optionalString(t *TimeOfDay) string {
	if t == nil {
		return "-"
	}
	return t.String()
}
