// Package timeclock converts wall-clock "HH:MM" strings onto a linear
// minute axis anchored at the business day-reset hour, so that times on
// either side of midnight compare correctly for overnight shifts.
package timeclock

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultDayResetHour is the clock hour treated as the start of the
// business day. Check-ins before 03:00 belong to the previous calendar
// day's operation.
const DefaultDayResetHour = 3

var dayResetHour = DefaultDayResetHour

// SetDayResetHour overrides the process-wide day-reset hour. Called once
// at startup from configuration, before any conversions run.
func SetDayResetHour(hour int) {
	if hour < 0 || hour > 23 {
		return
	}
	dayResetHour = hour
}

// DayResetHour reports the active day-reset hour.
func DayResetHour() int {
	return dayResetHour
}

// ToLinearMinutes converts an "HH:MM" string into minutes since the
// configured day-reset hour. The axis is strictly increasing across the
// 03:00-02:59(+1) business day.
//
// The input must be a syntactically valid 24-hour clock string; callers
// are expected to validate before calling.
func ToLinearMinutes(hhmm string) int {
	return ToLinearMinutesAt(hhmm, dayResetHour)
}

// ToLinearMinutesAt is ToLinearMinutes with an explicit day-reset hour.
func ToLinearMinutesAt(hhmm string, dayResetHour int) int {
	hours, minutes := splitClock(hhmm)
	total := hours*60 + minutes
	if hours < dayResetHour {
		// Belongs to the next calendar day relative to the reset point.
		total += 24 * 60
	}
	return total - dayResetHour*60
}

// FromLinearMinutes maps a linear minute value back into "HH:MM" form,
// wrapping modulo 24 hours. It is the inverse of ToLinearMinutes for
// every valid clock string.
func FromLinearMinutes(minutes int) string {
	return FromLinearMinutesAt(minutes, dayResetHour)
}

// FromLinearMinutesAt is FromLinearMinutes with an explicit day-reset hour.
func FromLinearMinutesAt(minutes int, dayResetHour int) string {
	total := (minutes + dayResetHour*60) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func splitClock(hhmm string) (hours, minutes int) {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, 0
	}
	hours, _ = strconv.Atoi(h)
	minutes, _ = strconv.Atoi(m)
	return hours, minutes
}
