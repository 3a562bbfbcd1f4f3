package attendance

import (
	"log/slog"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/shift"
	"github.com/mhdalhzau/memoor-sub001/internal/pkg/timeclock"
)

// The three metric calculations below share one convention: every
// comparison happens on the linear minute axis from timeclock, which is
// what makes overnight shifts compute correctly without per-metric
// special cases. A shift name missing from the registry degrades to 0
// with a warning; an edited-away shift must never block the month view.

// CalculateLateness returns how many minutes a check-in falls after its
// shift's scheduled start, floored at zero.
func CalculateLateness(checkIn, shiftName string, reg shift.Registry) int {
	if checkIn == "" {
		return 0
	}
	def, ok := reg.Lookup(shiftName)
	if !ok {
		slog.Warn("shift not found in registry, lateness defaults to 0", "shift", shiftName)
		return 0
	}
	diff := timeclock.ToLinearMinutes(checkIn) - timeclock.ToLinearMinutes(def.Start)
	return max(0, diff)
}

// CalculateEarlyArrival returns how many minutes a check-in falls before
// its shift's scheduled start, floored at zero. Mirror image of
// CalculateLateness; at most one of the two is nonzero.
func CalculateEarlyArrival(checkIn, shiftName string, reg shift.Registry) int {
	if checkIn == "" {
		return 0
	}
	def, ok := reg.Lookup(shiftName)
	if !ok {
		slog.Warn("shift not found in registry, early arrival defaults to 0", "shift", shiftName)
		return 0
	}
	diff := timeclock.ToLinearMinutes(def.Start) - timeclock.ToLinearMinutes(checkIn)
	return max(0, diff)
}

// CalculateOvertime returns how many minutes a check-out falls after its
// shift's scheduled end, floored at zero. An overnight shift's end, and
// a check-out that appears to precede the shift start, each gain a day
// so all three operands sit on the same axis.
func CalculateOvertime(checkOut, shiftName string, reg shift.Registry) int {
	if checkOut == "" {
		return 0
	}
	def, ok := reg.Lookup(shiftName)
	if !ok {
		slog.Warn("shift not found in registry, overtime defaults to 0", "shift", shiftName)
		return 0
	}

	start := timeclock.ToLinearMinutes(def.Start)
	end := timeclock.ToLinearMinutes(def.End)
	if end <= start {
		end += 24 * 60
	}

	checkout := timeclock.ToLinearMinutes(checkOut)
	if checkout < start {
		checkout += 24 * 60
	}

	return max(0, checkout-end)
}

// DetectShift infers the most plausible shift for a check-in by nearest
// start time. Ties resolve to the earliest-inserted registry entry; that
// ordering is deliberate and documented, not accidental. Empty input or
// an empty registry yields "".
func DetectShift(checkIn string, reg shift.Registry) string {
	if checkIn == "" || reg.Len() == 0 {
		return ""
	}

	in := timeclock.ToLinearMinutes(checkIn)
	best := ""
	bestDist := -1
	for _, name := range reg.Names() {
		def, _ := reg.Lookup(name)
		dist := in - timeclock.ToLinearMinutes(def.Start)
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best = name
			bestDist = dist
		}
	}
	return best
}
