package shift

import (
	"encoding/json"
	"log/slog"

	"github.com/mhdalhzau/memoor-sub001/internal/pkg/validator"
)

// Resolve builds the effective registry for a store from its serialized
// shift configuration (a JSON array of {name,start,end}). Absent, empty,
// or malformed configuration falls back to DefaultRegistry: attendance
// calculation must keep working no matter how broken the store config
// is, so this function never returns an error.
func Resolve(storeShiftConfig string) Registry {
	if validator.IsEmpty(storeShiftConfig) {
		return DefaultRegistry()
	}

	var entries []Definition
	if err := json.Unmarshal([]byte(storeShiftConfig), &entries); err != nil {
		slog.Warn("invalid store shift configuration, using default shifts", "error", err)
		return DefaultRegistry()
	}

	reg := NewRegistry()
	for _, entry := range entries {
		if validator.IsEmpty(entry.Name) {
			slog.Warn("skipping shift with empty name in store configuration")
			continue
		}
		if !validator.IsValidClockTime(entry.Start) || !validator.IsValidClockTime(entry.End) {
			slog.Warn("skipping shift with invalid clock times",
				"shift", entry.Name, "start", entry.Start, "end", entry.End)
			continue
		}
		reg.Add(entry)
	}

	if reg.Len() == 0 {
		slog.Warn("store shift configuration yielded no usable shifts, using default shifts")
		return DefaultRegistry()
	}
	return reg
}
