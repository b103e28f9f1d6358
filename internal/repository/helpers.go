package repository

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// parseNullableFloat converts a sql.NullFloat64 into a *float64.
// Returns nil if the value is NULL.
func parseNullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// nullableFloatToValue converts a *float64 to a value suitable for SQLite
// storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// intsToCSV serializes an int slice as a comma-separated string for storage
// in a single TEXT column.
func intsToCSV(vals []int) string {
	if len(vals) == 0 {
		return ""
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// csvToInts parses a comma-separated string back into an int slice,
// skipping blank and malformed entries.
func csvToInts(s string) []int {
	if s == "" {
		return nil
	}
	var vals []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
