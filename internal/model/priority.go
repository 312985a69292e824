package model

import "strings"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// NormalizePriority coerces a stored priority string into one of the three
// canonical lowercase values. Matching is case-insensitive and anything
// unrecognized (empty string included) falls back to medium. Idempotent.
func NormalizePriority(raw string) Priority {
	switch strings.ToLower(raw) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// Storage returns the capitalized form the backing store expects
// ("low" -> "Low"). The asymmetry with NormalizePriority is deliberate:
// reads normalize to lowercase, writes capitalize.
func (p Priority) Storage() string {
	s := string(NormalizePriority(string(p)))
	return strings.ToUpper(s[:1]) + s[1:]
}
