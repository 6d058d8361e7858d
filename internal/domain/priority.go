package domain

import "fmt"

// Priority controls the processing order of delivery orders.
// HIGH orders are assigned before MEDIUM, MEDIUM before LOW.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// SortOrder returns the numeric rank used for descending priority sorts
// (HIGH=3, MEDIUM=2, LOW=1).
func (p Priority) SortOrder() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// ParsePriority converts an external string into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	default:
		return "", fmt.Errorf("parse priority: %q is not one of HIGH, MEDIUM, LOW", s)
	}
}
