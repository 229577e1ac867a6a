package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTask is returned when a submitted task text is blank.
	ErrEmptyTask = errors.New("task text is required")

	// ErrInvalidFilter is returned for an unknown filter mode.
	ErrInvalidFilter = errors.New("filter must be 'all', 'completed', or 'incomplete'")
)

// Task represents a single to-do item.
// The JSON field names are the persisted snapshot layout.
type Task struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
	IsEditing bool   `json:"isEditing"`
}

// ValidateText checks text submitted from an entry or edit form.
// The list store itself accepts any text.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyTask
	}
	return nil
}

// FilterMode selects which tasks are visible.
type FilterMode string

const (
	FilterAll        FilterMode = "all"
	FilterCompleted  FilterMode = "completed"
	FilterIncomplete FilterMode = "incomplete"
)

// FilterModes lists the modes in the order the controls display them.
var FilterModes = []FilterMode{FilterAll, FilterCompleted, FilterIncomplete}

// ParseFilter converts a string into a FilterMode.
func ParseFilter(s string) (FilterMode, error) {
	switch mode := FilterMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case FilterAll, FilterCompleted, FilterIncomplete:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
}

// Match reports whether the task is visible under the mode.
// Unknown modes behave like FilterAll.
func (f FilterMode) Match(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterIncomplete:
		return !t.Completed
	default:
		return true
	}
}

// Label returns the button caption for the mode.
func (f FilterMode) Label() string {
	switch f {
	case FilterCompleted:
		return "Completed"
	case FilterIncomplete:
		return "Incomplete"
	default:
		return "All"
	}
}

// Next returns the mode that follows f in FilterModes, wrapping around.
func (f FilterMode) Next() FilterMode {
	for i, mode := range FilterModes {
		if mode == f {
			return FilterModes[(i+1)%len(FilterModes)]
		}
	}
	return FilterAll
}

// SortDirection is the direction of the last applied sort.
type SortDirection string

const (
	SortNone       SortDirection = "none"
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Toggle returns the direction the next sort press applies.
// The first press sorts ascending.
func (d SortDirection) Toggle() SortDirection {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// Label returns the caption of the sort button.
func (d SortDirection) Label() string {
	if d == SortAscending || d == SortDescending {
		return fmt.Sprintf("Sort (%s)", d)
	}
	return "Sort"
}
