package io

import "fmt"

// WarningKind classifies a recoverable problem found while reading.
type WarningKind string

// Warning kinds reported by the reader.
const (
	WarnNotArray          WarningKind = "not_array"
	WarnNotObject         WarningKind = "not_object"
	WarnMissingField      WarningKind = "missing_field"
	WarnBadField          WarningKind = "bad_field"
	WarnBadLesson         WarningKind = "bad_lesson"
	WarnInvalidEntry      WarningKind = "invalid_entry"
	WarnDuplicateEntry    WarningKind = "duplicate_entry"
	WarnDuplicateCategory WarningKind = "duplicate_category"
)

// Warning describes an element that was skipped while reading. Index is the
// position of the entry in its category array, or -1 when the warning is
// about the category itself.
type Warning struct {
	Category string
	Index    int
	Kind     WarningKind
	Detail   string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Index < 0 {
		return fmt.Sprintf("%s: %s", w.Category, w.Detail)
	}
	return fmt.Sprintf("%s[%d]: %s", w.Category, w.Index, w.Detail)
}
