package vocab

import (
	"cmp"
	"fmt"
	"strings"
	"unicode/utf8"
)

// LabelPrefix marks an entry as a category-label pseudo-entry.
const LabelPrefix = "#"

// Entry is a single vocabulary item.
type Entry struct {
	English string
	Romaji  string
	Kana    string
	Kanji   string
	Lesson  int
}

// NewEntry creates an entry from its five fields.
func NewEntry(english, romaji, kana, kanji string, lesson int) Entry {
	return Entry{
		English: english,
		Romaji:  romaji,
		Kana:    kana,
		Kanji:   kanji,
		Lesson:  lesson,
	}
}

// CategoryLabel returns the label pseudo-entry for the named category.
func CategoryLabel(category string) Entry {
	return Entry{English: LabelPrefix + category}
}

// IsCategoryLabel reports whether e marks a category rather than a word.
func (e Entry) IsCategoryLabel() bool {
	return strings.HasPrefix(e.English, LabelPrefix)
}

// LabelName returns the category name carried by a label entry.
// For ordinary entries it returns "".
func (e Entry) LabelName() string {
	if !e.IsCategoryLabel() {
		return ""
	}
	return strings.TrimPrefix(e.English, LabelPrefix)
}

// Equal reports whether e and o refer to the same vocabulary item.
// Only the English field takes part in the comparison.
func (e Entry) Equal(o Entry) bool {
	return e.English == o.English
}

// Validate checks the field constraints an entry must meet before it can be
// stored.
func (e Entry) Validate() error {
	if e.English == "" {
		return fmt.Errorf("english must not be empty")
	}
	if e.Lesson < 0 {
		return fmt.Errorf("lesson must not be negative: %d", e.Lesson)
	}
	for _, f := range [...]struct{ name, value string }{
		{"english", e.English}, {"romaji", e.Romaji}, {"kana", e.Kana}, {"kanji", e.Kanji},
	} {
		if !utf8.ValidString(f.value) {
			return fmt.Errorf("%s is not valid UTF-8: %q", f.name, f.value)
		}
	}
	return nil
}

// String returns a compact single-line form used in log messages.
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s, %s, %s, %d", e.English, e.Romaji, e.Kana, e.Kanji, e.Lesson)
}

// compareEnglish orders entries by English, ordinal byte comparison.
func compareEnglish(a, b Entry) int {
	return cmp.Compare(a.English, b.English)
}
