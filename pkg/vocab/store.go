package vocab

import (
	"slices"
)

// Store holds the categories of an open vocabulary document.
//
// The zero value is not usable; create stores with [NewStore].
type Store struct {
	categories map[string][]Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{categories: make(map[string][]Entry)}
}

// AddCategory creates an empty category. It returns false, leaving the store
// unchanged, if a category with exactly that name already exists.
func (s *Store) AddCategory(name string) bool {
	if _, ok := s.categories[name]; ok {
		return false
	}
	s.categories[name] = []Entry{}
	return true
}

// AddLabeledCategory creates a category together with its label entry.
func (s *Store) AddLabeledCategory(name string) bool {
	if !s.AddCategory(name) {
		return false
	}
	s.categories[name] = append(s.categories[name], CategoryLabel(name))
	return true
}

// HasCategory reports whether the named category exists.
func (s *Store) HasCategory(name string) bool {
	_, ok := s.categories[name]
	return ok
}

// Categories returns the category names in ascending order.
func (s *Store) Categories() []string {
	names := make([]string, 0, len(s.categories))
	for name := range s.categories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CategoryCount returns the number of categories.
func (s *Store) CategoryCount() int {
	return len(s.categories)
}

// RenameCategory moves the entries of oldName under newName. It succeeds only
// when oldName exists and newName does not; entry order is preserved.
func (s *Store) RenameCategory(oldName, newName string) bool {
	items, ok := s.categories[oldName]
	if !ok {
		return false
	}
	if _, taken := s.categories[newName]; taken {
		return false
	}
	delete(s.categories, oldName)
	s.categories[newName] = items
	return true
}

// RemoveCategory deletes a category that holds no real vocabulary. Label
// entries are discarded with it. Categories that still contain vocabulary
// are left alone and false is returned; move or remove the entries first.
func (s *Store) RemoveCategory(name string) bool {
	items, ok := s.categories[name]
	if !ok {
		return false
	}
	for _, item := range items {
		if !item.IsCategoryLabel() {
			return false
		}
	}
	delete(s.categories, name)
	return true
}

// AddVocabItem appends e to the category. It fails when the category does not
// exist, when e is invalid, or when the category already holds an entry with
// the same English.
func (s *Store) AddVocabItem(category string, e Entry) bool {
	items, ok := s.categories[category]
	if !ok {
		return false
	}
	if e.Validate() != nil {
		return false
	}
	if indexOf(items, e.English) >= 0 {
		return false
	}
	s.categories[category] = append(items, e)
	return true
}

// RemoveVocabItem removes the entry equal to e from the category.
func (s *Store) RemoveVocabItem(category string, e Entry) bool {
	items, ok := s.categories[category]
	if !ok {
		return false
	}
	i := indexOf(items, e.English)
	if i < 0 {
		return false
	}
	s.categories[category] = slices.Delete(items, i, i+1)
	return true
}

// FindVocabItem looks up an entry by its English within a category.
func (s *Store) FindVocabItem(category, english string) (Entry, bool) {
	items := s.categories[category]
	i := indexOf(items, english)
	if i < 0 {
		return Entry{}, false
	}
	return items[i], true
}

// UpdateVocabItem replaces the entry keyed by english with updated, keeping
// its position in the category.
//
// Editing the category's own label to "#name" renames the category to name
// in the same step; a missing "#" is added for label edits. An ordinary entry
// cannot be turned into a label, and the new English must not collide with
// another entry of the category. On failure nothing is changed.
func (s *Store) UpdateVocabItem(category, english string, updated Entry) bool {
	items, ok := s.categories[category]
	if !ok {
		return false
	}
	i := indexOf(items, english)
	if i < 0 {
		return false
	}
	current := items[i]

	rename := ""
	if current.IsCategoryLabel() {
		if !updated.IsCategoryLabel() {
			updated.English = LabelPrefix + updated.English
		}
		if current.LabelName() == category && updated.LabelName() != category {
			rename = updated.LabelName()
			if rename == "" || s.HasCategory(rename) {
				return false
			}
		}
	} else if updated.IsCategoryLabel() {
		return false
	}

	if updated.Validate() != nil {
		return false
	}
	if j := indexOf(items, updated.English); j >= 0 && j != i {
		return false
	}

	items[i] = updated
	if rename != "" {
		s.RenameCategory(category, rename)
	}
	return true
}

// MoveVocabItem moves the entry keyed by english from one category to
// another. Labels stay with their category.
func (s *Store) MoveVocabItem(from, to, english string) bool {
	if from == to {
		return false
	}
	src, ok := s.categories[from]
	if !ok {
		return false
	}
	dst, ok := s.categories[to]
	if !ok {
		return false
	}
	i := indexOf(src, english)
	if i < 0 || src[i].IsCategoryLabel() {
		return false
	}
	if indexOf(dst, english) >= 0 {
		return false
	}
	item := src[i]
	s.categories[from] = slices.Delete(src, i, i+1)
	s.categories[to] = append(dst, item)
	return true
}

// VocabItems returns a snapshot of the category's entries sorted by English.
// The returned slice is a copy; edits to it do not reach the store.
func (s *Store) VocabItems(category string) ([]Entry, bool) {
	items, ok := s.categories[category]
	if !ok {
		return nil, false
	}
	out := slices.Clone(items)
	slices.SortStableFunc(out, compareEnglish)
	return out, true
}

// LessonItems returns every entry tagged with lesson across all categories,
// sorted by English. Category labels are never included.
func (s *Store) LessonItems(lesson int) []Entry {
	var out []Entry
	for _, name := range s.Categories() {
		for _, item := range s.categories[name] {
			if item.Lesson == lesson && !item.IsCategoryLabel() {
				out = append(out, item)
			}
		}
	}
	slices.SortStableFunc(out, compareEnglish)
	return out
}

// Lessons returns each distinct lesson number present in the store, labels
// included. The result has set semantics; use [Store.SortedLessons] for
// display.
func (s *Store) Lessons() []int {
	seen := make(map[int]bool)
	var out []int
	for _, name := range s.Categories() {
		for _, item := range s.categories[name] {
			if !seen[item.Lesson] {
				seen[item.Lesson] = true
				out = append(out, item.Lesson)
			}
		}
	}
	return out
}

// SortedLessons returns [Store.Lessons] in ascending order.
func (s *Store) SortedLessons() []int {
	lessons := s.Lessons()
	slices.Sort(lessons)
	return lessons
}

// VocabCount returns the number of entries across all categories, labels
// included.
func (s *Store) VocabCount() int {
	total := 0
	for _, items := range s.categories {
		total += len(items)
	}
	return total
}

func indexOf(items []Entry, english string) int {
	return slices.IndexFunc(items, func(e Entry) bool { return e.English == english })
}
