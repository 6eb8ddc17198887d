// Package vocab provides the in-memory model of a Japanese vocabulary study file.
//
// # Overview
//
// A [Store] maps category names to an ordered list of [Entry] values. Each
// entry carries an English key plus its romaji, kana, and kanji forms and an
// optional lesson number:
//
//	s := vocab.NewStore()
//	s.AddLabeledCategory("Greetings")
//	s.AddVocabItem("Greetings", vocab.NewEntry("hello", "konnichiwa", "こんにちは", "", 1))
//
// # Category Labels
//
// An entry whose English starts with "#" is a category-label pseudo-entry. It
// lives in its category's list like any other entry but is never returned by
// lesson queries. [CategoryLabel] builds the label for a category name.
//
// # Identity
//
// Entries are identified by their English field (exact, case-sensitive). A
// category never holds two entries with the same English; [Store.AddVocabItem]
// returns false instead of adding a duplicate.
//
// # Ordering
//
// Category names are always presented in ascending lexicographic order and
// vocabulary lists are always sorted by English. Insertion order is kept
// internally but never exposed.
//
// # Concurrency
//
// A Store is not safe for concurrent use. It is meant to be owned by a single
// editor goroutine; wrap it with a mutex if that ever changes.
package vocab
