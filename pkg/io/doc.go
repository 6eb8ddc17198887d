// Package io reads and writes vocabulary stores as JSON.
//
// # JSON Format
//
// A vocabulary file holds one JSON object. Each key is a category name and
// each value is an array of entry objects:
//
//	{
//		"Greetings": [
//			{"en":"#Greetings", "ro":"", "kn":"", "kj":"", "ln":0},
//			{"en":"hello", "ro":"konnichiwa", "kn":"こんにちは", "kj":"", "ln":1}
//		]
//	}
//
// # Entry Fields
//
// Required:
//   - en: English, the entry's identity within its category
//   - ro: romaji
//   - kn: kana
//   - kj: kanji
//
// Optional:
//   - ln: lesson number, a non-negative integer (defaults to 0)
//
// An entry whose en is exactly "_" is an older spelling of a category label;
// it is read as "#" followed by the category name.
//
// # Export
//
// [Marshal] and [WriteJSON] produce the text. The writer is hand-written so
// the layout stays stable: categories in ascending order, entries sorted by
// English, keys always in the order en, ro, kn, kj, ln. [SaveFile] writes to
// a temporary file next to the destination and renames it into place, so a
// failed save never truncates the previous file.
//
// # Import
//
// [Unmarshal], [ReadJSON], and [LoadFile] build a new store. Only a document
// that is not a JSON object is an error. Everything below the top level is
// recovered locally: a category whose value is not an array, an entry missing
// a field, an entry with a bad lesson, and duplicates are skipped and
// reported as [Warning] values through the configured logger and handler.
//
//	s, err := io.LoadFile("vocab_helper.json", io.WithLogger(logger))
//	if errors.IsNotFound(err) {
//	    // no such file
//	}
//
// # Concurrency
//
// Functions in this package keep no state between calls. They must not run
// concurrently with modifications of the store they are given.
package io
