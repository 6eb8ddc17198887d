// Package pkg provides the core libraries for jvocab vocabulary files.
//
// # Overview
//
// jvocab keeps Japanese vocabulary in a single JSON document: an object whose
// keys are category names and whose values are arrays of entries. The pkg
// directory is organized into a small stack:
//
//  1. [vocab] - The in-memory model (categories, entries, lesson queries)
//  2. [io] - The JSON codec (tolerant reader, deterministic writer)
//  3. [document] - An open file with unsaved-change tracking
//  4. [config] - User preferences (output layout, recent files)
//  5. [errors] - Coded errors and input validation
//
// # Architecture
//
// The typical data flow:
//
//	words.json
//	     ↓
//	[io.LoadFile] (decode, skipping bad elements with warnings)
//	     ↓
//	[vocab.Store] (query and edit)
//	     ↓
//	[io.SaveFile] (sorted output, atomic replace)
//	     ↓
//	words.json
//
// # Quick Start
//
// Load a file, add an entry, and save it back:
//
//	import (
//	    "github.com/psyberchi/jvocab/pkg/document"
//	    "github.com/psyberchi/jvocab/pkg/vocab"
//	)
//
//	doc, err := document.Open("words.json")
//	if err != nil {
//	    return err
//	}
//	doc.Apply(func(s *vocab.Store) bool {
//	    return s.AddVocabItem("Food", vocab.NewEntry("rice", "gohan", "ごはん", "ご飯", 3))
//	})
//	if err := doc.Save(); err != nil {
//	    return err
//	}
//
// Query every entry of a lesson across categories:
//
//	for _, e := range doc.Store().LessonItems(3) {
//	    fmt.Println(e)
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All library tests
//	go test ./internal/cli/... # Command tests
package pkg
