// Package document tracks one open vocabulary file.
//
// A Document pairs a [vocab.Store] with the path it was loaded from and a
// modified flag. Mutations go through [Document.Apply], which marks the
// document modified when the callback reports a change. [Document.Close]
// refuses to drop unsaved work unless [Document.Discard] is called first.
//
// Every method takes the document's lock, so a Document may be shared by
// several goroutines. The *vocab.Store returned by [Document.Store] is not
// guarded; use Apply for writes.
package document

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
	vocabio "github.com/psyberchi/jvocab/pkg/io"
	"github.com/psyberchi/jvocab/pkg/vocab"
)

// Document is an open vocabulary file.
type Document struct {
	mu       sync.Mutex
	store    *vocab.Store
	path     string
	modified bool
	closed   bool
	discard  bool
	opts     []vocabio.Option
	logger   *log.Logger
}

// New returns an untitled, empty document. opts are used for every later
// save.
func New(opts ...vocabio.Option) *Document {
	return &Document{
		store:  vocab.NewStore(),
		opts:   opts,
		logger: vocabio.Resolve(opts...).Logger,
	}
}

// Open loads the file at path. On failure no document is returned.
func Open(path string, opts ...vocabio.Option) (*Document, error) {
	s, err := vocabio.LoadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	d := &Document{store: s, path: path, opts: opts, logger: vocabio.Resolve(opts...).Logger}
	d.logger.Debug("opened document", "path", path, "categories", s.CategoryCount())
	return d, nil
}

// Path returns the file the document is bound to, or "" when untitled.
func (d *Document) Path() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.path
}

// Store returns the underlying store for reading.
func (d *Document) Store() *vocab.Store {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store
}

// Modified reports whether there are unsaved changes.
func (d *Document) Modified() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modified
}

// MarkModified flags the document as changed.
func (d *Document) MarkModified() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.modified = true
}

// Apply runs fn against the store and marks the document modified if fn
// returns true. The result of fn is returned.
func (d *Document) Apply(fn func(*vocab.Store) bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	changed := fn(d.store)
	if changed {
		d.modified = true
	}
	return changed
}

// Save writes the document back to its path. An untitled document cannot
// be saved this way; use [Document.SaveAs].
func (d *Document) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.path == "" {
		return verrors.New(verrors.ErrCodeInvalidPath, "document has no file name")
	}
	return d.saveLocked(d.path)
}

// SaveAs writes the document to path and binds it to that path.
func (d *Document) SaveAs(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.saveLocked(path); err != nil {
		return err
	}
	d.path = path
	return nil
}

func (d *Document) saveLocked(path string) error {
	if d.closed {
		return verrors.New(verrors.ErrCodeInternal, "document is closed")
	}
	if err := vocabio.SaveFile(path, d.store, d.opts...); err != nil {
		return err
	}
	d.modified = false
	d.logger.Debug("saved document", "path", path)
	return nil
}

// Encode writes the encoded document to w without changing its state.
func (d *Document) Encode(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return vocabio.WriteJSON(d.store, w, d.opts...)
}

// Discard allows the next Close to drop unsaved changes.
func (d *Document) Discard() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.discard = true
}

// Close releases the document. It fails with [verrors.ErrCodeUnsaved] when
// there are unsaved changes and Discard was not called.
func (d *Document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	if d.modified && !d.discard {
		name := d.path
		if name == "" {
			name = "untitled document"
		}
		return verrors.New(verrors.ErrCodeUnsaved, "%s has unsaved changes", name)
	}
	d.closed = true
	d.store = vocab.NewStore()
	return nil
}
