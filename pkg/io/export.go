package io

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
	"github.com/psyberchi/jvocab/pkg/vocab"
)

// Marshal encodes s as JSON text.
//
// Categories appear in ascending order and each category's entries are
// sorted by English, so equal stores always produce identical bytes.
func Marshal(s *vocab.Store, opts ...Option) []byte {
	o := buildOptions(opts)
	var buf bytes.Buffer
	if o.Compact {
		writeCompact(&buf, s, &o)
	} else {
		writePretty(&buf, s, &o)
	}
	return buf.Bytes()
}

// WriteJSON encodes s and writes it to w.
// This format can be re-read with [ReadJSON].
func WriteJSON(s *vocab.Store, w io.Writer, opts ...Option) error {
	if _, err := w.Write(Marshal(s, opts...)); err != nil {
		return verrors.Wrap(verrors.ErrCodeWrite, err, "write vocabulary")
	}
	return nil
}

// SaveFile writes s to path.
//
// The document is written to a temporary file in the destination directory
// and renamed over path once complete. If any step fails the previous file is
// left untouched and the returned error carries [verrors.ErrCodeWrite].
func SaveFile(path string, s *vocab.Store, opts ...Option) (err error) {
	if err := verrors.ValidatePath(path); err != nil {
		return err
	}
	o := buildOptions(opts)
	data := Marshal(s, opts...)

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return verrors.New(verrors.ErrCodeWrite, "save %s: is a directory", path)
		}
		mode = info.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return verrors.Wrap(verrors.ErrCodeWrite, err, "save %s", path)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return verrors.Wrap(verrors.ErrCodeWrite, err, "save %s", path)
	}
	if err = tmp.Sync(); err != nil {
		return verrors.Wrap(verrors.ErrCodeWrite, err, "save %s", path)
	}
	if err = tmp.Close(); err != nil {
		return verrors.Wrap(verrors.ErrCodeWrite, err, "save %s", path)
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return verrors.Wrap(verrors.ErrCodeWrite, err, "save %s", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return verrors.Wrap(verrors.ErrCodeWrite, err, "save %s", path)
	}

	o.Logger.Debug("saved vocabulary", "path", path, "categories", s.CategoryCount(), "entries", s.VocabCount())
	return nil
}

// writePretty produces the tab-indented layout, one entry per line.
func writePretty(buf *bytes.Buffer, s *vocab.Store, o *Options) {
	cats := s.Categories()
	buf.WriteString("{\n")
	for i, cat := range cats {
		buf.WriteString("\t")
		writeString(buf, cat)
		buf.WriteString(": [\n")
		items, _ := s.VocabItems(cat)
		for j, item := range items {
			buf.WriteString("\t\t")
			writeEntry(buf, item, ", ", o)
			if j+1 < len(items) {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("\t]")
		if i+1 < len(cats) {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
}

// writeCompact produces the same document without insignificant whitespace.
func writeCompact(buf *bytes.Buffer, s *vocab.Store, o *Options) {
	buf.WriteByte('{')
	for i, cat := range s.Categories() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, cat)
		buf.WriteString(":[")
		items, _ := s.VocabItems(cat)
		for j, item := range items {
			if j > 0 {
				buf.WriteByte(',')
			}
			writeEntry(buf, item, ",", o)
		}
		buf.WriteByte(']')
	}
	buf.WriteString("}\n")
}

func writeEntry(buf *bytes.Buffer, e vocab.Entry, sep string, o *Options) {
	buf.WriteString(`{"en":`)
	writeString(buf, e.English)
	buf.WriteString(sep + `"ro":`)
	writeString(buf, e.Romaji)
	buf.WriteString(sep + `"kn":`)
	writeString(buf, e.Kana)
	buf.WriteString(sep + `"kj":`)
	writeString(buf, e.Kanji)
	if e.Lesson != 0 || !o.OmitZeroLesson {
		buf.WriteString(sep + `"ln":`)
		buf.WriteString(strconv.Itoa(e.Lesson))
	}
	buf.WriteByte('}')
}

// writeString writes s as a quoted JSON string. Quote, backslash, and control
// characters are escaped, as are U+2028 and U+2029 so the output is also safe
// to embed in JavaScript. Invalid UTF-8 is written as U+FFFD; entries cannot
// hold it since Entry.Validate rejects them, but category keys added directly
// through the store are not checked.
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 || (r >= 0x7f && r <= 0x9f) || r == '\u2028' || r == '\u2029' {
				fmt.Fprintf(buf, `\u%04x`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}
