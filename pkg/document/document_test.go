package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
	vocabio "github.com/psyberchi/jvocab/pkg/io"
	"github.com/psyberchi/jvocab/pkg/vocab"
)

func addFood(s *vocab.Store) bool {
	return s.AddLabeledCategory("Food")
}

func TestNew(t *testing.T) {
	d := New()
	if d.Path() != "" {
		t.Errorf("Path() = %q, want empty", d.Path())
	}
	if d.Modified() {
		t.Error("new document should not be modified")
	}
	if d.Store().CategoryCount() != 0 {
		t.Error("new document should be empty")
	}
}

func TestApply(t *testing.T) {
	d := New()

	if !d.Apply(addFood) {
		t.Fatal("Apply() = false, want true")
	}
	if !d.Modified() {
		t.Error("document should be modified after a change")
	}

	d2 := New()
	if d2.Apply(func(s *vocab.Store) bool { return s.RenameCategory("x", "y") }) {
		t.Error("Apply() = true for a failed mutation")
	}
	if d2.Modified() {
		t.Error("failed mutation should not mark the document modified")
	}
}

func TestSaveUntitled(t *testing.T) {
	d := New()
	d.Apply(addFood)
	if err := d.Save(); verrors.GetCode(err) != verrors.ErrCodeInvalidPath {
		t.Errorf("Save() error = %v, want invalid path", err)
	}
	if !d.Modified() {
		t.Error("failed save should keep the modified flag")
	}
}

func TestSaveAsAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	d := New()
	d.Apply(addFood)
	d.Apply(func(s *vocab.Store) bool {
		return s.AddVocabItem("Food", vocab.NewEntry("rice", "gohan", "ごはん", "ご飯", 1))
	})

	if err := d.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error: %v", err)
	}
	if d.Path() != path || d.Modified() {
		t.Errorf("after SaveAs: path=%q modified=%v", d.Path(), d.Modified())
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	opened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if _, ok := opened.Store().FindVocabItem("Food", "rice"); !ok {
		t.Error("rice missing after reopen")
	}
	if opened.Modified() {
		t.Error("freshly opened document should not be modified")
	}
}

func TestOpenMissing(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "missing.json"))
	if !verrors.IsNotFound(err) {
		t.Errorf("Open() error = %v, want not found", err)
	}
	if d != nil {
		t.Error("failed Open should not return a document")
	}
}

func TestSaveFailureKeepsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "words.json")
	d := New()
	d.Apply(addFood)
	if err := d.SaveAs(path); !verrors.IsWrite(err) {
		t.Fatalf("SaveAs() error = %v, want write error", err)
	}
	if !d.Modified() {
		t.Error("failed save should keep the modified flag")
	}
	if d.Path() != "" {
		t.Errorf("failed SaveAs should not rebind the path, got %q", d.Path())
	}
}

func TestClose(t *testing.T) {
	d := New()
	d.Apply(addFood)

	err := d.Close()
	if !verrors.Is(err, verrors.ErrCodeUnsaved) {
		t.Fatalf("Close() error = %v, want unsaved changes", err)
	}

	d.Discard()
	if err := d.Close(); err != nil {
		t.Fatalf("Close() after Discard error: %v", err)
	}
	if d.Apply(addFood) {
		t.Error("Apply() on a closed document should fail")
	}
	if err := d.Close(); err != nil {
		t.Error("second Close() should be a no-op")
	}
}

func TestMarkModified(t *testing.T) {
	d := New()
	d.MarkModified()
	if !d.Modified() {
		t.Error("MarkModified() had no effect")
	}
}

func TestEncodeUsesOptions(t *testing.T) {
	d := New(vocabio.WithCompact())
	d.Apply(addFood)

	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "\t") {
		t.Errorf("compact option ignored: %q", buf.String())
	}
	if !d.Modified() {
		t.Error("Encode should not clear the modified flag")
	}
}

func TestSavePreservesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(`{"Old":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	d.Apply(func(s *vocab.Store) bool { return s.RenameCategory("Old", "New") })
	if err := d.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded, err := vocabio.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reloaded.HasCategory("New") || reloaded.HasCategory("Old") {
		t.Errorf("Categories() = %v", reloaded.Categories())
	}
}

func TestConcurrentApply(t *testing.T) {
	d := New()
	d.Apply(addFood)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Apply(func(s *vocab.Store) bool {
				return s.AddVocabItem("Food", vocab.NewEntry(string(rune('a'+i%26))+strings.Repeat("x", i), "", "", "", 0))
			})
		}()
	}
	wg.Wait()

	if got := d.Store().VocabCount(); got != 51 {
		t.Errorf("VocabCount() = %d, want 51", got)
	}
}
