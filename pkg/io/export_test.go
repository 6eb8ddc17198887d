package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
	"github.com/psyberchi/jvocab/pkg/vocab"
)

func sampleStore() *vocab.Store {
	s := vocab.NewStore()
	s.AddCategory("B")
	s.AddCategory("A")
	s.AddVocabItem("A", vocab.NewEntry("apple", "appuru", "", "", 2))
	return s
}

func TestMarshalPretty(t *testing.T) {
	got := string(Marshal(sampleStore()))
	want := "{\n" +
		"\t\"A\": [\n" +
		"\t\t{\"en\":\"apple\", \"ro\":\"appuru\", \"kn\":\"\", \"kj\":\"\", \"ln\":2}\n" +
		"\t],\n" +
		"\t\"B\": [\n" +
		"\t]\n" +
		"}\n"
	if got != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshalSortsEntries(t *testing.T) {
	s := vocab.NewStore()
	s.AddCategory("Food")
	s.AddVocabItem("Food", vocab.NewEntry("rice", "gohan", "ごはん", "ご飯", 1))
	s.AddVocabItem("Food", vocab.NewEntry("fish", "sakana", "さかな", "魚", 1))

	out := string(Marshal(s))
	if strings.Index(out, `"fish"`) > strings.Index(out, `"rice"`) {
		t.Errorf("entries not sorted by english:\n%s", out)
	}
}

func TestMarshalCompact(t *testing.T) {
	got := string(Marshal(sampleStore(), WithCompact()))
	want := `{"A":[{"en":"apple","ro":"appuru","kn":"","kj":"","ln":2}],"B":[]}` + "\n"
	if got != want {
		t.Errorf("Marshal(compact) = %q, want %q", got, want)
	}
}

func TestMarshalOmitZeroLesson(t *testing.T) {
	s := vocab.NewStore()
	s.AddLabeledCategory("Cat")
	got := string(Marshal(s, WithCompact(), WithOmitZeroLesson()))
	want := `{"Cat":[{"en":"#Cat","ro":"","kn":"","kj":""}]}` + "\n"
	if got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}

func TestMarshalEmptyStore(t *testing.T) {
	if got := string(Marshal(vocab.NewStore())); got != "{\n}\n" {
		t.Errorf("Marshal(empty) = %q", got)
	}
}

func TestWriteStringEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak", `"line\nbreak"`},
		{"tab\there", `"tab\there"`},
		{"bell\x07", `"bell\u0007"`},
		{"sep\u2028", `"sep\u2028"`},
		{"日本語", `"日本語"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var buf bytes.Buffer
			writeString(&buf, tt.in)
			if got := buf.String(); got != tt.want {
				t.Errorf("writeString(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteJSONError(t *testing.T) {
	err := WriteJSON(sampleStore(), failingWriter{})
	if !verrors.IsWrite(err) {
		t.Errorf("WriteJSON() error = %v, want write error", err)
	}
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")

	if err := SaveFile(path, sampleStore()); err != nil {
		t.Fatalf("SaveFile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, Marshal(sampleStore())) {
		t.Errorf("file contents differ from Marshal():\n%s", data)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the saved file in the directory, found %d entries", len(entries))
	}
}

func TestSaveFileKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := SaveFile(path, sampleStore()); err != nil {
		t.Fatalf("SaveFile() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestSaveFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "vocab.json")
	err := SaveFile(path, sampleStore())
	if !verrors.IsWrite(err) {
		t.Errorf("SaveFile() error = %v, want write error", err)
	}
}

func TestSaveFileDirectoryTarget(t *testing.T) {
	dir := t.TempDir()
	err := SaveFile(dir, sampleStore())
	if !verrors.IsWrite(err) {
		t.Errorf("SaveFile() error = %v, want write error", err)
	}
}

func TestSaveFileFailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.json")
	prior := []byte(`{"Old":[]}`)
	if err := os.WriteFile(path, prior, 0o644); err != nil {
		t.Fatal(err)
	}

	// A read-only directory blocks the temp file.
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	if err := SaveFile(path, sampleStore()); !verrors.IsWrite(err) {
		t.Fatalf("SaveFile() error = %v, want write error", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, prior) {
		t.Errorf("previous file changed: %s", data)
	}
}

func TestSaveFileInvalidPath(t *testing.T) {
	if err := SaveFile("", sampleStore()); verrors.GetCode(err) != verrors.ErrCodeInvalidPath {
		t.Errorf("SaveFile(\"\") error = %v, want invalid path", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }
