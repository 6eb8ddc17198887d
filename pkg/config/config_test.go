package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
	"github.com/psyberchi/jvocab/pkg/io"
	"github.com/psyberchi/jvocab/pkg/vocab"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Recent.Max != DefaultRecentMax {
		t.Errorf("Recent.Max = %d, want %d", cfg.Recent.Max, DefaultRecentMax)
	}
	if cfg.Output.Compact || len(cfg.Recent.Files) != 0 {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[output]
compact = true
omit_zero_lesson = true

[recent]
max = 2
files = ["/a.json", "", "/b.json", "/a.json", "/c.json"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Output.Compact || !cfg.Output.OmitZeroLesson {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if got := cfg.RecentFiles(); !slices.Equal(got, []string{"/a.json", "/b.json"}) {
		t.Errorf("RecentFiles() = %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("[output\ncompact = "), 0o644)
	if _, err := Load(bad); !verrors.IsParse(err) {
		t.Errorf("Load(bad) error = %v, want parse error", err)
	}

	if _, err := Load(dir); verrors.GetCode(err) != verrors.ErrCodeRead {
		t.Errorf("Load(dir) error = %v, want read error", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Output.OmitZeroLesson = true
	cfg.AddRecentFile("/tmp/words.json")

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !got.Output.OmitZeroLesson {
		t.Error("OmitZeroLesson not persisted")
	}
	if !slices.Equal(got.RecentFiles(), []string{"/tmp/words.json"}) {
		t.Errorf("RecentFiles() = %v", got.RecentFiles())
	}
}

func TestAddRecentFile(t *testing.T) {
	cfg := Default()
	for i := 0; i < 8; i++ {
		cfg.AddRecentFile(fmt.Sprintf("/f%d.json", i))
	}
	cfg.AddRecentFile("/f4.json")

	want := []string{"/f4.json", "/f7.json", "/f6.json", "/f5.json", "/f3.json", "/f2.json"}
	if got := cfg.RecentFiles(); !slices.Equal(got, want) {
		t.Errorf("RecentFiles() = %v, want %v", got, want)
	}

	if cfg.AddRecentFile("") {
		t.Error("AddRecentFile(\"\") should fail")
	}
	if first, _ := cfg.MostRecent(); first != "/f4.json" {
		t.Errorf("MostRecent() = %q", first)
	}
}

func TestAddRecentFileRelative(t *testing.T) {
	cfg := Default()
	cfg.AddRecentFile("words.json")
	got, _ := cfg.MostRecent()
	if !filepath.IsAbs(got) {
		t.Errorf("MostRecent() = %q, want absolute path", got)
	}
}

func TestRemoveRecentFile(t *testing.T) {
	cfg := Default()
	cfg.AddRecentFile("/a.json")
	cfg.AddRecentFile("/b.json")

	if !cfg.RemoveRecentFile("/a.json") {
		t.Error("RemoveRecentFile() = false, want true")
	}
	if cfg.RemoveRecentFile("/a.json") {
		t.Error("second RemoveRecentFile() = true, want false")
	}
	if _, ok := Default().MostRecent(); ok {
		t.Error("MostRecent() on empty list should report false")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/xdg", "jvocab", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestCodecOptions(t *testing.T) {
	s := vocab.NewStore()
	s.AddLabeledCategory("A")

	cfg := Default()
	cfg.Output.Compact = true
	cfg.Output.OmitZeroLesson = true

	got := io.Marshal(s, cfg.CodecOptions()...)
	want := []byte(`{"A":[{"en":"#A","ro":"","kn":"","kj":""}]}` + "\n")
	if !bytes.Equal(got, want) {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
	if n := len(Default().CodecOptions()); n != 0 {
		t.Errorf("default CodecOptions() has %d options, want 0", n)
	}
}
