package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// RecentListModel - Interactive recent file selection
// =============================================================================

// recentFile is one row of the recent file picker.
type recentFile struct {
	Path    string
	ModTime time.Time
	Exists  bool
}

// statRecentFiles looks up each path on disk.
func statRecentFiles(paths []string) []recentFile {
	files := make([]recentFile, len(paths))
	for i, p := range paths {
		files[i] = recentFile{Path: p}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			files[i].Exists = true
			files[i].ModTime = info.ModTime()
		}
	}
	return files
}

// RecentListModel is the bubbletea model for picking a recent file.
type RecentListModel struct {
	Files    []recentFile
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewRecentListModel creates a picker over files.
func NewRecentListModel(files []recentFile) RecentListModel {
	return RecentListModel{Files: files, Height: 10}
}

func (m RecentListModel) Init() tea.Cmd {
	return nil
}

func (m RecentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Files)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Files) == 0 || !m.Files[m.Cursor].Exists {
				return m, nil
			}
			m.Selected = m.Files[m.Cursor].Path
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 3)
	}
	return m, nil
}

func (m RecentListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Recent Vocabulary Files"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Files))

	var rows [][]string
	for i := m.Offset; i < end; i++ {
		f := m.Files[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		modified := "missing"
		if f.Exists {
			modified = formatRelativeTime(f.ModTime, time.Now())
		}
		rows = append(rows, []string{cursor, f.Path, modified})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "File", "Modified").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.Files) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if !m.Files[idx].Exists {
				base = base.Foreground(colorDim)
			} else if col == 2 {
				base = base.Foreground(colorGray)
			}
			if idx == m.Cursor {
				if m.Files[idx].Exists && col != 2 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Files))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
