package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/outline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// OutlineListModel - Interactive outline file selection
// =============================================================================

// outlineEntry is one selectable outline file with its parsed title, or the
// parse failure if the file is not a valid outline.
type outlineEntry struct {
	Path     string
	Title    string
	Branches int
	Err      error
}

// OutlineListModel is the bubbletea model for interactive outline selection.
type OutlineListModel struct {
	Entries  []outlineEntry
	Cursor   int
	Selected string
}

// NewOutlineListModel creates a new outline list model.
func NewOutlineListModel(entries []outlineEntry) OutlineListModel {
	return OutlineListModel{Entries: entries}
}

func (m OutlineListModel) Init() tea.Cmd {
	return nil
}

func (m OutlineListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
			}
		case "enter":
			entry := m.Entries[m.Cursor]
			if entry.Err != nil {
				return m, nil
			}
			m.Selected = entry.Path
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m OutlineListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Outline"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, entry := range m.Entries {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		detail := fmt.Sprintf("%d branches", entry.Branches)
		if entry.Err != nil {
			detail = "invalid outline"
		}

		title := entry.Title
		if title == "" {
			title = "—"
		}

		line := fmt.Sprintf("%s%-30s %-28s %s",
			cursor, filepath.Base(entry.Path), title, listDimStyle.Render(detail))

		switch {
		case i == m.Cursor && entry.Err == nil:
			b.WriteString(listSelectedStyle.Render(line))
		case entry.Err != nil:
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// pickOutline scans dir for outline JSON files and lets the user pick one
// interactively. Files that fail to parse are listed but not selectable.
func pickOutline(dir string) (string, error) {
	entries, err := scanOutlines(dir)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", errors.New(errors.ErrCodeOutlineNotFound, "no outline files in %s", dir)
	}

	model := NewOutlineListModel(entries)
	final, err := tea.NewProgram(model, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", err
	}

	selected := final.(OutlineListModel).Selected
	if selected == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "no outline selected")
	}
	return selected, nil
}

// scanOutlines lists the .json files in dir with their parsed titles.
func scanOutlines(dir string) ([]outlineEntry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var entries []outlineEntry
	for _, path := range paths {
		entry := outlineEntry{Path: path}
		if s, err := outline.Load(path); err != nil {
			entry.Err = err
		} else {
			entry.Title = s.Title
			entry.Branches = len(s.Branches)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
