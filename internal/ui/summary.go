package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Summary — сводка по прогону директории.
type Summary struct {
	Title    string
	Files    int
	Failed   int
	MaxWidth int // 0 — без ограничения
}

// Render возвращает одну строку сводки:
//
//	parse ········· 12 files, 2 failed
func (s Summary) Render() string {
	title := titleStyle.Render(s.Title)

	var status string
	if s.Failed == 0 {
		status = okStyle.Render(fmt.Sprintf("%d files, ok", s.Files))
	} else {
		status = failStyle.Render(fmt.Sprintf("%d files, %d failed", s.Files, s.Failed))
	}

	dots := 3
	if s.MaxWidth > 0 {
		used := runewidth.StringWidth(s.Title) + runewidth.StringWidth(stripStatus(s)) + 2
		if s.MaxWidth > used {
			dots = s.MaxWidth - used
		}
	}
	return title + " " + strings.Repeat("·", dots) + " " + status
}

func stripStatus(s Summary) string {
	if s.Failed == 0 {
		return fmt.Sprintf("%d files, ok", s.Files)
	}
	return fmt.Sprintf("%d files, %d failed", s.Files, s.Failed)
}
