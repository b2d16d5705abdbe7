package ui_test

import (
	"strings"
	"testing"

	"sysdl/internal/ui"
)

func TestSummaryOk(t *testing.T) {
	s := ui.Summary{Title: "parse", Files: 12}
	out := s.Render()
	if !strings.Contains(out, "parse") || !strings.Contains(out, "12 files, ok") {
		t.Errorf("summary: %q", out)
	}
}

func TestSummaryFailed(t *testing.T) {
	s := ui.Summary{Title: "parse", Files: 12, Failed: 2}
	out := s.Render()
	if !strings.Contains(out, "12 files, 2 failed") {
		t.Errorf("summary: %q", out)
	}
}

func TestSummaryPadsToWidth(t *testing.T) {
	s := ui.Summary{Title: "parse", Files: 3, MaxWidth: 40}
	out := s.Render()
	if !strings.Contains(out, "··········") {
		t.Errorf("expected dot padding: %q", out)
	}
}
