package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/aoc-2021/internal/puzzleinput"
)

func newTestApp(t *testing.T, inputs map[string]string) *App {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, puzzleinput.DefaultDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, body := range inputs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	app, err := NewApp(puzzleinput.New(root))
	if err != nil {
		t.Fatalf("NewApp returned error: %v", err)
	}
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestListsEventDaysAndExtras(t *testing.T) {
	app := newTestApp(t, map[string]string{"Day 1.txt": "a\n", "Day 30.txt": "b\n"})
	items := app.days.Items()
	if len(items) != eventDays+1 {
		t.Fatalf("expected %d items, got %d", eventDays+1, len(items))
	}
	first := items[0].(dayItem)
	if !first.present || first.day != 1 {
		t.Fatalf("day 1 should be present: %+v", first)
	}
	second := items[1].(dayItem)
	if second.present || !strings.Contains(second.Description(), "https://adventofcode.com/2021/day/2/input") {
		t.Fatalf("day 2 should be missing with link: %+v", second)
	}
	last := items[len(items)-1].(dayItem)
	if last.day != 30 || !last.present {
		t.Fatalf("extra day not listed: %+v", last)
	}
}

func TestEnterShowsRawInputAndEscReturns(t *testing.T) {
	app := newTestApp(t, map[string]string{"Day 1.txt": "123\n456\n"})
	app.Update(key("enter"))
	if app.state != stateInput {
		t.Fatalf("expected input state, got %v", app.state)
	}
	if app.content != "123\n456\n" || app.current != 1 {
		t.Fatalf("unexpected content %q for day %d", app.content, app.current)
	}
	if view := app.View(); !strings.Contains(view, "456") || !strings.Contains(view, "2 lines") {
		t.Fatalf("view missing input: %q", view)
	}
	app.Update(key("esc"))
	if app.state != stateDayList {
		t.Fatalf("esc should return to list, got %v", app.state)
	}
}

func TestEnterOnMissingDayShowsHint(t *testing.T) {
	app := newTestApp(t, nil)
	app.days.Select(1)
	app.Update(key("enter"))
	if app.state != stateDayList {
		t.Fatalf("missing day must stay on list")
	}
	if !strings.Contains(app.hint, "No puzzle input file found for Day 2.") {
		t.Fatalf("unexpected hint %q", app.hint)
	}
	if app.err != nil {
		t.Fatalf("missing input should not set err: %v", app.err)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		app := newTestApp(t, nil)
		_, cmd := app.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", k)
		}
		if app.View() != "" {
			t.Fatalf("%s: view should be empty after quit", k)
		}
	}
}

func TestLineCount(t *testing.T) {
	cases := map[string]int{"": 0, "a": 1, "a\n": 1, "a\nb": 2, "a\nb\n\n": 3}
	for in, want := range cases {
		if got := lineCount(in); got != want {
			t.Fatalf("lineCount(%q) = %d, want %d", in, got, want)
		}
	}
}
