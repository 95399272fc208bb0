// internal/tui/app.go
//
// Terminal browser over the puzzle inputs of one repository. It uses
// bubbletea: a list of days on the first screen, the raw input of the chosen
// day in a scrollable viewport on the second.

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/aoc-2021/internal/puzzleinput"
)

// appState represents which "screen" we're on
type appState int

const (
	stateDayList appState = iota // Day picker
	stateInput                   // Viewing one day's raw input
)

// eventDays is how many puzzles one event publishes.
const eventDays = 25

// dayItem implements list.Item for one day.
type dayItem struct {
	day     int
	present bool
	detail  string
}

func (i dayItem) Title() string {
	if i.present {
		return fmt.Sprintf("Day %d", i.day)
	}
	return fmt.Sprintf("Day %d · missing", i.day)
}
func (i dayItem) Description() string { return i.detail }
func (i dayItem) FilterValue() string { return fmt.Sprintf("Day %d", i.day) }

// App is the browser model.
type App struct {
	state  appState
	loader *puzzleinput.Loader

	days     list.Model
	input    viewport.Model
	current  int
	content  string
	hint     string
	err      error
	width    int
	height   int
	quitting bool
}

// NewApp builds the browser for the inputs the loader can see.
func NewApp(loader *puzzleinput.Loader) (*App, error) {
	items, err := buildDayItems(loader)
	if err != nil {
		return nil, err
	}
	days := list.New(items, list.NewDefaultDelegate(), 0, 0)
	days.Title = fmt.Sprintf("Advent of Code %d", loader.Year())
	days.SetShowStatusBar(false)
	return &App{
		state:  stateDayList,
		loader: loader,
		days:   days,
		input:  viewport.New(0, 0),
	}, nil
}

func buildDayItems(loader *puzzleinput.Loader) ([]list.Item, error) {
	available, err := loader.Available()
	if err != nil {
		return nil, err
	}
	present := make(map[int]bool, len(available))
	last := eventDays
	for _, day := range available {
		present[day] = true
		if day > last {
			last = day
		}
	}
	var items []list.Item
	for day := 1; day <= last; day++ {
		if day > eventDays && !present[day] {
			continue
		}
		item := dayItem{day: day, present: present[day]}
		if item.present {
			item.detail = loader.Path(day)
		} else {
			item.detail = puzzleinput.DownloadURL(loader.Year(), day)
		}
		items = append(items, item)
	}
	return items, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.days.SetSize(max(0, msg.Width-4), max(0, msg.Height-4))
		a.input.Width = max(0, msg.Width-4)
		a.input.Height = max(0, msg.Height-6)
		return a, nil

	case tea.KeyMsg:
		if a.state == stateDayList && a.days.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			a.quitting = true
			return a, tea.Quit
		case "esc", "backspace":
			if a.state == stateInput {
				a.state = stateDayList
				a.content = ""
				return a, nil
			}
		case "enter":
			if a.state == stateDayList {
				return a.openSelectedDay()
			}
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case stateDayList:
		a.days, cmd = a.days.Update(msg)
	case stateInput:
		a.input, cmd = a.input.Update(msg)
	}
	return a, cmd
}

func (a *App) openSelectedDay() (tea.Model, tea.Cmd) {
	item, ok := a.days.SelectedItem().(dayItem)
	if !ok {
		return a, nil
	}
	a.hint = ""
	a.err = nil
	text, err := a.loader.Text(item.day)
	if err != nil {
		var notFound *puzzleinput.NotFoundError
		if errors.As(err, &notFound) {
			a.hint = notFound.Error()
		} else {
			a.err = err
		}
		return a, nil
	}
	a.current = item.day
	a.content = text
	a.input.SetContent(text)
	a.input.GotoTop()
	a.state = stateInput
	return a, nil
}

// View renders the current screen.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	var content string
	switch a.state {
	case stateDayList:
		content = a.days.View()
		if a.hint != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, content, hintStyle.Render(a.hint))
		}
		if a.err != nil {
			content = lipgloss.JoinVertical(lipgloss.Left, content, errorStyle.Render(a.err.Error()))
		}
	case stateInput:
		header := titleStyle.Render(fmt.Sprintf("Day %d", a.current))
		footer := footerStyle.Render(fmt.Sprintf("%d lines · esc back · q quit", lineCount(a.content)))
		content = lipgloss.JoinVertical(lipgloss.Left, header, a.input.View(), footer)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5C26B"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

func lineCount(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
