// cmd/aoc/main.go
//
// Entry point for the aoc CLI. Every subcommand resolves the repository
// root (from --root, AOC_ROOT, or by walking up to the nearest .git), loads
// aoc.yaml, and then works against the puzzle inputs directory.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/aoc-2021/internal/puzzleinput"
)

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5C26B"))
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	s := &session{}
	cmd := newRootCmd(s)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if closeErr := s.close(); err == nil {
		err = closeErr
	}
	if err == nil {
		return 0
	}
	reportError(stderr, err)
	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(stderr, "Run 'aoc --help' for usage.")
		return 2
	}
	return 1
}

func reportError(w io.Writer, err error) {
	var notFound *puzzleinput.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(w, hintStyle.Render(notFound.Error()))
		return
	}
	fmt.Fprintln(w, errorStyle.Render("Error: ")+err.Error())
}

// usageError marks bad invocations so they exit with status 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }
