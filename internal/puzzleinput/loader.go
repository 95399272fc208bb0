package puzzleinput

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/kingrea/aoc-2021/internal/repo"
)

const (
	// DefaultDir is the inputs directory relative to the repository root.
	DefaultDir = "puzzle_inputs"
	// DefaultYear is the event year used for download links.
	DefaultYear = 2021

	filePrefix = "Day "
	fileSuffix = ".txt"
)

// ErrNotFound matches any *NotFoundError under errors.Is.
var ErrNotFound = errors.New("puzzle input not found")

// NotFoundError reports a missing input file for a day.
type NotFoundError struct {
	Day  int
	Year int
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"No puzzle input file found for Day %d. You may still need to download it from %s (after logging in).",
		e.Day, e.URL(),
	)
}

// URL is where the input for the day can be downloaded by hand.
func (e *NotFoundError) URL() string {
	return DownloadURL(e.Year, e.Day)
}

// Is reports true for ErrNotFound and fs.ErrNotExist.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound || target == fs.ErrNotExist
}

// Unwrap returns the underlying read error.
func (e *NotFoundError) Unwrap() error { return e.Err }

// DownloadURL builds the input link for a year and day.
func DownloadURL(year, day int) string {
	return fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day)
}

// FileName returns the input file name for a day: "Day N.txt", no padding.
func FileName(day int) string {
	return filePrefix + strconv.Itoa(day) + fileSuffix
}

// Loader resolves and reads puzzle inputs below a fixed repository root.
type Loader struct {
	root string
	dir  string
	year int
}

// Option customizes a Loader.
type Option func(*Loader)

// WithDir overrides the inputs directory. Relative paths resolve against the root.
func WithDir(dir string) Option {
	return func(l *Loader) {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(l.root, dir)
		}
		l.dir = filepath.Clean(dir)
	}
}

// WithYear sets the event year used in download links.
func WithYear(year int) Option {
	return func(l *Loader) {
		if year > 0 {
			l.year = year
		}
	}
}

// New returns a Loader rooted at root.
func New(root string, opts ...Option) *Loader {
	l := &Loader{
		root: root,
		dir:  filepath.Join(root, DefaultDir),
		year: DefaultYear,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Root returns the repository root the loader was built with.
func (l *Loader) Root() string { return l.root }

// Dir returns the inputs directory.
func (l *Loader) Dir() string { return l.dir }

// Year returns the event year used in download links.
func (l *Loader) Year() int { return l.year }

// Path returns the input file path for day. Days are not range checked.
func (l *Loader) Path(day int) string {
	return filepath.Join(l.dir, FileName(day))
}

// Text returns the full contents of the input file for day.
func (l *Loader) Text(day int) (string, error) {
	path := l.Path(day)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Day: day, Year: l.year, Path: path, Err: err}
		}
		return "", err
	}
	return string(data), nil
}

// Available lists, in ascending order, the days that have an input file.
// A missing inputs directory yields an empty list.
func (l *Loader) Available() ([]int, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("puzzleinput: list %s: %w", l.dir, err)
	}
	var days []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if day, ok := parseFileName(entry.Name()); ok {
			days = append(days, day)
		}
	}
	sort.Ints(days)
	return days, nil
}

// parseFileName accepts only names Path would produce, so "Day 05.txt" is skipped.
func parseFileName(name string) (int, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	day, err := strconv.Atoi(digits)
	if err != nil || strconv.Itoa(day) != digits {
		return 0, false
	}
	return day, true
}

// Text reads the input for day below the repository enclosing the working
// directory. Discovery errors are returned unchanged.
func Text(day int) (string, error) {
	root, err := repo.Discover()
	if err != nil {
		return "", err
	}
	return New(root).Text(day)
}
