// Package puzzleinput loads raw puzzle input text for a given day.
//
// Inputs live at <repository root>/puzzle_inputs/Day N.txt. The loader
// returns file contents untouched; parsing belongs to each day's solution.
// A missing file becomes a *NotFoundError naming the download URL, every
// other read failure is returned as the filesystem reported it.
package puzzleinput
