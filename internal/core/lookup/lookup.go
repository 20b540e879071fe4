// Package lookup finds records by label in small ordered sequences.
package lookup

import (
	"fmt"
	"strings"
)

// Labeled is anything that exposes a label or type name to match against.
type Labeled interface {
	Label() string
}

// MatchMode selects how label equality treats letter case.
type MatchMode int

const (
	// Exact requires byte-for-byte equal labels.
	Exact MatchMode = iota
	// FoldCase compares labels case-insensitively ("owner" matches "Owner").
	FoldCase
)

var matchModeNames = map[string]MatchMode{
	"":                 Exact,
	"exact":            Exact,
	"fold":             FoldCase,
	"foldcase":         FoldCase,
	"insensitive":      FoldCase,
	"case-insensitive": FoldCase,
}

// ParseMatchMode maps a configuration value to a MatchMode.
// Unknown values fall back to Exact; use CheckMatchMode to reject them.
func ParseMatchMode(s string) MatchMode {
	return matchModeNames[normalizeModeName(s)]
}

// CheckMatchMode reports an error for values ParseMatchMode does not know.
func CheckMatchMode(s string) error {
	if _, ok := matchModeNames[normalizeModeName(s)]; !ok {
		return fmt.Errorf("unknown match mode %q (want exact or fold)", s)
	}
	return nil
}

func normalizeModeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (m MatchMode) String() string {
	if m == FoldCase {
		return "fold"
	}
	return "exact"
}

// FindFirst returns the first item whose label satisfies pred.
// Items after the first match are never inspected.
func FindFirst[T Labeled](items []T, pred func(label string) bool) (T, bool) {
	for _, item := range items {
		if pred(item.Label()) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// LabelEquals builds a predicate matching want under the given mode.
func LabelEquals(want string, mode MatchMode) func(string) bool {
	if mode == FoldCase {
		return func(label string) bool { return strings.EqualFold(label, want) }
	}
	return func(label string) bool { return label == want }
}

// LabelIn builds a predicate matching any of wants under the given mode.
func LabelIn(mode MatchMode, wants ...string) func(string) bool {
	preds := make([]func(string) bool, len(wants))
	for i, w := range wants {
		preds[i] = LabelEquals(w, mode)
	}
	return func(label string) bool {
		for _, p := range preds {
			if p(label) {
				return true
			}
		}
		return false
	}
}
