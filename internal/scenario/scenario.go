// Package scenario loads named disk sets with optional expectations from
// YAML files, and ships a set of built-in scenarios.
package scenario

import (
	"fmt"

	"github.com/vovakirdan/discs/internal/geom"
)

// Scenario is a named set of disks.
type Scenario struct {
	ID       string
	Name     string
	Disks    []geom.Disk
	Expect   Expectation
	Metadata map[string]string
	FilePath string // Empty for built-in and generated scenarios
}

// Expectation describes what a scenario's author expects the search and the
// pair classifier to report. Unset fields are not checked.
type Expectation struct {
	Common *bool
	Pairs  []PairExpectation
}

// PairExpectation is the expected classification of disks I and J.
type PairExpectation struct {
	I, J int
	Type geom.IntersectionType
}

// IsEmpty reports whether the expectation checks nothing.
func (e Expectation) IsEmpty() bool {
	return e.Common == nil && len(e.Pairs) == 0
}

// Validate checks the disks and that every pair expectation refers to
// existing disks.
func (s Scenario) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scenario: missing id")
	}
	if err := geom.Validate(s.Disks); err != nil {
		return fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	for _, p := range s.Expect.Pairs {
		if p.I < 0 || p.J < 0 || p.I >= len(s.Disks) || p.J >= len(s.Disks) || p.I == p.J {
			return fmt.Errorf("scenario %s: bad pair (%d, %d) for %d disks", s.ID, p.I, p.J, len(s.Disks))
		}
	}
	return nil
}

// Check compares a search report against the scenario's expectations and
// returns a description of every mismatch. Pair expectations are checked by
// classifying the pair directly, since a search may stop before reaching it.
func (s Scenario) Check(r geom.Report) []string {
	var mismatches []string

	if s.Expect.Common != nil && *s.Expect.Common != r.Found {
		mismatches = append(mismatches,
			fmt.Sprintf("common point: expected %v, got %v", *s.Expect.Common, r.Found))
	}

	for _, p := range s.Expect.Pairs {
		got, _ := s.Disks[p.I].Classify(s.Disks[p.J])
		if got != p.Type {
			mismatches = append(mismatches,
				fmt.Sprintf("pair (%d, %d): expected %v, got %v", p.I, p.J, p.Type, got))
		}
	}

	return mismatches
}

// Title returns the name, or the ID when the scenario has no name.
func (s Scenario) Title() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}
