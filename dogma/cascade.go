package dogma

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// defaultCascadeTable is the built-in central dogma:
// genome → mRNA → protein → active.
const defaultCascadeTable = "genome\tmRNA\t-dt>\n" +
	"mRNA\tprotein\t-dr>\n" +
	"protein\tactive\t-dp>\n"

// Cascade is the immutable central-dogma template. It records the species
// set touched by the cascade and the step symbols linking them; a pathway
// graph instantiates both once per protein-type entity.
type Cascade struct {
	species []string // sorted, deduplicated
	steps   []string // sorted, deduplicated
}

// ParseCascade reads a line-oriented central-dogma table from r.
//
// Each line must carry exactly 3 whitespace- or tab-separated fields:
// from-species, to-species, step-symbol. Any other field count fails with
// ErrCascadeFieldCount wrapped with the offending line number. Species and
// step symbols are collected as sets; iteration order is sorted so cascade
// expansion is deterministic.
//
// Complexity: O(L·log L) over input lines (final sort).
func ParseCascade(r io.Reader) (*Cascade, error) {
	speciesSet := make(map[string]struct{})
	stepSet := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d has %d", ErrCascadeFieldCount, lineNo, len(fields))
		}
		speciesSet[fields[0]] = struct{}{}
		speciesSet[fields[1]] = struct{}{}
		stepSet[fields[2]] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Cascade{
		species: sortedKeys(speciesSet),
		steps:   sortedKeys(stepSet),
	}, nil
}

// DefaultCascade returns the built-in genome→mRNA→protein→active template.
func DefaultCascade() *Cascade {
	c, err := ParseCascade(strings.NewReader(defaultCascadeTable))
	if err != nil {
		panic(err) // unreachable: the table is a compile-time constant
	}

	return c
}

// Species returns the cascade's species labels in sorted order.
// The slice is a copy; callers may mutate it freely.
func (c *Cascade) Species() []string {
	return append([]string(nil), c.species...)
}

// Steps returns the cascade's step symbols in sorted order.
// The slice is a copy; callers may mutate it freely.
func (c *Cascade) Steps() []string {
	return append([]string(nil), c.steps...)
}

// sortedKeys flattens a string set into a sorted slice.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
