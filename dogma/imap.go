package dogma

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// defaultMapTable is the built-in interaction map: the three dogma cascade
// steps, transcriptional and activity regulation in both signs, and the
// reserved observation pseudo-interaction.
const defaultMapTable = "-dt>\tgenome\tmRNA\tpositive\n" +
	"-dr>\tmRNA\tprotein\tpositive\n" +
	"-dp>\tprotein\tactive\tpositive\n" +
	"-t>\tactive\tmRNA\tpositive\n" +
	"-t|\tactive\tmRNA\tnegative\n" +
	"-a>\tactive\tactive\tpositive\n" +
	"-a|\tactive\tactive\tnegative\n" +
	"-ap>\tactive\tactive\tpositive\n" +
	"-ap|\tactive\tactive\tnegative\n" +
	"->\tactive\tactive\tpositive\n" +
	"-|\tactive\tactive\tnegative\n" +
	"<->\tactive\tactive\tpositive\n" +
	"component>\tactive\tactive\tpositive\n" +
	"-obs>\tactive\tobs\tpositive\n"

// Map is an immutable lookup from interaction symbol to its Entry.
// Build one with ParseMap or DefaultMap; the zero value matches nothing.
type Map struct {
	entries map[string]Entry
}

// ParseMap reads a line-oriented interaction-map table from r.
//
// Each line must carry exactly 4 whitespace- or tab-separated fields:
// symbol, from-species, to-species, polarity. Any other field count
// (including a blank line) fails with ErrMapFieldCount wrapped with the
// offending line number. Later lines for the same symbol overwrite earlier
// ones; no uniqueness is enforced.
//
// Complexity: O(L) over input lines.
func ParseMap(r io.Reader) (*Map, error) {
	entries := make(map[string]Entry)
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d has %d", ErrMapFieldCount, lineNo, len(fields))
		}
		entries[fields[0]] = Entry{From: fields[1], To: fields[2], Polarity: fields[3]}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Map{entries: entries}, nil
}

// DefaultMap returns the built-in interaction map. It is parsed from a
// compile-time table and never fails.
func DefaultMap() *Map {
	m, err := ParseMap(strings.NewReader(defaultMapTable))
	if err != nil {
		panic(err) // unreachable: the table is a compile-time constant
	}

	return m
}

// Lookup returns the Entry registered for symbol and whether it exists.
func (m *Map) Lookup(symbol string) (Entry, bool) {
	e, ok := m.entries[symbol]

	return e, ok
}

// Len reports the number of distinct symbols in the map.
func (m *Map) Len() int {
	return len(m.entries)
}
