package pathway

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a line-oriented pathway description from r and builds the
// Graph in two phases, mirroring the file format's contract: every
// two-field line is an entity declaration, every three-field line an
// interaction declaration, and any other field count fails with
// ErrLineFieldCount wrapped with the offending line number.
//
// All entity declarations are applied before any interaction, so an
// interaction may precede the declaration of its endpoints in the file and
// still see their declared types.
//
// Complexity: O(L) over input lines plus graph insertion.
func Parse(r io.Reader, opts ...Option) (*Graph, error) {
	var entityLines, interactionLines [][]string
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		switch len(fields) {
		case 2:
			entityLines = append(entityLines, fields)
		case 3:
			interactionLines = append(interactionLines, fields)
		default:
			return nil, fmt.Errorf("%w: line %d has %d", ErrLineFieldCount, lineNo, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	g := New(opts...)
	for _, fields := range entityLines {
		if err := g.AddEntity(fields[1], fields[0]); err != nil {
			return nil, err
		}
	}
	for _, fields := range interactionLines {
		if err := g.AddInteraction(fields[0], fields[1], fields[2]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
