package pathway

import (
	"fmt"
	"io"

	"github.com/katalvlaran/pathfactor/factor"
)

// WriteNodeMap emits the node-index table consumed by the external
// inference engine: one line per node in id order,
//
//	<prefix><id>\t<entity>\t<species>
//
// prefix is prepended verbatim to every line (typically empty or a
// comment marker).
func (g *Graph) WriteNodeMap(w io.Writer, prefix string) error {
	for i, n := range g.nodes {
		if _, err := fmt.Fprintf(w, "%s%d\t%s\t%s\n", prefix, i, n.Entity, n.Species); err != nil {
			return err
		}
	}

	return nil
}

// WriteFactorSection emits the factor section consumed by the external
// inference engine: the count of nodes with incoming edges, then per
// factor (children in sorted order, parents sorted within each factor) a
// blank line, the variable count, the space-separated variable ids (child
// first), the cardinalities, the table length, and one
// `<index>\t<probability>` line per entry in 6-decimal fixed point.
//
// Tables are produced by the same per-node generator lookup as Factors,
// so the printed section always agrees with the emitted factors.
func (g *Graph) WriteFactorSection(w io.Writer) error {
	count := 0
	for _, pmap := range g.parents {
		if len(pmap) > 0 {
			count++
		}
	}
	if _, err := fmt.Fprintf(w, "%d\n", count); err != nil {
		return err
	}

	for _, child := range g.sortedChildren() {
		pmap := g.parents[child]
		if len(pmap) == 0 {
			continue
		}
		parents := sortedParents(pmap)

		if _, err := fmt.Fprintf(w, "\n%d\n", len(parents)+1); err != nil {
			return err
		}

		// Variable ids: child first, then sorted parents.
		if _, err := fmt.Fprintf(w, "%d", g.ids[child]); err != nil {
			return err
		}
		labels := make([]string, 0, len(parents))
		totalDim := factor.Cardinality
		for _, p := range parents {
			if _, err := fmt.Fprintf(w, " %d", g.ids[p]); err != nil {
				return err
			}
			labels = append(labels, pmap[p])
			totalDim *= factor.Cardinality
		}

		// Variable cardinalities, all fixed at 3.
		if _, err := fmt.Fprintf(w, "\n%d", factor.Cardinality); err != nil {
			return err
		}
		for range parents {
			if _, err := fmt.Fprintf(w, " %d", factor.Cardinality); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		values := g.generatorFor(child).Generate(labels)
		if len(values) != totalDim {
			return fmt.Errorf("%w: node %s has %d values, want %d",
				ErrTableLength, child, len(values), totalDim)
		}
		if _, err := fmt.Fprintf(w, "%d\n", len(values)); err != nil {
			return err
		}
		for i, v := range values {
			if _, err := fmt.Fprintf(w, "%d\t%.6f\n", i, v); err != nil {
				return err
			}
		}
	}

	return nil
}
