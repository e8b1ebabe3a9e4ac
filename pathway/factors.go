package pathway

import (
	"fmt"

	"github.com/katalvlaran/pathfactor/emgroup"
	"github.com/katalvlaran/pathfactor/factor"
)

// Factors walks every node with at least one incoming edge and builds its
// conditional-probability Factor; nodes without parents are exogenous
// roots and emit nothing. Children are visited in sorted (Entity, Species)
// order and each factor lists the child variable first, then the parents
// in the same sorted order, so two runs over identical graphs emit
// byte-identical output.
//
// For every requested EM Step, each Spec that matches a factor (same child
// species, duplicate-free edge-label set equal to the Spec's set) stores
// that factor's per-label variable reordering in its sharing group. After
// the walk, every Step with at least one populated group becomes a
// MaximizationStep bound to a conditional-probability Estimator
// (TotalDim = the group's table dimension, TargetDim = 3). Specs and
// Steps matching nothing are reported on the warning writer and omitted;
// this is the only non-fatal condition.
//
// Fails with ErrTableLength when a generator violates the table-length
// invariant.
//
// Complexity: O(V·log V + Σ 3^(deg+1)) over nodes and parent degrees.
func (g *Graph) Factors(steps []emgroup.Step) ([]factor.Factor, []emgroup.MaximizationStep, error) {
	orders := make([][]map[int][]factor.Variable, len(steps))
	totalDims := make([][]int, len(steps))
	for i, step := range steps {
		orders[i] = make([]map[int][]factor.Variable, len(step))
		totalDims[i] = make([]int, len(step))
		for j := range step {
			orders[i][j] = make(map[int][]factor.Variable)
		}
	}

	var factors []factor.Factor
	for _, child := range g.sortedChildren() {
		pmap := g.parents[child]
		if len(pmap) == 0 {
			continue
		}

		parents := sortedParents(pmap)
		vars := make([]factor.Variable, 0, len(parents)+1)
		vars = append(vars, factor.NewVariable(g.ids[child]))
		labels := make([]string, 0, len(parents))
		totalDim := factor.Cardinality
		for _, p := range parents {
			vars = append(vars, factor.NewVariable(g.ids[p]))
			labels = append(labels, pmap[p])
			totalDim *= factor.Cardinality
		}

		values := g.generatorFor(child).Generate(labels)
		if len(values) != totalDim {
			return nil, nil, fmt.Errorf("%w: node %s has %d values, want %d",
				ErrTableLength, child, len(values), totalDim)
		}
		factors = append(factors, factor.Factor{Vars: vars, Values: values})

		factorIndex := len(factors) - 1
		for i, step := range steps {
			for j, spec := range step {
				if spec.Match(child.Species, labels) {
					orders[i][j][factorIndex] = spec.Reorder(vars, labels)
					totalDims[i][j] = totalDim
				}
			}
		}
	}

	var msteps []emgroup.MaximizationStep
	for i, step := range steps {
		shared := make([]emgroup.SharedParameters, 0, len(step))
		for j, spec := range step {
			if len(orders[i][j]) == 0 {
				fmt.Fprintf(g.warn, "!! no nodes of sub-type %q with incoming edges matching:\n", spec.Species)
				for _, label := range spec.EdgeLabels {
					fmt.Fprintf(g.warn, "!!  %s\n", label)
				}
				continue
			}
			shared = append(shared, emgroup.SharedParameters{
				Orders: orders[i][j],
				Estimator: emgroup.Estimator{
					TotalDim:  totalDims[i][j],
					TargetDim: factor.Cardinality,
				},
			})
		}
		if len(shared) == 0 {
			fmt.Fprintf(g.warn, "!! em step %d had no matching nodes in the pathway\n", i)
			continue
		}
		msteps = append(msteps, emgroup.MaximizationStep{Shared: shared})
	}

	return factors, msteps, nil
}
