package emgroup

import (
	"sort"

	"github.com/katalvlaran/pathfactor/factor"
)

// Match reports whether a factor with the given child species and
// incoming-edge labels (in parent order) belongs to this Spec's group.
//
// A factor matches iff the species is equal, the edge-label multiset has
// no duplicates, and the label set equals Spec.EdgeLabels exactly.
//
// Complexity: O(E·log E) over the factor's edge count.
func (s Spec) Match(species string, edgeLabels []string) bool {
	if species != s.Species {
		return false
	}
	set := uniqueSorted(edgeLabels)
	if len(set) != len(edgeLabels) {
		// Duplicate labels make per-label reordering ambiguous.
		return false
	}
	if len(set) != len(s.EdgeLabels) {
		return false
	}
	for i := range set {
		if set[i] != s.EdgeLabels[i] {
			return false
		}
	}

	return true
}

// Reorder builds the group-aligned variable order for a matched factor:
// the child variable first, then for each label in the Spec's canonical
// order the one parent variable carrying that label.
//
// vars must be the factor's variables (child first, parents aligned with
// edgeLabels); the factor must have matched via Match.
func (s Spec) Reorder(vars []factor.Variable, edgeLabels []string) []factor.Variable {
	order := make([]factor.Variable, 0, len(s.EdgeLabels)+1)
	order = append(order, vars[0])
	for _, label := range s.EdgeLabels {
		for k, el := range edgeLabels {
			if el == label {
				order = append(order, vars[k+1])
				break
			}
		}
	}

	return order
}

// uniqueSorted returns the sorted set of labels.
func uniqueSorted(labels []string) []string {
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		set[label] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for label := range set {
		out = append(out, label)
	}
	sort.Strings(out)

	return out
}
