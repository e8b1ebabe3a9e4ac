package emgroup

import (
	"sort"

	"github.com/katalvlaran/pathfactor/factor"
)

// Spec is one parameter-sharing key: a node species plus the exact set of
// incoming-edge labels a matching factor must carry. EdgeLabels is held
// sorted and deduplicated; build Specs with NewSpec to guarantee that.
type Spec struct {
	// Species is the child node's species label ("active", "mRNA", ...).
	Species string

	// EdgeLabels is the canonical (sorted, unique) incoming-edge label set.
	EdgeLabels []string
}

// NewSpec builds a Spec, sorting and deduplicating the label set.
func NewSpec(species string, edgeLabels ...string) Spec {
	set := make(map[string]struct{}, len(edgeLabels))
	for _, label := range edgeLabels {
		set[label] = struct{}{}
	}
	canonical := make([]string, 0, len(set))
	for label := range set {
		canonical = append(canonical, label)
	}
	sort.Strings(canonical)

	return Spec{Species: species, EdgeLabels: canonical}
}

// Step is one EM maximization-step request: every Spec in it that matches
// at least one factor contributes a SharedParameters group.
type Step []Spec

// Estimator configures the inference engine's conditional-probability
// parameter estimation for one sharing group.
type Estimator struct {
	// TotalDim is the full table dimension shared by all group members.
	TotalDim int

	// TargetDim is the child cardinality; always factor.Cardinality.
	TargetDim int
}

// SharedParameters ties the factors of one populated sharing group
// together: for each matched factor index, the per-label variable
// reordering that aligns parents across the group.
type SharedParameters struct {
	// Orders maps factor index → reordered variables (child first, then
	// one parent per Spec label in canonical order).
	Orders map[int][]factor.Variable

	// Estimator is the parameter-estimation configuration for the group.
	Estimator Estimator
}

// MaximizationStep is one assembled EM step: the non-empty sharing groups
// produced by a Step request.
type MaximizationStep struct {
	Shared []SharedParameters
}
