// Package emgroup partitions generated factors into parameter-sharing
// groups for an external expectation-maximization step.
//
// A sharing Spec names a node species and an exact set of incoming-edge
// labels. A factor matches a Spec when its child has that species, its
// edge-label multiset has no duplicate labels, and the label set equals the
// Spec's set exactly. Duplicate-label factors are excluded from sharing
// because the per-label variable reordering would be ambiguous.
//
// On a match, the factor's variables are reordered so parents line up by
// edge label across all group members: child first, then one parent per
// Spec label in the Spec's canonical (sorted) order. The accumulated
// orderings, together with a conditional-probability Estimator
// configuration, form the SharedParameters of a MaximizationStep consumed
// by the inference engine's EM machinery.
package emgroup
