// Package factor defines the value types handed to the external inference
// engine (Variable, Factor) and the default conditional-probability-table
// generator used for every pathway node: the repressor-dominates vote rule.
//
// Every pathway variable has fixed cardinality 3, encoding a
// down/neutral/up (or absent/low/active) state. A Factor couples one child
// variable with its ordered parents and a dense probability table whose
// length is the product of all variable cardinalities.
//
// The vote generator enumerates every joint parent assignment in
// mixed-radix order (first parent cycles fastest), casts one vote per
// parent — inverted for negative edges — and emits a table biased toward
// the winning state with a strictly positive smoothing floor, so downstream
// parameter estimation never sees a zero likelihood.
package factor
