// Package dogma parses the two fixed-vocabulary tables every pathway model
// is built from: the interaction map and the central-dogma cascade.
//
// An interaction map is a line-oriented table of exactly four
// whitespace-separated fields:
//
//	<symbol> <from-species> <to-species> <polarity>
//
// where <polarity> is "positive" or "negative". It resolves the symbolic
// edge types of a pathway description ("-a>", "-t|", ...) to concrete
// species endpoints and a regulation sign.
//
// A central-dogma table is a line-oriented table of exactly three fields:
//
//	<from-species> <to-species> <symbol>
//
// describing the canonical genome→mRNA→protein→active cascade that is
// instantiated once per protein-type entity.
//
// Both tables are immutable once parsed. DefaultMap and DefaultCascade
// reproduce the standard built-in tables, so no external files are needed
// for the common case.
//
// Errors:
//
//	ErrMapFieldCount     - interaction-map line does not have exactly 4 fields.
//	ErrCascadeFieldCount - central-dogma line does not have exactly 3 fields.
package dogma
