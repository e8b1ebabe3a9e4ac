// Package pathway builds the probabilistic graphical model of a
// gene-regulatory pathway from plain-text descriptions.
//
// A pathway description is line-oriented with whitespace- or tab-separated
// fields. Two-field lines declare entities, three-field lines declare
// interactions:
//
//	<type> <entity>                  — entity declaration
//	<from-entity> <to-entity> <sym>  — interaction declaration
//
// Any other field count is a format error. Entities of type "protein" are
// expanded through the central-dogma template into genome/mRNA/protein/
// active nodes wired by the cascade's own interactions; every other entity
// becomes a single "active" node. Interactions resolve through the
// interaction map to concrete (node, node, polarity) edges; a resolved
// self-loop is silently discarded, and a duplicate edge between the same
// resolved node pair overwrites the earlier label.
//
// Construction is a strictly single-threaded pass: parse, register,
// expand. Node ids are dense, zero-based, and assigned in insertion order;
// all output traversal is explicitly sorted, so two runs over identical
// inputs are byte-identical. A Graph is not safe for concurrent mutation;
// share it only after construction completes.
//
// After construction, Factors walks every node with incoming edges,
// generates its conditional-probability table (a registered override or
// the default repressor-dominates vote rule), and populates the requested
// EM parameter-sharing groups. WriteNodeMap and WriteFactorSection emit
// the byte layouts consumed by the external inference engine.
//
// Errors:
//
//	ErrLineFieldCount     - pathway line with neither 2 nor 3 fields.
//	ErrUnknownInteraction - interaction symbol absent from the map.
//	ErrUnknownEntity      - observation injection on an unregistered entity.
//	ErrNodeNotFound       - observation injection on a missing hidden node.
//	ErrTableLength        - generated table length violates the cardinality
//	                        product invariant (fatal internal error).
package pathway
