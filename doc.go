// Package pathfactor turns plain-text gene-regulatory pathway descriptions
// into the factor-graph inputs of an external probabilistic inference engine.
//
// 🚀 What is pathfactor?
//
//	A deterministic, in-memory library that brings together:
//		• Interaction maps: symbol → (source species, target species, polarity)
//		• Central-dogma templates: the genome→mRNA→protein→active cascade
//		• Pathway graphs: canonical node arenas + child-keyed labeled adjacency
//		• Vote-based factor tables: repressor-dominates conditional probabilities
//		• Parameter sharing: EM maximization-step grouping by (species, edge set)
//
// ✨ Why choose pathfactor?
//
//   - Deterministic output – stable node ids, sorted traversal, byte-identical runs
//   - Pure Go – no cgo, no hidden deps
//   - Built-in defaults – standard interaction map and central dogma, zero files needed
//   - Extensible – inject custom factor generators per (entity type, species)
//
// Everything is organized under four subpackages:
//
//	dogma/   — interaction-map and central-dogma parsing + built-in defaults
//	factor/  — Variable/Factor value types and the vote-based table generator
//	emgroup/ — parameter-sharing specs, matching, and maximization steps
//	pathway/ — the pathway graph: entities, nodes, edges, factor emission
//
// Quick ASCII example:
//
//	TP53(genome) ─▶ TP53(mRNA) ─▶ TP53(protein) ─▶ TP53(active) ─a|▶ MDM2(active)
//
//	one protein entity expanded through the central dogma, repressing another.
//
// Dive into the subpackage docs for formats, invariants, and examples.
//
//	go get github.com/katalvlaran/pathfactor
package pathfactor
