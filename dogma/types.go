// Package dogma defines species vocabulary, sentinel errors, and the
// immutable Entry value shared by the interaction map and the cascade.
package dogma

import "errors"

// Sentinel errors for dogma table parsing.
var (
	// ErrMapFieldCount indicates an interaction-map line without exactly 4 fields.
	ErrMapFieldCount = errors.New("dogma: interaction map lines must have 4 fields")

	// ErrCascadeFieldCount indicates a central-dogma line without exactly 3 fields.
	ErrCascadeFieldCount = errors.New("dogma: central dogma lines must have 3 fields")
)

// Canonical species labels of the central-dogma cascade.
const (
	// SpeciesGenome is the DNA stage of a protein-type entity.
	SpeciesGenome = "genome"

	// SpeciesMRNA is the transcript stage of a protein-type entity.
	SpeciesMRNA = "mRNA"

	// SpeciesProtein is the translated-product stage of a protein-type entity.
	SpeciesProtein = "protein"

	// SpeciesActive is the activated stage; also the single species of every
	// non-protein entity.
	SpeciesActive = "active"
)

// Edge polarity labels carried by interaction-map entries.
const (
	// PolarityPositive marks an activating regulation.
	PolarityPositive = "positive"

	// PolarityNegative marks a repressing regulation.
	PolarityNegative = "negative"
)

// ObservationSymbol is the reserved pseudo-interaction used to attach a
// noisy observation child to a hidden variable. Edges wired through
// observation injection carry this symbol as their label.
const ObservationSymbol = "-obs>"

// Entry resolves one interaction symbol: the species each endpoint entity
// must be taken at, and the sign of the regulation.
type Entry struct {
	// From is the species the source entity resolves to.
	From string

	// To is the species the target entity resolves to.
	To string

	// Polarity is PolarityPositive or PolarityNegative.
	Polarity string
}
