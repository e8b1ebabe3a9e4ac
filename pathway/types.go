// Package pathway declares the Node value type, sentinel errors, and the
// functional options of the Graph constructor.
package pathway

import (
	"errors"
	"io"

	"github.com/katalvlaran/pathfactor/dogma"
	"github.com/katalvlaran/pathfactor/factor"
)

// Sentinel errors for pathway graph construction.
var (
	// ErrLineFieldCount indicates a pathway line with neither 2 nor 3 fields.
	ErrLineFieldCount = errors.New("pathway: lines must have either 2 or 3 fields")

	// ErrUnknownInteraction indicates an interaction symbol absent from the map.
	ErrUnknownInteraction = errors.New("pathway: unknown interaction symbol")

	// ErrUnknownEntity indicates an operation referenced an unregistered entity.
	ErrUnknownEntity = errors.New("pathway: entity not registered")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("pathway: node not found")

	// ErrTableLength indicates a generated table whose length does not equal
	// the factor's cardinality product. This is an internal invariant
	// violation, not a user-recoverable condition.
	ErrTableLength = errors.New("pathway: factor table length mismatch")
)

// EntityProtein is the entity type expanded through the central-dogma
// template. Every other type yields a single "active" node.
const EntityProtein = "protein"

// Node is one concrete random variable: an entity taken at a species.
// Nodes are value-equal by (Entity, Species) and totally ordered for
// deterministic output.
type Node struct {
	// Entity is the pathway entity identifier.
	Entity string

	// Species is the dogma stage ("genome", "mRNA", "protein", "active")
	// for protein entities, or "active" for everything else.
	Species string
}

// Less reports whether n orders before o by (Entity, Species).
func (n Node) Less(o Node) bool {
	if n.Entity != o.Entity {
		return n.Entity < o.Entity
	}

	return n.Species < o.Species
}

// String renders the node as "entity:species".
func (n Node) String() string {
	return n.Entity + ":" + n.Species
}

// genKey selects a factor-generator override by entity type and species.
type genKey struct {
	entityType string
	species    string
}

// Option configures a Graph before construction.
type Option func(g *Graph)

// WithInteractionMap replaces the default built-in interaction map.
func WithInteractionMap(m *dogma.Map) Option {
	return func(g *Graph) { g.imap = m }
}

// WithCascade replaces the default built-in central-dogma template.
func WithCascade(c *dogma.Cascade) Option {
	return func(g *Graph) { g.cascade = c }
}

// WithEpsilon sets the smoothing constant of the default vote-based
// factor generator.
func WithEpsilon(epsilon float64) Option {
	return func(g *Graph) { g.defaultGen = factor.NewVoteGenerator(epsilon) }
}

// WithGenerator installs a custom conditional-probability-table generator
// for every node of the given (entity type, species) pair, overriding the
// default vote-based generator. The registry is owned by the Graph
// instance; there is no process-wide override state.
func WithGenerator(entityType, species string, gen factor.Generator) Option {
	return func(g *Graph) { g.overrides[genKey{entityType, species}] = gen }
}

// WithWarnings redirects non-fatal configuration warnings (EM sharing
// specs matching no node). The default is os.Stderr.
func WithWarnings(w io.Writer) Option {
	return func(g *Graph) { g.warn = w }
}
