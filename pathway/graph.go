package pathway

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/katalvlaran/pathfactor/dogma"
	"github.com/katalvlaran/pathfactor/factor"
)

// Graph owns the canonical node set of one pathway model: the
// entity→type registry, the dense node arena, and the child-keyed labeled
// adjacency. Build one with New (programmatic) or Parse (from a pathway
// description), mutate it with AddEntity / AddInteraction /
// AddObservationNode, then emit with Factors and the Write methods.
//
// All mutation must happen in a single construction pass before any
// emission; the Graph carries no locks.
type Graph struct {
	imap    *dogma.Map
	cascade *dogma.Cascade
	warn    io.Writer

	defaultGen factor.Generator
	overrides  map[genKey]factor.Generator

	entities map[string]string        // entity id → type
	ids      map[Node]int             // node → dense id (insertion order)
	nodes    []Node                   // id → node
	parents  map[Node]map[Node]string // child → parent → edge label
}

// New creates an empty Graph with the built-in interaction map, central
// dogma, and vote-based factor generator, then applies opts.
// Complexity: O(1) plus option application.
func New(opts ...Option) *Graph {
	g := &Graph{
		imap:       dogma.DefaultMap(),
		cascade:    dogma.DefaultCascade(),
		warn:       os.Stderr,
		defaultGen: factor.NewVoteGenerator(factor.DefaultEpsilon),
		overrides:  make(map[genKey]factor.Generator),
		entities:   make(map[string]string),
		ids:        make(map[Node]int),
		parents:    make(map[Node]map[Node]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddEntity registers an entity under the given type. Re-registering an
// existing entity is a no-op regardless of the type supplied.
//
// A "protein" entity is expanded through the central-dogma template: one
// node per cascade species plus the cascade's self-interactions, wired
// through the standard interaction path. Any other type yields a single
// (entity, "active") node.
//
// AddEntity fails only when a cascade step symbol is missing from the
// interaction map.
func (g *Graph) AddEntity(id, entityType string) error {
	if _, ok := g.entities[id]; ok {
		return nil
	}
	g.entities[id] = entityType
	if entityType != EntityProtein {
		g.addNode(Node{Entity: id, Species: dogma.SpeciesActive})

		return nil
	}
	for _, species := range g.cascade.Species() {
		g.addNode(Node{Entity: id, Species: species})
	}
	for _, step := range g.cascade.Steps() {
		if err := g.AddInteraction(id, id, step); err != nil {
			return fmt.Errorf("cascade expansion of %q: %w", id, err)
		}
	}

	return nil
}

// AddInteraction resolves an interaction symbol through the map and
// records the directed edge between the resolved nodes.
//
// Both entities are registered on demand (as proteins) if the pathway
// never declared them. Protein entities resolve to the species named by
// the map entry; every other entity resolves to its single "active" node.
// A resolved self-loop is discarded, and a later edge between the same
// resolved node pair overwrites the earlier label.
//
// Fails with ErrUnknownInteraction when the symbol is not in the map.
func (g *Graph) AddInteraction(fromEntity, toEntity, symbol string) error {
	entry, ok := g.imap.Lookup(symbol)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInteraction, symbol)
	}
	if err := g.AddEntity(fromEntity, EntityProtein); err != nil {
		return err
	}
	if err := g.AddEntity(toEntity, EntityProtein); err != nil {
		return err
	}

	from := g.resolve(fromEntity, entry.From)
	to := g.resolve(toEntity, entry.To)
	if from == to {
		// Self-loop after resolution; nothing to record.
		return nil
	}
	g.addNode(from)
	g.addNode(to)
	g.addEdge(from, to, entry.Polarity)

	return nil
}

// AddObservationNode creates a fresh (entity, obsSpecies) node and wires a
// directed edge from the existing hidden node at onSpecies to it, labeled
// with the reserved observation symbol. The hidden variable's own factor
// is unaffected; the returned Variable handles the new observation node
// for downstream evidence binding.
//
// Fails with ErrUnknownEntity when the entity was never registered and
// with ErrNodeNotFound when no hidden node exists at onSpecies.
func (g *Graph) AddObservationNode(entity, onSpecies, obsSpecies string) (factor.Variable, error) {
	if _, ok := g.entities[entity]; !ok {
		return factor.Variable{}, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	hidden := g.resolve(entity, onSpecies)
	if _, ok := g.ids[hidden]; !ok {
		return factor.Variable{}, fmt.Errorf("%w: %s", ErrNodeNotFound, hidden)
	}
	obs := Node{Entity: entity, Species: obsSpecies}
	g.addNode(obs)
	g.addEdge(hidden, obs, dogma.ObservationSymbol)

	return factor.NewVariable(g.ids[obs]), nil
}

// NodeID returns the dense id of n and whether the node exists.
func (g *Graph) NodeID(n Node) (int, bool) {
	id, ok := g.ids[n]

	return id, ok
}

// Nodes returns every node in id (insertion) order. The slice is a copy.
func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// Len reports the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// EntityType returns the registered type of an entity and whether the
// entity exists.
func (g *Graph) EntityType(id string) (string, bool) {
	t, ok := g.entities[id]

	return t, ok
}

// ActiveNodes returns node id → entity for every node at the "active"
// species, the handles downstream callers bind observations and report
// beliefs against.
func (g *Graph) ActiveNodes() map[int]string {
	out := make(map[int]string)
	for i, n := range g.nodes {
		if n.Species == dogma.SpeciesActive {
			out[i] = n.Entity
		}
	}

	return out
}

// resolve maps an entity to its concrete node for a required species:
// protein entities carry the species as-is, everything else collapses to
// the single "active" node.
func (g *Graph) resolve(entity, species string) Node {
	if g.entities[entity] == EntityProtein {
		return Node{Entity: entity, Species: species}
	}

	return Node{Entity: entity, Species: dogma.SpeciesActive}
}

// addNode inserts n if absent, assigning the next dense id. Ids are never
// reused or renumbered.
func (g *Graph) addNode(n Node) {
	if _, ok := g.ids[n]; ok {
		return
	}
	g.ids[n] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.parents[n] = make(map[Node]string)
}

// addEdge records parent→child with the given label. Both endpoints must
// already exist in the arena. Last write wins per (parent, child) pair.
func (g *Graph) addEdge(from, to Node, label string) {
	g.parents[to][from] = label
}

// sortedChildren returns every node ordered by (Entity, Species); the
// canonical emission order for factors and the factor section.
func (g *Graph) sortedChildren() []Node {
	children := append([]Node(nil), g.nodes...)
	sort.Slice(children, func(i, j int) bool { return children[i].Less(children[j]) })

	return children
}

// sortedParents returns the keys of a child's parent map ordered by
// (Entity, Species).
func sortedParents(pmap map[Node]string) []Node {
	parents := make([]Node, 0, len(pmap))
	for p := range pmap {
		parents = append(parents, p)
	}
	sort.Slice(parents, func(i, j int) bool { return parents[i].Less(parents[j]) })

	return parents
}

// generatorFor returns the table generator for a child node: a registered
// (entity type, species) override when present, else the default.
func (g *Graph) generatorFor(child Node) factor.Generator {
	if gen, ok := g.overrides[genKey{g.entities[child.Entity], child.Species}]; ok {
		return gen
	}

	return g.defaultGen
}
