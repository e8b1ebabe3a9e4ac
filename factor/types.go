package factor

// Cardinality is the fixed number of states of every pathway variable,
// encoding down/neutral/up.
const Cardinality = 3

// DefaultEpsilon is the default smoothing mass spread across the two
// non-expected states of each table row.
const DefaultEpsilon = 0.1

// Variable identifies one random variable of the external inference
// engine: a dense node id plus its cardinality.
type Variable struct {
	// ID is the dense, zero-based node id assigned by the pathway graph.
	ID int

	// Card is the number of states; always Cardinality for pathway nodes.
	Card int
}

// NewVariable returns the Variable for node id with the fixed pathway
// cardinality.
func NewVariable(id int) Variable {
	return Variable{ID: id, Card: Cardinality}
}

// Factor is one conditional-probability table: the child variable first,
// its parents in their emission order, and the dense probability values.
// len(Values) equals the product of all variable cardinalities.
type Factor struct {
	// Vars lists the child variable followed by the parent variables.
	Vars []Variable

	// Values is the dense table, indexed in mixed-radix order with the
	// first variable cycling fastest.
	Values []float64
}

// Generator produces the dense conditional-probability table for a child
// given the polarity labels of its incoming edges, in parent order.
// Implementations must return a table of length Cardinality^(len(edgeLabels)+1).
type Generator interface {
	Generate(edgeLabels []string) []float64
}
