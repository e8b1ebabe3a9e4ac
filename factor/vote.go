package factor

import "github.com/katalvlaran/pathfactor/dogma"

// VoteGenerator — repressor-dominates conditional-probability tables.
//
// Description:
//
//	For a child of cardinality 3 with N incoming edges, every joint parent
//	assignment is enumerated and each parent casts one vote for a child
//	state. A parent in state d votes for d on a positive edge and for
//	2-d on a negative edge (polarity inversion). The expected child state
//	is then decided repressor-first from the down/up tallies, and the
//	emitted row puts 1-ε on the expected state and ε/2 on each other state.
//
// Algorithm Outline:
//  1. Enumerate all 3^N assignments in mixed-radix order: assignment index
//     i decomposes with radix 3, the first edge's digit cycling fastest.
//  2. Tally votes into 3 buckets, inverting digits on "negative" edges.
//  3. Expected state: up-votes win only when strictly positive and strictly
//     ahead; any down-vote at least tied wins for down; otherwise neutral.
//     The neutral fallthrough covers both the zero-vote case (N = 0) and
//     the down == up > 0 tie.
//  4. Emit 3 values per assignment: one major (1-ε), two minors (ε/2).
//
// Complexity:
//
//	Time   = O(N · 3^N)
//	Memory = O(3^(N+1)) for the returned table.
//
// Every value is strictly positive for 0 < ε < 1, so downstream parameter
// estimation never encounters a zero likelihood.
type VoteGenerator struct {
	// Epsilon is the smoothing mass; values ≤ 0 fall back to DefaultEpsilon.
	Epsilon float64
}

// NewVoteGenerator returns a VoteGenerator with the given smoothing
// constant; epsilon ≤ 0 selects DefaultEpsilon.
func NewVoteGenerator(epsilon float64) VoteGenerator {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}

	return VoteGenerator{Epsilon: epsilon}
}

// Generate implements Generator with the repressor-dominates vote rule.
// The returned table has length Cardinality^(len(edgeLabels)+1).
func (g VoteGenerator) Generate(edgeLabels []string) []float64 {
	epsilon := g.Epsilon
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	major := 1 - epsilon
	minor := epsilon / 2

	assignments := 1
	for range edgeLabels {
		assignments *= Cardinality
	}

	values := make([]float64, 0, assignments*Cardinality)
	digits := make([]int, len(edgeLabels))
	for i := 0; i < assignments; i++ {
		var votes [Cardinality]int
		for j, label := range edgeLabels {
			if label == dogma.PolarityNegative {
				votes[Cardinality-1-digits[j]]++
			} else {
				votes[digits[j]]++
			}
		}
		expected := expectedState(votes[0], votes[Cardinality-1])
		for state := 0; state < Cardinality; state++ {
			if state == expected {
				values = append(values, major)
			} else {
				values = append(values, minor)
			}
		}
		// Advance the mixed-radix counter, first digit fastest.
		for j := 0; j < len(digits); j++ {
			digits[j]++
			if digits[j] < Cardinality {
				break
			}
			digits[j] = 0
		}
	}

	return values
}

// expectedState resolves the down/up vote tallies into a child state:
// 2 when up strictly wins, 0 when any down-vote at least ties, 1 otherwise.
func expectedState(down, up int) int {
	switch {
	case up > 0 && up > down:
		return Cardinality - 1
	case down > 0 && down >= up:
		return 0
	default:
		return 1
	}
}
