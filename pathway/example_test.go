package pathway_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/pathfactor/emgroup"
	"github.com/katalvlaran/pathfactor/pathway"
)

// ExampleParse builds a two-entity pathway and prints its node-index table.
func ExampleParse() {
	input := "protein TP53\n" +
		"abstract apoptosis\n" +
		"TP53 apoptosis ->\n"

	g, err := pathway.Parse(strings.NewReader(input))
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	_ = g.WriteNodeMap(os.Stdout, "")

	// Output:
	// 0	TP53	active
	// 1	TP53	genome
	// 2	TP53	mRNA
	// 3	TP53	protein
	// 4	apoptosis	active
}

// ExampleGraph_Factors emits factors and one parameter-sharing step for a
// minimal repression motif.
func ExampleGraph_Factors() {
	g := pathway.New(pathway.WithWarnings(os.Stderr))
	_ = g.AddEntity("A", "abstract")
	_ = g.AddEntity("B", "abstract")
	_ = g.AddInteraction("A", "B", "-|")

	steps := []emgroup.Step{{emgroup.NewSpec("active", "negative")}}
	factors, msteps, err := g.Factors(steps)
	if err != nil {
		fmt.Println("factors:", err)
		return
	}
	fmt.Println("factors:", len(factors))
	fmt.Println("steps:", len(msteps))
	fmt.Println("group size:", len(msteps[0].Shared[0].Orders))

	// Output:
	// factors: 1
	// steps: 1
	// group size: 1
}
