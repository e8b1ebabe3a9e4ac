package pathway_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfactor/dogma"
	"github.com/katalvlaran/pathfactor/pathway"
)

// TestParse_FieldCount verifies every illegal field count aborts with the
// offending line number.
func TestParse_FieldCount(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  string
	}{
		{"OneField", "protein\n", "line 1"},
		{"FourFields", "protein TP53\nA B -> extra\n", "line 2"},
		{"BlankLine", "protein TP53\n\nprotein MDM2\n", "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pathway.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, pathway.ErrLineFieldCount)
			require.Contains(t, err.Error(), tc.line)
		})
	}
}

// TestParse_UnknownSymbol verifies an undeclared interaction symbol aborts
// construction.
func TestParse_UnknownSymbol(t *testing.T) {
	input := "abstract A\nabstract B\nA B -frob>\n"
	_, err := pathway.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, pathway.ErrUnknownInteraction)
}

// TestParse_TwoPhase verifies entity declarations apply before any
// interaction, whatever the line order in the file.
func TestParse_TwoPhase(t *testing.T) {
	input := "A B ->\nabstract A\nabstract B\n"
	g, err := pathway.Parse(strings.NewReader(input))
	require.NoError(t, err)

	// Both entities keep their declared abstract type: one node each,
	// no protein expansion from the earlier interaction line.
	require.Equal(t, 2, g.Len())
	typ, _ := g.EntityType("A")
	require.Equal(t, "abstract", typ)
}

// TestParse_SmallPathway verifies a mixed declaration/interaction file.
func TestParse_SmallPathway(t *testing.T) {
	input := "protein TP53\n" +
		"protein MDM2\n" +
		"abstract apoptosis\n" +
		"TP53 MDM2 -t>\n" +
		"MDM2 TP53 -a|\n" +
		"TP53 apoptosis ->\n"
	g, err := pathway.Parse(strings.NewReader(input))
	require.NoError(t, err)

	// 4 nodes per protein + 1 abstract node.
	require.Equal(t, 9, g.Len())

	// TP53(active) → MDM2(mRNA) via -t>, MDM2(active) ⊣ TP53(active),
	// TP53(active) → apoptosis(active).
	for _, n := range []pathway.Node{
		{Entity: "TP53", Species: dogma.SpeciesActive},
		{Entity: "MDM2", Species: dogma.SpeciesMRNA},
		{Entity: "apoptosis", Species: dogma.SpeciesActive},
	} {
		_, ok := g.NodeID(n)
		require.True(t, ok, "missing node %s", n)
	}
}

// TestParse_CustomTables verifies parsing against injected interaction-map
// and cascade tables.
func TestParse_CustomTables(t *testing.T) {
	imap, err := dogma.ParseMap(strings.NewReader("=>\tstate\tstate\tpositive\n"))
	require.NoError(t, err)
	cascade, err := dogma.ParseCascade(strings.NewReader("state\tstate\t=>\n"))
	require.NoError(t, err)

	input := "thing A\nthing B\nA B =>\n"
	g, err := pathway.Parse(strings.NewReader(input),
		pathway.WithInteractionMap(imap),
		pathway.WithCascade(cascade),
	)
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	// The default map's symbols are gone.
	require.ErrorIs(t, g.AddInteraction("A", "B", "->"), pathway.ErrUnknownInteraction)
}
