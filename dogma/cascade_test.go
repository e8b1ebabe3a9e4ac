package dogma_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/pathfactor/dogma"
)

//----------------------------------------------------------------------------//
// ParseCascade Tests
//----------------------------------------------------------------------------//

// TestParseCascade_FieldCount verifies that malformed field counts are rejected.
func TestParseCascade_FieldCount(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"TwoFields", "genome\tmRNA\n"},
		{"FourFields", "genome\tmRNA\t-dt>\textra\n"},
		{"BlankLine", "genome\tmRNA\t-dt>\n\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dogma.ParseCascade(strings.NewReader(tc.input))
			if !errors.Is(err, dogma.ErrCascadeFieldCount) {
				t.Errorf("ParseCascade(%q) error = %v; want ErrCascadeFieldCount", tc.input, err)
			}
		})
	}
}

// TestParseCascade_Dedup verifies species and steps are collected as sorted sets.
func TestParseCascade_Dedup(t *testing.T) {
	input := "b\tc\t-y>\n" +
		"a\tb\t-x>\n" +
		"a\tb\t-x>\n"
	c, err := dogma.ParseCascade(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCascade error: %v", err)
	}
	if got, want := c.Species(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Species() = %v; want %v", got, want)
	}
	if got, want := c.Steps(), []string{"-x>", "-y>"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Steps() = %v; want %v", got, want)
	}
}

// TestDefaultCascade pins the built-in template's sorted species and steps.
func TestDefaultCascade(t *testing.T) {
	c := dogma.DefaultCascade()
	wantSpecies := []string{
		dogma.SpeciesActive,
		dogma.SpeciesGenome,
		dogma.SpeciesMRNA,
		dogma.SpeciesProtein,
	}
	if got := c.Species(); !reflect.DeepEqual(got, wantSpecies) {
		t.Errorf("Species() = %v; want %v", got, wantSpecies)
	}
	wantSteps := []string{"-dp>", "-dr>", "-dt>"}
	if got := c.Steps(); !reflect.DeepEqual(got, wantSteps) {
		t.Errorf("Steps() = %v; want %v", got, wantSteps)
	}
}

// TestCascade_CopySemantics verifies the accessors return copies.
func TestCascade_CopySemantics(t *testing.T) {
	c := dogma.DefaultCascade()
	species := c.Species()
	species[0] = "mutated"
	if got := c.Species(); got[0] != dogma.SpeciesActive {
		t.Errorf("Species() leaked internal slice: got[0] = %q", got[0])
	}
}
