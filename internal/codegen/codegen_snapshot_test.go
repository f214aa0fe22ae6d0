package codegen_test

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestCodegenSnapshots locks down the generated Python for one representative
// program per language feature, so an accidental change to lowering shows up
// as a snapshot diff instead of a silent behavior change.
func TestCodegenSnapshots(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{
			"contracted_function",
			"define divide(a: Int, b: Int) -> Int\n  expect b != 0\n  ensure result * b <= a\ngiven\n  a / b\n",
		},
		{
			"sum_type_and_given",
			"type Shape =\n  | Circle(Float)\n  | Square(Float)\n\ndefine area(s: Shape) -> Float\ngiven\n  given s\n    Circle(r) -> r\n    Square(side) -> side\n",
		},
		{
			"when_statement",
			"define sign(x: Int) -> Int\ngiven\n  when x < 0\n    -1\n  otherwise\n    1\n",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			out := generate(t, c.source)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", c.name), out)
		})
	}
}
