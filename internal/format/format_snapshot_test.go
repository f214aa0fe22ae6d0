package format_test

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFormatSnapshots locks down the canonical rendering of one representative
// program per construct, so a change to the formatter's output shape shows up
// as a snapshot diff.
func TestFormatSnapshots(t *testing.T) {
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
			"type_with_invariant",
			"type Positive = Int\n  invariant value > 0\n",
		},
		{
			"nested_when",
			"define classify(x: Int) -> Int\ngiven\n  when x < 0\n    -1\n  otherwise\n    when x == 0\n      0\n    otherwise\n      1\n",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			out := formatSource(t, c.source)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", c.name), out)
		})
	}
}
