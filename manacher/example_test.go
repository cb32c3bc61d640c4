package manacher_test

import (
	"fmt"

	"github.com/katalvlaran/lvpal/manacher"
)

// ExampleTransform shows the sentinel layout.
func ExampleTransform() {
	t := manacher.Transform([]rune("abba"))
	fmt.Println(manacher.Printable(t), len(t))
	// Output:
	// ^#a#b#b#a#$ 11
}

// ExampleSolve finds the even-length answer.
func ExampleSolve() {
	res, _, err := manacher.Solve("forgeeksskeegfor")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s [%d,%d]\n", res.Substring, res.Start, res.End)
	// Output:
	// geeksskeeg [3,12]
}
