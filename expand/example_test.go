package expand_test

import (
	"fmt"

	"github.com/katalvlaran/lvpal/expand"
)

// ExampleSolve finds the even-length answer of "cbbd".
func ExampleSolve() {
	res, _, err := expand.Solve("cbbd")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s [%d,%d]\n", res.Substring, res.Start, res.End)
	// Output:
	// bb [1,2]
}
