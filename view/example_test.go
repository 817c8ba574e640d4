package view_test

import (
	"fmt"
	"strings"

	"github.com/dacapoday/ranges/view"
)

func Example() {
	even := func(x int) bool { return x%2 == 0 }

	v := view.Pipe(view.Slice([]int{0, 2, 3, 1, 4, 5, 1, 6, 7}), view.RemoveIf, even)
	for seg := range view.Split(v, 1).All() {
		fmt.Println(seg.Collect())
	}

	// Output:
	// [3]
	// [5]
	// [7]
}

func ExampleMerge() {
	over := view.Slice([]int{1, 4, 9})
	base := view.Iota(3, 6)

	merged := view.Merge(over, base, func(a, b int) int { return a - b })
	fmt.Println(merged.Collect())

	// Output:
	// [1 3 4 5 9]
}

func ExampleLines() {
	lines := view.Lines(strings.NewReader("alpha\nbeta\ngamma\n"))
	defer lines.Close()

	for line := range view.TakeInput(lines.View, 2).All() {
		fmt.Println(line)
	}
	fmt.Println(lines.Collect())

	// Output:
	// alpha
	// beta
	// [gamma]
}
