package sort_test

import (
	"fmt"

	"github.com/khaledbenmachiche/parray/sort"
)

func ExampleSort() {
	data := []float64{5, 3, 1, 4, 2}
	if err := sort.Sort(data); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(data)

	// Output:
	// [1 2 3 4 5]
}
