package vector_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/Paradox644/mp2-lab2-matrix/vector"
)

// ExampleVector_Dot shows construction from a slice and the dot product.
func ExampleVector_Dot() {
	a, _ := vector.FromSlice([]int{1, 2, 3})
	b, _ := vector.FromSlice([]int{4, 5, 6})

	dot, err := a.Dot(b)
	if err != nil {
		fmt.Println("dot:", err)
		return
	}
	fmt.Println(dot)

	// Output:
	// 32
}

// ExampleVector_Scan reads a vector from text and prints it back.
func ExampleVector_Scan() {
	v, _ := vector.New[float64](3)
	if err := v.Scan(strings.NewReader("1.5 2\n-3")); err != nil {
		fmt.Println("scan:", err)
		return
	}
	_, _ = v.MulScalar(2).WriteTo(os.Stdout)
	fmt.Println()

	// Output:
	// 3 4 -6
}

// ExampleVector_At shows the strict upper bound.
func ExampleVector_At() {
	v, _ := vector.New[int](5)
	_, err := v.At(5)
	fmt.Println(err)

	// Output:
	// Vector.At(5) len=5: vector: index out of range
}
