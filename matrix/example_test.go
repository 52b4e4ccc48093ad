package matrix_test

import (
	"fmt"
	"strings"

	"github.com/Paradox644/mp2-lab2-matrix/matrix"
	"github.com/Paradox644/mp2-lab2-matrix/vector"
)

// ExampleMatrix_Mul multiplies two matrices read from text.
func ExampleMatrix_Mul() {
	a, _ := matrix.New[int](2)
	b, _ := matrix.New[int](2)
	in := vector.AsRuneScanner(strings.NewReader("1 2\n3 4\n\n5 6\n7 8\n"))
	if err := a.Scan(in); err != nil {
		fmt.Println("scan a:", err)
		return
	}
	if err := b.Scan(in); err != nil {
		fmt.Println("scan b:", err)
		return
	}

	c, err := a.Mul(b)
	if err != nil {
		fmt.Println("mul:", err)
		return
	}
	fmt.Printf("%q\n", c.String()) // rows end with a space and a newline

	// Output:
	// "19 22 \n43 50 \n"
}

// ExampleMatrix_MulVec shows that matrix × vector yields a vector.
func ExampleMatrix_MulVec() {
	m, _ := matrix.FromRows([][]float64{
		{2, 0},
		{1, 3},
	})
	x, _ := vector.FromSlice([]float64{1.5, -1})

	y, err := m.MulVec(x)
	if err != nil {
		fmt.Println("mulvec:", err)
		return
	}
	fmt.Printf("%d %q\n", y.Len(), y.String())

	_, err = m.MulVec(vector.NewDefault[float64]())
	fmt.Println(err)

	// Output:
	// 2 "3 -1.5 "
	// Matrix.MulVec: vector length 1, matrix size 2: matrix: dimension mismatch
}
