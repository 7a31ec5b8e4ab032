package point_test

import (
	"fmt"

	"github.com/mikenye/overlay2d/point"
)

func ExampleNew() {
	p := point.New(10, 20)
	fmt.Println(p)
	// Output:
	// (10,20)
}

func ExampleOrientation() {
	p, q, r := point.New(0, 0), point.New(4, 0), point.New(4, 4)
	fmt.Println(point.Orientation(p, q, r))
	// Output:
	// CounterClockwise
}
