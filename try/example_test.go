package try_test

import (
	"fmt"

	"github.com/zerr-io/zerr"
	"github.com/zerr-io/zerr/try"
)

func ExampleResult() {
	div := func(a, b int) try.Result[int] {
		if b == 0 {
			return try.Failure[int](zerr.New("div 0"))
		}
		return try.Value(a / b)
	}

	if r := div(10, 0); r.IsFailure() {
		fmt.Println(zerr.String(r.Error()))
	}
	fmt.Println(div(10, 5).Value())
	// Output:
	// div 0
	// 2
}
