package zerr_test

import (
	"fmt"

	"github.com/zerr-io/zerr"
)

type quotaError struct{ zerr.Base }

func ExampleNewf() {
	err := zerr.Newf("argc(%d) != 2", 3)
	fmt.Println(zerr.String(err))
	// Output: argc(3) != 2
}

func ExampleWrap() {
	root := zerr.New("connection reset")
	err := zerr.Wrap(root, "mount /data")
	fmt.Println(zerr.String(err))
	// Output: mount /data:connection reset
}

func ExampleString() {
	err := zerr.WrapCodef(zerr.New("fs: not mounted"), 12, "open %s", "state file")
	fmt.Println(zerr.String(err))
	fmt.Println(zerr.String(nil))
	// Output:
	// 12:open state file:fs: not mounted
	// <NIL>
}

func ExampleCode() {
	err := zerr.Wrap(zerr.NewCode(7, "quota exhausted"), "sync blocked")
	fmt.Println(zerr.Code(err, zerr.DefaultCode))
	fmt.Println(zerr.Code(zerr.New("uncoded"), zerr.DefaultCode))
	// Output:
	// 7
	// -1
}

func ExampleAs() {
	quota := &quotaError{zerr.MakeBase(2001, "quota exhausted")}
	err := zerr.Wrap(quota, "sync blocked")
	if q, ok := zerr.As[*quotaError](err); ok {
		fmt.Println(q.Code())
	}
	// Output: 2001
}
