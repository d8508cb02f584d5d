package xmask_test

import (
	"errors"
	"fmt"

	"github.com/omeyang/xaddr/pkg/addr/xmask"
)

func ExampleLengthToMask() {
	mask, _ := xmask.LengthToMask(20, 4)
	fmt.Printf("% x\n", mask)
	fmt.Println(xmask.MaskToLength(mask))
	// Output:
	// ff ff f0 00
	// 20
}

func ExampleMaskToLengthStrict() {
	_, err := xmask.MaskToLengthStrict([]byte{255, 0, 255, 0})
	fmt.Println(errors.Is(err, xmask.ErrNonContiguousMask))
	// Output:
	// true
}
