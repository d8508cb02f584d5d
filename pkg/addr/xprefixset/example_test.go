package xprefixset_test

import (
	"fmt"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
	"github.com/omeyang/xaddr/pkg/addr/xprefixset"
)

func ExampleSet_Put() {
	s := xprefixset.New(xprefix.MustParse("192.0.2.0/25"))
	s = s.Put(xprefix.MustParse("192.0.2.128/25"))
	fmt.Println(s)
	// Output:
	// [192.0.2.0/24]
}

func ExampleSet_Delete() {
	s := xprefixset.New(xprefix.MustParse("192.0.2.0/24"))
	s = s.Delete(xprefix.MustParse("192.0.2.96/28"))
	for p := range s.All() {
		fmt.Println(p)
	}
	// Output:
	// 192.0.2.0/26
	// 192.0.2.64/27
	// 192.0.2.112/28
	// 192.0.2.128/25
}

func ExampleAtomic() {
	var shared xprefixset.Atomic
	shared.Put(xprefix.MustParse("10.0.0.0/9"))
	shared.Put(xprefix.MustParse("10.128.0.0/9"))
	fmt.Println(shared.Load())
	// Output:
	// [10.0.0.0/8]
}
