package xprefix_test

import (
	"fmt"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
)

func ExampleParse() {
	p, err := xprefix.Parse("192.0.2.77/255.255.255.0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)
	fmt.Println(p.Masked())
	fmt.Println(p.Kind())
	// Output:
	// 192.0.2.77/24
	// 192.0.2.0/24
	// IPv4
}

func ExampleJoin() {
	a := xprefix.MustParse("192.0.2.0/24")
	b := xprefix.MustParse("192.0.3.128/25")
	j, _ := xprefix.Join(a, b)
	fmt.Println(j)
	// Output:
	// 192.0.2.0/23
}

func ExampleMeet() {
	a := xprefix.MustParse("2001:db8::/32")
	b := xprefix.MustParse("2001:db8:1::/48")
	m, ok := xprefix.Meet(a, b)
	fmt.Println(m, ok)

	_, ok = xprefix.Meet(a, xprefix.MustParse("2001:db9::/32"))
	fmt.Println(ok)
	// Output:
	// 2001:db8:1::/48 true
	// false
}

func ExamplePrefix_Contiguous() {
	lo := xprefix.MustParse("192.0.2.0/25")
	hi := xprefix.MustParse("192.0.2.128/25")
	fmt.Println(lo.Contiguous(hi))
	// Output:
	// true
}
