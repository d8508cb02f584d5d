package xregex

import (
	"testing"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
)

func BenchmarkRange(b *testing.B) {
	for b.Loop() {
		_, _ = Range(47, 65535)
	}
}

func BenchmarkPrefixPattern(b *testing.B) {
	p := xprefix.MustParse("172.16.0.0/12")
	for b.Loop() {
		_, _ = PrefixPattern(p)
	}
}

func BenchmarkCompiler_Hit(b *testing.B) {
	c, err := NewCompiler(Config{})
	if err != nil {
		b.Fatal(err)
	}
	defer c.Close()
	p := xprefix.MustParse("192.0.2.0/24")
	for b.Loop() {
		_, _ = c.Prefix(p)
	}
}
