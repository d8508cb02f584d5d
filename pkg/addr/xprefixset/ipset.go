package xprefixset

import (
	"fmt"

	"go4.org/netipx"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
)

// IPSet 将集合中的 IPv4/IPv6 条目转换为 [*netipx.IPSet]。
// MAC-48 与 generic 条目没有对应的 IP 表示，被跳过。
func (s Set) IPSet() (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, p := range s.prefixes {
		if np, ok := p.Netip(); ok {
			b.AddPrefix(np)
		}
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}

// FromIPSet 从 [*netipx.IPSet] 构建集合。set 为 nil 时返回空集合。
func FromIPSet(set *netipx.IPSet) (Set, error) {
	if set == nil {
		return Set{}, nil
	}
	var s Set
	for _, np := range set.Prefixes() {
		p, err := xprefix.FromNetip(np)
		if err != nil {
			return Set{}, fmt.Errorf("convert %s: %w", np, err)
		}
		s = s.Put(p)
	}
	return s, nil
}
