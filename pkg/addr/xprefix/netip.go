package xprefix

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// FromNetip 从 [netip.Prefix] 创建 Prefix。
// IPv4-mapped IPv6 前缀（长度 >= 96）归一化为纯 IPv4。
func FromNetip(p netip.Prefix) (Prefix, error) {
	if !p.IsValid() {
		return Prefix{}, fmt.Errorf("%w: invalid netip.Prefix", ErrInvalidPrefix)
	}
	addr := p.Addr()
	if addr.Is4In6() && p.Bits() >= ipv4MappedBits {
		b := addr.Unmap().As4()
		return New(b[:], p.Bits()-ipv4MappedBits)
	}
	return New(addr.AsSlice(), p.Bits())
}

// AddrPrefix 返回只包含 addr 一个地址的前缀（长度等于位宽）。
func AddrPrefix(addr netip.Addr) (Prefix, error) {
	if !addr.IsValid() {
		return Prefix{}, fmt.Errorf("%w: invalid netip.Addr", ErrInvalidAddress)
	}
	b := addr.Unmap().AsSlice()
	return New(b, len(b)*8)
}

// Netip 将 IPv4/IPv6 前缀转换为 [netip.Prefix]，地址按原样保留。
// MAC-48 与 generic 前缀返回 false。
func (p Prefix) Netip() (netip.Prefix, bool) {
	switch p.kind {
	case KindIPv4:
		return netip.PrefixFrom(netip.AddrFrom4([4]byte([]byte(p.addr))), p.length), true
	case KindIPv6:
		return netip.PrefixFrom(netip.AddrFrom16([16]byte([]byte(p.addr))), p.length), true
	default:
		return netip.Prefix{}, false
	}
}

// Range 返回 IPv4/IPv6 前缀覆盖的 [netipx.IPRange]（FirstAddr 到 LastAddr）。
// MAC-48 与 generic 前缀返回 false。
func (p Prefix) Range() (netipx.IPRange, bool) {
	np, ok := p.Netip()
	if !ok {
		return netipx.IPRange{}, false
	}
	return netipx.RangeOfPrefix(np.Masked()), true
}
