package xprefix

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/omeyang/xaddr/pkg/addr/xmask"
)

// maskOf 返回 length 位、width 字节的掩码。
// 调用方保证参数来自有效 Prefix，因此不会出错。
func maskOf(length, width int) []byte {
	mask, err := xmask.LengthToMask(length, width)
	if err != nil {
		panic(err)
	}
	return mask
}

// firstAt 返回 p 的地址在 length 位处截断后的网络地址。
func (p Prefix) firstAt(length int) []byte {
	first, err := xmask.And([]byte(p.addr), maskOf(length, len(p.addr)))
	if err != nil {
		panic(err)
	}
	return first
}

// Mask 返回前缀掩码。
func (p Prefix) Mask() []byte {
	return maskOf(p.length, len(p.addr))
}

// FirstAddr 返回前缀覆盖的第一个地址：addr AND mask。
func (p Prefix) FirstAddr() []byte {
	return p.firstAt(p.length)
}

// LastAddr 返回前缀覆盖的最后一个地址：first OR NOT(mask)。
func (p Prefix) LastAddr() []byte {
	last, err := xmask.Or(p.FirstAddr(), xmask.Not(p.Mask()))
	if err != nil {
		panic(err)
	}
	return last
}

// Masked 返回地址已清零主机位的同长度前缀。
// 零值返回零值。
func (p Prefix) Masked() Prefix {
	if !p.IsValid() {
		return Prefix{}
	}
	return Prefix{kind: p.kind, addr: string(p.FirstAddr()), length: p.length}
}

// Contains 报告 p 是否包含 inner：p.Len() <= inner.Len()，
// 且两者在 p.Len() 位处截断后的网络地址相同。
//
// Contains 是自反的（p 包含自身）。宽度不同或任一方无效时返回 false。
func (p Prefix) Contains(inner Prefix) bool {
	if !p.IsValid() || !inner.IsValid() || len(p.addr) != len(inner.addr) {
		return false
	}
	if p.length > inner.length {
		return false
	}
	return bytes.Equal(p.FirstAddr(), inner.firstAt(p.length))
}

// Parent 返回长度减一的父前缀。长度为 0 时返回 false。
func (p Prefix) Parent() (Prefix, bool) {
	if !p.IsValid() || p.length == 0 {
		return Prefix{}, false
	}
	return Prefix{kind: p.kind, addr: string(p.firstAt(p.length - 1)), length: p.length - 1}, true
}

// Sibling 返回与 p 共享同一父前缀的另一半（翻转第 Len()-1 位）。
// 长度为 0 时返回 false。
func (p Prefix) Sibling() (Prefix, bool) {
	if !p.IsValid() || p.length == 0 {
		return Prefix{}, false
	}
	first := p.FirstAddr()
	bit := p.length - 1
	first[bit/8] ^= 0x80 >> (bit % 8)
	return Prefix{kind: p.kind, addr: string(first), length: p.length}, true
}

// Contiguous 报告 p 与 b 是否互为兄弟：长度相同、各自缩短一位后网络地址相同，
// 且本身不是同一块。兄弟前缀恰好拼成父前缀，是聚合的基础。
func (p Prefix) Contiguous(b Prefix) bool {
	if !p.IsValid() || !b.IsValid() || len(p.addr) != len(b.addr) || p.length != b.length {
		return false
	}
	pp, ok := p.Parent()
	if !ok {
		return false
	}
	bp, _ := b.Parent()
	return pp == bp && p.Masked() != b.Masked()
}

// Compare 返回 p 与 b 的排序关系：先按地址宽度，再按网络地址升序，
// 最后按前缀长度升序（短前缀排在前）。
// 无效前缀排在所有有效前缀之前。
func (p Prefix) Compare(b Prefix) int {
	if c := cmp.Compare(len(p.addr), len(b.addr)); c != 0 {
		return c
	}
	if !p.IsValid() {
		return 0
	}
	if c := bytes.Compare(p.FirstAddr(), b.FirstAddr()); c != 0 {
		return c
	}
	return cmp.Compare(p.length, b.length)
}

// WithLen 返回同地址、长度为 n 的前缀（不做掩码）。
func (p Prefix) WithLen(n int) (Prefix, error) {
	if !p.IsValid() {
		return Prefix{}, fmt.Errorf("%w: zero Prefix", ErrInvalidPrefix)
	}
	return New([]byte(p.addr), n)
}

// Join 返回同时包含 a 和 b 的最短前缀（最小上界）。
//
// 先将两者截断到较短的长度，再用异或结果的位长度定位最高的不同位，
// 公共前缀即截止到该位之前。若截断后已相同，结果就是较短的长度。
// 宽度不同返回 [ErrWidthMismatch]。
func Join(a, b Prefix) (Prefix, error) {
	if !a.IsValid() || !b.IsValid() {
		return Prefix{}, fmt.Errorf("%w: zero Prefix", ErrInvalidPrefix)
	}
	if len(a.addr) != len(b.addr) {
		return Prefix{}, fmt.Errorf("%w: %s and %s", ErrWidthMismatch, a.kind, b.kind)
	}
	n := min(a.length, b.length)
	fa := a.firstAt(n)
	diff, err := xmask.Xor(fa, b.firstAt(n))
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: %w", ErrWidthMismatch, err)
	}
	if bl := xmask.BitLen(diff); bl > 0 {
		n = a.Bits() - bl
	}
	return Prefix{kind: a.kind, addr: string(a.firstAt(n)), length: n}, nil
}

// Meet 返回 a 与 b 的交集（最大下界）：若一方包含另一方，返回更具体的那个；
// 两者不相交时返回 false。
func Meet(a, b Prefix) (Prefix, bool) {
	switch {
	case a.Contains(b):
		return b, true
	case b.Contains(a):
		return a, true
	default:
		return Prefix{}, false
	}
}

// Overlaps 报告 a 与 b 是否有公共地址。
func Overlaps(a, b Prefix) bool {
	_, ok := Meet(a, b)
	return ok
}
