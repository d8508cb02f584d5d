package xprefix

import (
	"fmt"

	"github.com/omeyang/xaddr/pkg/util/xmac"
)

// Prefix 表示地址加前缀长度，即 CIDR 块。
//
// Prefix 是不可变值类型：
//   - 零值无效，IsValid() 返回 false
//   - 可直接比较（==）和用作 map key，比较的是原始地址而非网络地址
//   - 所有运算返回新值，并发安全
//
// 地址宽度在构造时固定，种类（[Kind]）由宽度决定。
type Prefix struct {
	kind Kind
	// 使用 string 保存地址字节：任意宽度下仍保持不可变和可比较
	addr   string
	length int
}

// New 从地址字节和前缀长度创建 Prefix。
// 种类由 len(addr) 决定：4 → IPv4，6 → MAC-48，16 → IPv6，其余 → generic。
// addr 为空返回 [ErrInvalidAddress]；length 超出 [0, 8*len(addr)] 返回 [ErrInvalidLength]。
func New(addr []byte, length int) (Prefix, error) {
	if len(addr) == 0 {
		return Prefix{}, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	if length < 0 || length > len(addr)*8 {
		return Prefix{}, fmt.Errorf("%w: %d exceeds %d-bit address", ErrInvalidLength, length, len(addr)*8)
	}
	return Prefix{kind: KindOf(len(addr)), addr: string(addr), length: length}, nil
}

// MustNew 类似 [New]，但失败时 panic。
// 仅用于包级变量初始化或测试。
func MustNew(addr []byte, length int) Prefix {
	p, err := New(addr, length)
	if err != nil {
		panic(fmt.Sprintf("xprefix.MustNew(%x, %d): %v", addr, length, err))
	}
	return p
}

// From4 从 IPv4 地址字节创建 Prefix。
func From4(addr [4]byte, length int) (Prefix, error) {
	return New(addr[:], length)
}

// From16 从 IPv6 地址字节创建 Prefix。
func From16(addr [16]byte, length int) (Prefix, error) {
	return New(addr[:], length)
}

// FromMAC 从 MAC-48 地址创建 Prefix。
func FromMAC(addr xmac.Addr, length int) (Prefix, error) {
	b := addr.Bytes()
	return New(b[:], length)
}

// Kind 返回地址种类。
func (p Prefix) Kind() Kind {
	return p.kind
}

// IsValid 报告 p 是否为有效前缀（非零值）。
func (p Prefix) IsValid() bool {
	return p.kind != KindInvalid
}

// Addr 返回原始地址字节的副本（未做掩码）。
func (p Prefix) Addr() []byte {
	return []byte(p.addr)
}

// Len 返回前缀长度（位）。
func (p Prefix) Len() int {
	return p.length
}

// Width 返回地址宽度（字节）。
func (p Prefix) Width() int {
	return len(p.addr)
}

// Bits 返回地址位宽。
func (p Prefix) Bits() int {
	return len(p.addr) * 8
}

// IsSingle 报告 p 是否只包含一个地址（长度等于位宽）。
func (p Prefix) IsSingle() bool {
	return p.IsValid() && p.length == p.Bits()
}
