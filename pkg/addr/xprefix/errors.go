package xprefix

import "errors"

var (
	// ErrInvalidAddress 表示地址字节为空或地址文本无法解析。
	ErrInvalidAddress = errors.New("xprefix: invalid address")

	// ErrInvalidLength 表示前缀长度为负或超过地址位宽。
	ErrInvalidLength = errors.New("xprefix: invalid prefix length")

	// ErrInvalidPrefix 表示前缀文本格式无效。
	ErrInvalidPrefix = errors.New("xprefix: invalid prefix")

	// ErrWidthMismatch 表示两个前缀的地址宽度不同（如 IPv4 与 IPv6）。
	ErrWidthMismatch = errors.New("xprefix: address width mismatch")
)
