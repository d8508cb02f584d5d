package xmask

import "errors"

var (
	// ErrInvalidWidth 表示字节宽度为负数。
	ErrInvalidWidth = errors.New("xmask: invalid width")

	// ErrLengthOutOfRange 表示前缀长度超出 [0, width*8]。
	ErrLengthOutOfRange = errors.New("xmask: prefix length out of range")

	// ErrWidthMismatch 表示两个操作数的字节宽度不一致。
	ErrWidthMismatch = errors.New("xmask: operand width mismatch")

	// ErrNonContiguousMask 表示掩码中的 1 不连续（如 255.0.255.0）。
	ErrNonContiguousMask = errors.New("xmask: non-contiguous mask")

	// ErrEmbedOverflow 表示待嵌入的字节序列比目标宽度更宽。
	ErrEmbedOverflow = errors.New("xmask: value wider than target width")
)
