package xmask

import (
	"fmt"
	"math/bits"
)

// LengthToMask 返回 width 字节宽、高 length 位为 1 的掩码。
// length 超出 [0, width*8] 时返回 [ErrLengthOutOfRange]。
func LengthToMask(length, width int) ([]byte, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if length < 0 || length > width*8 {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrLengthOutOfRange, length, width*8)
	}
	mask := make([]byte, width)
	full := length / 8
	for i := range full {
		mask[i] = 0xff
	}
	if rem := length % 8; rem != 0 {
		mask[full] = ^byte(0xff >> rem)
	}
	return mask, nil
}

// MaskToLength 返回 mask 中置位的数量。
// 不校验连续性，"255.0.255.0" 返回 16。
func MaskToLength(mask []byte) int {
	n := 0
	for _, b := range mask {
		n += bits.OnesCount8(b)
	}
	return n
}

// MaskToLengthStrict 与 [MaskToLength] 相同，但要求掩码为
// "前缀全 1、后缀全 0" 的形式，否则返回 [ErrNonContiguousMask]。
func MaskToLengthStrict(mask []byte) (int, error) {
	n := 0
	seenZero := false
	for i, b := range mask {
		if seenZero {
			if b != 0 {
				return 0, fmt.Errorf("%w: byte %d is %#02x past the mask boundary", ErrNonContiguousMask, i, b)
			}
			continue
		}
		ones := bits.LeadingZeros8(^b)
		// 字节内 1 之后不允许再出现 1
		if b<<ones != 0 {
			return 0, fmt.Errorf("%w: byte %d is %#02x", ErrNonContiguousMask, i, b)
		}
		n += ones
		if ones < 8 {
			seenZero = true
		}
	}
	return n, nil
}

// And 返回 a 与 b 的按位与。宽度不同返回 [ErrWidthMismatch]。
func And(a, b []byte) ([]byte, error) {
	return combine(a, b, func(x, y byte) byte { return x & y })
}

// Or 返回 a 与 b 的按位或。宽度不同返回 [ErrWidthMismatch]。
func Or(a, b []byte) ([]byte, error) {
	return combine(a, b, func(x, y byte) byte { return x | y })
}

// Xor 返回 a 与 b 的按位异或。宽度不同返回 [ErrWidthMismatch]。
func Xor(a, b []byte) ([]byte, error) {
	return combine(a, b, func(x, y byte) byte { return x ^ y })
}

func combine(a, b []byte, op func(x, y byte) byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d bytes", ErrWidthMismatch, len(a), len(b))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out, nil
}

// Not 返回 a 在完整宽度上的按位取反。
func Not(a []byte) []byte {
	out := make([]byte, len(a))
	for i, b := range a {
		out[i] = ^b
	}
	return out
}

// Embed 在 b 左侧补零至 width 字节。
// b 已宽于 width 时返回 [ErrEmbedOverflow]。
func Embed(b []byte, width int) ([]byte, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if len(b) > width {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrEmbedOverflow, len(b), width)
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return out, nil
}

// BitLen 返回大端无符号整数 b 的有效位数，全零返回 0。
func BitLen(b []byte) int {
	for i, v := range b {
		if v != 0 {
			return (len(b)-i-1)*8 + bits.Len8(v)
		}
	}
	return 0
}

// IsZero 报告 b 是否全为零字节。
func IsZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
