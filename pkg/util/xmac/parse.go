package xmac

import (
	"fmt"
	"strings"
)

// Parse 解析 MAC 地址字符串。
//
// 支持冒号、短线、点（Cisco）和无分隔四种格式，输入会自动去除首尾空白。
// EUI-64 等非 6 字节地址返回 [ErrInvalidLength]。
func Parse(s string) (Addr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Addr{}, ErrEmpty
	}

	var digits string
	switch {
	case len(s) == 12:
		digits = s
	case len(s) == 17 && (s[2] == ':' || s[2] == '-'):
		sep := s[2]
		for i := 2; i < len(s); i += 3 {
			if s[i] != sep {
				return Addr{}, fmt.Errorf("%w: inconsistent separators in %q", ErrInvalidFormat, s)
			}
		}
		digits = s[0:2] + s[3:5] + s[6:8] + s[9:11] + s[12:14] + s[15:17]
	case len(s) == 14 && s[4] == '.' && s[9] == '.':
		digits = s[0:4] + s[5:9] + s[10:14]
	default:
		if n := strings.Count(s, ":") + strings.Count(s, "-"); n > 5 {
			return Addr{}, fmt.Errorf("%w: %q has more than 6 groups", ErrInvalidLength, s)
		}
		return Addr{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var addr Addr
	for i := range 6 {
		b, ok := parseHexByte(digits[i*2], digits[i*2+1])
		if !ok {
			return Addr{}, fmt.Errorf("%w: invalid hex in %q", ErrInvalidFormat, s)
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseBytes 从字节切片创建 MAC 地址，切片长度必须为 6。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

func parseHexByte(high, low byte) (byte, bool) {
	h, ok1 := hexValue(high)
	l, ok2 := hexValue(low)
	return h<<4 | l, ok1 && ok2
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
