package xprefix

import (
	"encoding/hex"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/omeyang/xaddr/pkg/addr/xmask"
	"github.com/omeyang/xaddr/pkg/util/xmac"
)

// ipv4MappedBits 是 IPv4-mapped IPv6 前缀中 IPv4 部分之前的位数。
const ipv4MappedBits = 96

// Parse 从字符串解析前缀。支持以下格式：
//   - CIDR: "192.0.2.0/24"、"2001:db8::/32"
//   - 掩码: "192.0.2.0/255.255.255.0"（仅 IPv4，掩码必须连续）
//   - 单地址: "192.0.2.1"、"2001:db8::1"，长度取地址位宽
//   - MAC-48: "aa:bb:cc:00:00:00/24"、"aabb.cc00.0000"
//   - generic: "0x0102030405/40"
//
// 输入会自动去除首尾空白。IPv4-mapped IPv6 统一归一化为纯 IPv4；
// IPv6 zone ID（如 "fe80::1%eth0"）被拒绝。
// 地址按原样保留，不清零主机位，如需网络地址请调用 [Prefix.Masked]。
func Parse(s string) (Prefix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Prefix{}, fmt.Errorf("%w: empty input", ErrInvalidPrefix)
	}
	if strings.Contains(s, "%") {
		return Prefix{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidPrefix, s)
	}

	addrPart, lenPart, hasLen := strings.Cut(s, "/")
	addrPart = strings.TrimSpace(addrPart)
	lenPart = strings.TrimSpace(lenPart)

	if strings.HasPrefix(addrPart, "0x") || strings.HasPrefix(addrPart, "0X") {
		b, err := hex.DecodeString(addrPart[2:])
		if err != nil {
			return Prefix{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
		}
		return parseWithLength(b, lenPart, hasLen)
	}

	if addr, err := netip.ParseAddr(addrPart); err == nil {
		return parseIP(addr, lenPart, hasLen)
	}

	mac, err := xmac.Parse(addrPart)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: %q is neither an IP nor a MAC address", ErrInvalidAddress, addrPart)
	}
	b := mac.Bytes()
	return parseWithLength(b[:], lenPart, hasLen)
}

// MustParse 类似 [Parse]，但失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string) Prefix {
	p, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xprefix.MustParse(%q): %v", s, err))
	}
	return p
}

func parseIP(addr netip.Addr, lenPart string, hasLen bool) (Prefix, error) {
	if hasLen && strings.Contains(lenPart, ".") {
		return parseWithMask(addr, lenPart)
	}
	if !addr.Is4In6() {
		return parseWithLength(addr.AsSlice(), lenPart, hasLen)
	}

	// IPv4-mapped IPv6：长度按 IPv6 位数给出，换算为 IPv4 长度
	b := addr.Unmap().As4()
	if !hasLen {
		return New(b[:], 32)
	}
	n, err := parseLength(lenPart)
	if err != nil {
		return Prefix{}, err
	}
	if n < ipv4MappedBits {
		return Prefix{}, fmt.Errorf("%w: IPv4-mapped prefix /%d is shorter than /%d", ErrInvalidLength, n, ipv4MappedBits)
	}
	return New(b[:], n-ipv4MappedBits)
}

// parseWithMask 解析点分掩码格式（仅 IPv4），掩码必须连续。
func parseWithMask(addr netip.Addr, maskStr string) (Prefix, error) {
	mask, err := netip.ParseAddr(maskStr)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: invalid mask: %w", ErrInvalidPrefix, err)
	}
	addr, mask = addr.Unmap(), mask.Unmap()
	if !addr.Is4() || !mask.Is4() {
		return Prefix{}, fmt.Errorf("%w: mask notation only supports IPv4", ErrInvalidPrefix)
	}
	m := mask.As4()
	n, err := xmask.MaskToLengthStrict(m[:])
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: %w", ErrInvalidPrefix, err)
	}
	b := addr.As4()
	return New(b[:], n)
}

func parseWithLength(addr []byte, lenPart string, hasLen bool) (Prefix, error) {
	if !hasLen {
		return New(addr, len(addr)*8)
	}
	n, err := parseLength(lenPart)
	if err != nil {
		return Prefix{}, err
	}
	return New(addr, n)
}

func parseLength(s string) (int, error) {
	// strconv.ParseUint 拒绝 "+"、"-" 前缀
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	return int(n), nil
}
