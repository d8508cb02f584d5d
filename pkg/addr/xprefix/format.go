package xprefix

import (
	"encoding/hex"
	"net/netip"
	"strconv"

	"github.com/omeyang/xaddr/pkg/util/xmac"
)

// String 返回前缀的文本形式：
//   - IPv4: "192.0.2.0/24"
//   - IPv6: "2001:db8::/32"
//   - MAC-48: "aa:bb:cc:00:00:00/24"
//   - generic: "0x0102030405/40"
//
// 地址按原样输出（不做掩码）。零值返回 "invalid Prefix"。
func (p Prefix) String() string {
	if !p.IsValid() {
		return "invalid Prefix"
	}
	return p.addrString() + "/" + strconv.Itoa(p.length)
}

func (p Prefix) addrString() string {
	switch p.kind {
	case KindIPv4:
		return netip.AddrFrom4([4]byte([]byte(p.addr))).String()
	case KindIPv6:
		return netip.AddrFrom16([16]byte([]byte(p.addr))).String()
	case KindMAC48:
		return xmac.AddrFrom6([6]byte([]byte(p.addr))).String()
	default:
		return "0x" + hex.EncodeToString([]byte(p.addr))
	}
}

// MarshalText 实现 encoding.TextMarshaler，输出 [Prefix.String] 的格式。
// 零值输出空字符串。
func (p Prefix) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return []byte{}, nil
	}
	return []byte(p.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler，使用 [Parse] 解析。
// 空输入得到零值。
func (p *Prefix) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = Prefix{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
