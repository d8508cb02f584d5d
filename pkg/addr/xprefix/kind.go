package xprefix

// Kind 标记前缀地址的种类，由地址字节宽度决定。
type Kind uint8

const (
	// KindInvalid 表示零值 Prefix。
	KindInvalid Kind = iota
	// KindGeneric 表示任意宽度的字节地址。
	KindGeneric
	// KindIPv4 表示 4 字节 IPv4 地址。
	KindIPv4
	// KindMAC48 表示 6 字节 MAC-48 地址。
	KindMAC48
	// KindIPv6 表示 16 字节 IPv6 地址。
	KindIPv6
)

// KindOf 返回 width 字节地址对应的种类。
// width <= 0 返回 [KindInvalid]。
func KindOf(width int) Kind {
	switch {
	case width <= 0:
		return KindInvalid
	case width == 4:
		return KindIPv4
	case width == 6:
		return KindMAC48
	case width == 16:
		return KindIPv6
	default:
		return KindGeneric
	}
}

// String 返回种类的字符串表示。
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindIPv4:
		return "IPv4"
	case KindMAC48:
		return "MAC-48"
	case KindIPv6:
		return "IPv6"
	default:
		return "invalid"
	}
}
