package xmac

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型，可直接比较（==）和用作 map key。
type Addr struct {
	bytes [6]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// Bytes 返回 MAC 地址的字节表示。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// IsZero 报告 a 是否为 00:00:00:00:00:00。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// Compare 按网络字节序比较两个 MAC 地址。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	for i := range 6 {
		switch {
		case a.bytes[i] < b.bytes[i]:
			return -1
		case a.bytes[i] > b.bytes[i]:
			return 1
		}
	}
	return 0
}
