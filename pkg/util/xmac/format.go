package xmac

const hexLower = "0123456789abcdef"

// String 返回小写冒号格式：aa:bb:cc:dd:ee:ff。
func (a Addr) String() string {
	var buf [17]byte
	for i, b := range a.bytes {
		off := i * 3
		if i > 0 {
			buf[off-1] = ':'
		}
		buf[off] = hexLower[b>>4]
		buf[off+1] = hexLower[b&0x0f]
	}
	return string(buf[:])
}
