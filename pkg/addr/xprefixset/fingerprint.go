package xprefixset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint 返回集合规范编码的 xxhash 指纹。
// 覆盖相同地址的集合指纹相同，与插入顺序无关。
//
// 编码：每个条目依次写入 宽度(2 字节) | 长度(2 字节) | 网络地址。
func (s Set) Fingerprint() uint64 {
	d := xxhash.New()
	var hdr [4]byte
	for _, p := range s.prefixes {
		binary.BigEndian.PutUint16(hdr[0:2], uint16(p.Width()))
		binary.BigEndian.PutUint16(hdr[2:4], uint16(p.Len()))
		_, _ = d.Write(hdr[:])
		_, _ = d.Write(p.FirstAddr())
	}
	return d.Sum64()
}
