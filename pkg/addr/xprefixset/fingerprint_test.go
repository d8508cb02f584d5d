package xprefixset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	a := mustSet("10.0.0.0/25", "10.0.0.128/25", "192.0.2.0/24")
	b := mustSet("192.0.2.0/24", "10.0.0.0/24")
	c := mustSet("192.0.2.0/24", "10.0.0.0/23")

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Equal(t, Set{}.Fingerprint(), New().Fingerprint())
}

func TestFingerprint_WidthMatters(t *testing.T) {
	// 全零地址、不同宽度的前缀指纹不同
	short := mustSet("0x0000/0")
	long := mustSet("0x000000/0")
	assert.NotEqual(t, short.Fingerprint(), long.Fingerprint())
}
