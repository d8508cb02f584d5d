package xprefixset

import (
	"math/rand/v2"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go4.org/netipx"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
)

func TestIPSet(t *testing.T) {
	s := mustSet("10.0.0.0/8", "2001:db8::/32", "aa:bb:cc:00:00:00/24")
	set, err := s.IPSet()
	require.NoError(t, err)

	assert.True(t, set.Contains(netip.MustParseAddr("10.255.0.1")))
	assert.True(t, set.Contains(netip.MustParseAddr("2001:db8::1")))
	assert.False(t, set.Contains(netip.MustParseAddr("11.0.0.1")))
	// MAC 条目被跳过
	assert.Len(t, set.Prefixes(), 2)
}

func TestFromIPSet(t *testing.T) {
	var b netipx.IPSetBuilder
	b.AddRange(netipx.IPRangeFrom(netip.MustParseAddr("10.0.0.0"), netip.MustParseAddr("10.0.0.5")))
	ipset, err := b.IPSet()
	require.NoError(t, err)

	s, err := FromIPSet(ipset)
	require.NoError(t, err)
	assertSet(t, s, "10.0.0.0/30", "10.0.0.4/31")

	s, err = FromIPSet(nil)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
}

// TestAgainstNetipx 以 netipx.IPSetBuilder 为独立参照，随机插入/删除后比较结果。
func TestAgainstNetipx(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	base := netip.MustParseAddr("10.20.0.0").As4()

	var (
		s Set
		b netipx.IPSetBuilder
	)
	for step := range 2000 {
		addr := base
		addr[2] = byte(rng.IntN(4))
		addr[3] = byte(rng.IntN(256))
		length := 22 + rng.IntN(11)
		p, err := xprefix.From4(addr, length)
		require.NoError(t, err)
		np, _ := p.Netip()

		if rng.IntN(3) == 0 {
			s = s.Delete(p)
			b.RemovePrefix(np.Masked())
		} else {
			s = s.Put(p)
			b.AddPrefix(np.Masked())
		}

		ref, err := b.IPSet()
		require.NoError(t, err)
		want := make([]string, 0)
		for _, rp := range ref.Prefixes() {
			want = append(want, rp.String())
		}
		require.Equal(t, want, s.Strings(), "step %d after %s", step, p)
		assertCanonical(t, s)
	}
}
