package xmac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	want := AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff})

	tests := []struct {
		name    string
		input   string
		want    Addr
		wantErr error
	}{
		{"colon_lower", "aa:bb:cc:dd:ee:ff", want, nil},
		{"colon_upper", "AA:BB:CC:DD:EE:FF", want, nil},
		{"dash", "aa-bb-cc-dd-ee-ff", want, nil},
		{"dot", "aabb.ccdd.eeff", want, nil},
		{"bare_mixed", "AaBbCcDdEeFf", want, nil},
		{"spaces", "  aa:bb:cc:dd:ee:ff  ", want, nil},
		{"zero", "00:00:00:00:00:00", Addr{}, nil},

		{"empty", "", Addr{}, ErrEmpty},
		{"only_space", "   ", Addr{}, ErrEmpty},
		{"too_short", "aa:bb:cc", Addr{}, ErrInvalidFormat},
		{"eui64", "aa:bb:cc:dd:ee:ff:00:11", Addr{}, ErrInvalidLength},
		{"invalid_hex", "gg:hh:ii:jj:kk:ll", Addr{}, ErrInvalidFormat},
		{"mixed_separator", "aa:bb-cc:dd-ee:ff", Addr{}, ErrInvalidFormat},
		{"dot_invalid_hex", "ggbb.ccdd.eeff", Addr{}, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBytes(t *testing.T) {
	addr, err := ParseBytes([]byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, "01:02:03:04:05:06", addr.String())

	_, err = ParseBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
	assert.NotPanics(t, func() { MustParse("00:11:22:33:44:55") })
}

func TestAddr_CompareAndZero(t *testing.T) {
	a := MustParse("00:00:00:00:00:01")
	b := MustParse("00:00:00:00:01:00")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, Addr{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestString_RoundTrip(t *testing.T) {
	for _, s := range []string{"00:00:00:00:00:00", "01:23:45:67:89:ab", "ff:ff:ff:ff:ff:ff"} {
		addr := MustParse(s)
		assert.Equal(t, s, addr.String())
	}
}
