package xmask

import "testing"

func FuzzMaskToLengthStrict(f *testing.F) {
	f.Add([]byte{0xff, 0xff, 0xff, 0})
	f.Add([]byte{0xff, 0, 0xff, 0})
	f.Add([]byte{0xfe})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, mask []byte) {
		n, err := MaskToLengthStrict(mask)
		if err != nil {
			return
		}
		// 严格校验通过的掩码必须能由 LengthToMask 重建
		want, err := LengthToMask(n, len(mask))
		if err != nil {
			t.Fatalf("LengthToMask(%d, %d): %v", n, len(mask), err)
		}
		for i := range mask {
			if mask[i] != want[i] {
				t.Fatalf("mask %x accepted with length %d, rebuilt %x", mask, n, want)
			}
		}
	})
}
