package xprefix

import "testing"

func FuzzJoinMeet(f *testing.F) {
	f.Add([]byte{192, 0, 2, 0}, uint8(24), []byte{192, 0, 3, 128}, uint8(25))
	f.Add([]byte{10, 0, 0, 1}, uint8(32), []byte{10, 0, 0, 1}, uint8(8))
	f.Add([]byte{0xaa, 0xbb, 0xcc, 0, 0, 0}, uint8(24), []byte{0xaa, 0xbb, 0xcd, 1, 2, 3}, uint8(48))

	f.Fuzz(func(t *testing.T, ab []byte, al uint8, bb []byte, bl uint8) {
		if len(ab) == 0 || len(ab) != len(bb) || len(ab) > 32 {
			return
		}
		a, err := New(ab, int(al)%(len(ab)*8+1))
		if err != nil {
			t.Fatal(err)
		}
		b, err := New(bb, int(bl)%(len(bb)*8+1))
		if err != nil {
			t.Fatal(err)
		}

		j, err := Join(a, b)
		if err != nil {
			t.Fatalf("Join(%s, %s): %v", a, b, err)
		}
		if !j.Contains(a) || !j.Contains(b) {
			t.Fatalf("Join(%s, %s) = %s does not contain both", a, b, j)
		}
		// 最短性：再长一位就不能同时包含两者
		if j.Len() < j.Bits() {
			longer, _ := a.WithLen(j.Len() + 1)
			if longer.Contains(a) && longer.Contains(b) && j.Len()+1 <= min(a.Len(), b.Len()) {
				t.Fatalf("Join(%s, %s) = %s is not the shortest common prefix", a, b, j)
			}
		}

		if m, ok := Meet(a, b); ok {
			if !a.Contains(m) || !b.Contains(m) {
				t.Fatalf("Meet(%s, %s) = %s not contained by both", a, b, m)
			}
		}

		if a.Contains(b) && b.Contains(a) && a.Masked() != b.Masked() {
			t.Fatalf("mutual containment of %s and %s without equality", a, b)
		}
	})
}

func FuzzParse(f *testing.F) {
	f.Add("192.0.2.0/24")
	f.Add("2001:db8::/32")
	f.Add("aa:bb:cc:dd:ee:ff/24")
	f.Add("0x0102/9")
	f.Add("10.0.0.0/255.255.0.0")

	f.Fuzz(func(t *testing.T, s string) {
		p, err := Parse(s)
		if err != nil {
			return
		}
		if p.Len() > p.Bits() {
			t.Fatalf("Parse(%q) = %s: length exceeds width", s, p)
		}
		if !p.Contains(p) {
			t.Fatalf("Parse(%q) = %s: not reflexive", s, p)
		}
	})
}
