package xmac

import "testing"

func FuzzParseRoundTrip(f *testing.F) {
	f.Add("aa:bb:cc:dd:ee:ff")
	f.Add("AABB.CCDD.EEFF")
	f.Add("001122334455")
	f.Add("aa-bb-cc-dd-ee-ff")

	f.Fuzz(func(t *testing.T, s string) {
		addr, err := Parse(s)
		if err != nil {
			return
		}
		again, err := Parse(addr.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed on formatted output of %q: %v", addr.String(), s, err)
		}
		if again != addr {
			t.Errorf("round-trip mismatch: %q → %s → %s", s, addr, again)
		}
	})
}
