package xprefixset

import (
	"testing"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
)

// FuzzPutDelete 将字节流解释为一串插入/删除操作，校验规范形式与包含关系。
func FuzzPutDelete(f *testing.F) {
	f.Add([]byte{0, 0, 25, 0, 128, 25})
	f.Add([]byte{0, 0, 24, 1, 96, 28})
	f.Add([]byte{0, 6, 32, 0, 7, 32, 0, 4, 31, 0, 0, 30})

	f.Fuzz(func(t *testing.T, ops []byte) {
		var s Set
		for i := 0; i+2 < len(ops); i += 3 {
			p, err := xprefix.From4([4]byte{10, 0, 0, ops[i+1]}, 24+int(ops[i+2])%9)
			if err != nil {
				t.Fatal(err)
			}
			if ops[i]%2 == 0 {
				s = s.Put(p)
				if !s.Contains(p) {
					t.Fatalf("Put(%s) result %s does not contain it", p, s)
				}
			} else {
				s = s.Delete(p)
				for e := range s.All() {
					if xprefix.Overlaps(e, p) {
						t.Fatalf("Delete(%s) left overlapping %s", p, e)
					}
				}
			}
			ps := s.Prefixes()
			for j := 1; j < len(ps); j++ {
				if ps[j-1].Compare(ps[j]) >= 0 || xprefix.Overlaps(ps[j-1], ps[j]) || ps[j-1].Contiguous(ps[j]) {
					t.Fatalf("not canonical after op %d: %s", i/3, s)
				}
			}
		}
	})
}
