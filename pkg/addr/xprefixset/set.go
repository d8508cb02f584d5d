package xprefixset

import (
	"iter"
	"slices"
	"strings"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
)

// Set 是规范形式的前缀集合。
//
// 不变式：
//   - 条目按 [xprefix.Prefix.Compare] 升序排列
//   - 任意两个条目互不重叠（不存在包含关系）
//   - 任意相邻条目不是兄弟前缀（否则应已合并为父前缀）
//
// 零值是空集合，可直接使用。
type Set struct {
	prefixes []xprefix.Prefix
}

// New 依次插入 prefixes 构建集合。无效（零值）前缀被丢弃。
func New(prefixes ...xprefix.Prefix) Set {
	var s Set
	for _, p := range prefixes {
		s = s.Put(p)
	}
	return s
}

// Put 返回插入 p 之后的集合，s 本身不变。
//
// 扫描一次有序列表：已有条目包含 p 时集合不变；p 包含已有条目时
// 这些条目被 p 替换；否则 p 插入到第一个比它大的条目之前。
// 随后从插入位置开始合并兄弟前缀，合并结果继续与前后条目比较，
// 直到不再出现兄弟关系。
func (s Set) Put(p xprefix.Prefix) Set {
	if !p.IsValid() {
		return s
	}
	p = p.Masked()

	i := 0
	for ; i < len(s.prefixes); i++ {
		e := s.prefixes[i]
		if e.Contains(p) {
			return s
		}
		if p.Contains(e) || p.Compare(e) < 0 {
			break
		}
	}

	// p 覆盖的条目在有序列表中是连续的一段
	j := i
	for j < len(s.prefixes) && p.Contains(s.prefixes[j]) {
		j++
	}

	out := make([]xprefix.Prefix, 0, len(s.prefixes)-(j-i)+1)
	out = append(out, s.prefixes[:i]...)
	out = append(out, p)
	out = append(out, s.prefixes[j:]...)
	return Set{prefixes: aggregate(out, i)}
}

// aggregate 从下标 i 开始向两侧合并兄弟前缀，直接在 ps 上操作。
func aggregate(ps []xprefix.Prefix, i int) []xprefix.Prefix {
	for {
		switch {
		case i > 0 && ps[i-1].Contiguous(ps[i]):
			i--
		case i+1 < len(ps) && ps[i].Contiguous(ps[i+1]):
		default:
			return ps
		}
		parent, _ := ps[i].Parent()
		ps[i] = parent
		ps = slices.Delete(ps, i+1, i+2)
	}
}

// Delete 返回删除 p 覆盖的地址之后的集合，s 本身不变。
//
// 对每个条目：
//   - 与 p 相同或被 p 包含：移除
//   - 严格包含 p：替换为 p 在该条目内的补集片段
//   - 其余：保留
//
// 删除不在集合中或仅部分重叠的前缀都是良定义的，不返回错误。
func (s Set) Delete(p xprefix.Prefix) Set {
	if !p.IsValid() || len(s.prefixes) == 0 {
		return s
	}
	p = p.Masked()

	out := make([]xprefix.Prefix, 0, len(s.prefixes)+p.Bits())
	for _, e := range s.prefixes {
		switch {
		case p.Contains(e):
			// 完全被删除范围覆盖（含相等）
		case e.Contains(p):
			out = append(out, excise(e, p)...)
		default:
			out = append(out, e)
		}
	}
	return Set{prefixes: out}
}

// excise 返回 outer 去掉 inner 后剩余地址的最少 CIDR 片段，升序排列。
// 从 inner 开始逐级上溯到 outer，每一级收集当前块的兄弟块。
// 调用方保证 outer 严格包含 inner。
func excise(outer, inner xprefix.Prefix) []xprefix.Prefix {
	frags := make([]xprefix.Prefix, 0, inner.Len()-outer.Len())
	for cur := inner; cur.Len() > outer.Len(); {
		sib, _ := cur.Sibling()
		frags = append(frags, sib)
		cur, _ = cur.Parent()
	}
	slices.SortFunc(frags, xprefix.Prefix.Compare)
	return frags
}

// Union 返回 s 与 o 的并集。
func (s Set) Union(o Set) Set {
	for _, p := range o.prefixes {
		s = s.Put(p)
	}
	return s
}

// Subtract 返回 s 去掉 o 覆盖的地址之后的集合。
func (s Set) Subtract(o Set) Set {
	for _, p := range o.prefixes {
		s = s.Delete(p)
	}
	return s
}

// Len 返回条目数量。
func (s Set) Len() int {
	return len(s.prefixes)
}

// IsEmpty 报告集合是否为空。
func (s Set) IsEmpty() bool {
	return len(s.prefixes) == 0
}

// Prefixes 返回条目的副本，按升序排列。
func (s Set) Prefixes() []xprefix.Prefix {
	return slices.Clone(s.prefixes)
}

// All 按升序遍历条目。
func (s Set) All() iter.Seq[xprefix.Prefix] {
	return slices.Values(s.prefixes)
}

// Contains 报告 p 覆盖的所有地址是否都在集合中。
//
// 规范形式下任意被覆盖的前缀必然落在单个条目内，
// 因此用二分查找定位可能包含 p 的最后一个条目。
func (s Set) Contains(p xprefix.Prefix) bool {
	if !p.IsValid() {
		return false
	}
	p = p.Masked()
	i, found := slices.BinarySearchFunc(s.prefixes, p, xprefix.Prefix.Compare)
	if found {
		return true
	}
	return i > 0 && s.prefixes[i-1].Contains(p)
}

// Equal 报告两个集合是否覆盖相同的地址。
func (s Set) Equal(o Set) bool {
	return slices.Equal(s.prefixes, o.prefixes)
}

// Strings 返回条目的文本形式。
func (s Set) Strings() []string {
	out := make([]string, len(s.prefixes))
	for i, p := range s.prefixes {
		out[i] = p.String()
	}
	return out
}

// String 返回 "[a b c]" 形式的文本。
func (s Set) String() string {
	return "[" + strings.Join(s.Strings(), " ") + "]"
}
