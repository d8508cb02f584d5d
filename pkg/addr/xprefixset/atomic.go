package xprefixset

import (
	"sync/atomic"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
)

// Atomic 是可被多个 goroutine 共享的集合变量。
//
// Set 本身不可变，Atomic 只负责替换当前值：读者通过 Load 获得快照，
// 写者通过 Update 以 CAS 循环提交新值。零值是空集合，可直接使用。
type Atomic struct {
	v atomic.Pointer[Set]
}

// Load 返回当前集合快照。
func (a *Atomic) Load() Set {
	if s := a.v.Load(); s != nil {
		return *s
	}
	return Set{}
}

// Store 用 s 替换当前集合。
func (a *Atomic) Store(s Set) {
	a.v.Store(&s)
}

// Update 以 fn(当前值) 替换当前集合，冲突时重试，返回提交的新值。
// fn 可能被调用多次，必须是无副作用的纯函数。
func (a *Atomic) Update(fn func(Set) Set) Set {
	for {
		old := a.v.Load()
		var cur Set
		if old != nil {
			cur = *old
		}
		next := fn(cur)
		if a.v.CompareAndSwap(old, &next) {
			return next
		}
	}
}

// Put 原子地插入 p。
func (a *Atomic) Put(p xprefix.Prefix) Set {
	return a.Update(func(s Set) Set { return s.Put(p) })
}

// Delete 原子地删除 p。
func (a *Atomic) Delete(p xprefix.Prefix) Set {
	return a.Update(func(s Set) Set { return s.Delete(p) })
}
