package xregex

import (
	"reflect"
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
)

// DefaultCacheSize 是 Config.Size 为 0 时使用的缓存容量。
const DefaultCacheSize = 1024

// Config 定义 Compiler 的缓存配置。
type Config struct {
	// Size 缓存最大条目数，0 表示使用 DefaultCacheSize。
	Size int

	// TTL 条目过期时间，0 表示永不过期。
	TTL time.Duration
}

// Compiler 缓存已编译的范围与前缀正则。
// 必须通过 [NewCompiler] 创建。所有方法并发安全。
type Compiler struct {
	lru       *expirable.LRU[string, *regexp.Regexp]
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewCompiler 创建带缓存的编译器。
// cfg.Size 为负时返回 ErrInvalidSize，cfg.TTL 为负时返回 ErrInvalidTTL。
func NewCompiler(cfg Config) (*Compiler, error) {
	if cfg.Size < 0 {
		return nil, ErrInvalidSize
	}
	if cfg.TTL < 0 {
		return nil, ErrInvalidTTL
	}
	size := cfg.Size
	if size == 0 {
		size = DefaultCacheSize
	}
	return &Compiler{
		lru: expirable.NewLRU[string, *regexp.Regexp](size, nil, cfg.TTL),
	}, nil
}

// Range 返回 [CompileRange] 的结果，命中缓存时直接复用。
func (c *Compiler) Range(low, high uint64) (*regexp.Regexp, error) {
	key := "r:" + strconv.FormatUint(low, 10) + "-" + strconv.FormatUint(high, 10)
	return c.load(key, func() (*regexp.Regexp, error) {
		return CompileRange(low, high)
	})
}

// Prefix 返回 [CompilePrefix] 的结果，命中缓存时直接复用。
// 只有网络地址相同、选项相同的前缀共享缓存条目。
func (c *Compiler) Prefix(p xprefix.Prefix, opts ...Option) (*regexp.Regexp, error) {
	o := resolve(opts)
	key := "p:" + p.Masked().String() + "|" + strconv.Quote(o.sep) +
		"|" + strconv.FormatBool(o.sepSet) + "|" + strconv.FormatBool(o.anchored)
	return c.load(key, func() (*regexp.Regexp, error) {
		pat, err := prefixPattern(p, o)
		if err != nil {
			return nil, err
		}
		return regexp.Compile(pat)
	})
}

// Len 返回当前缓存条目数，可能包含已过期但尚未清理的条目。
func (c *Compiler) Len() int {
	if c.closed.Load() {
		return 0
	}
	return c.lru.Len()
}

// Close 清空缓存并停止后台过期清理。幂等。
// Close 之后 Range 与 Prefix 返回 ErrClosed。
func (c *Compiler) Close() {
	c.closed.Store(true)
	c.closeOnce.Do(func() {
		c.lru.Purge()
		stopCleanup(c.lru)
	})
}

func (c *Compiler) load(key string, compile func() (*regexp.Regexp, error)) (*regexp.Regexp, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	if re, ok := c.lru.Get(key); ok {
		return re, nil
	}
	re, err := compile()
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, re)
	return re, nil
}

// stopCleanup 关闭 expirable.LRU 内部的 done 通道，使 TTL 清理 goroutine 退出。
//
// golang-lru/v2@v2.0.7 没有公开的 Close，只能通过反射访问未导出字段。
// 字段不存在、类型不符或通道已关闭时返回 false。
func stopCleanup(lru any) (stopped bool) {
	defer func() {
		if r := recover(); r != nil {
			stopped = false
		}
	}()

	v := reflect.ValueOf(lru)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}
	done := v.Elem().FieldByName("done")
	if !done.IsValid() || done.Type() != reflect.TypeOf(make(chan struct{})) || done.IsNil() {
		return false
	}
	ch := *(*chan struct{})(unsafe.Pointer(done.UnsafeAddr())) //nolint:gosec // 访问上游未导出字段
	close(ch)
	return true
}
