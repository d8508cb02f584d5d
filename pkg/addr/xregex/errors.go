package xregex

import "errors"

var (
	// ErrInvalidNumber 表示范围边界不是十进制非负整数。
	ErrInvalidNumber = errors.New("xregex: invalid decimal number")

	// ErrInvertedRange 表示范围下界大于上界。
	ErrInvertedRange = errors.New("xregex: low bound exceeds high bound")

	// ErrUnsupportedKind 表示前缀种类没有默认的文本形式，需要通过 WithSeparator 指定。
	ErrUnsupportedKind = errors.New("xregex: prefix kind has no default textual form")

	// ErrInvalidPrefix 表示前缀无效（零值）。
	ErrInvalidPrefix = errors.New("xregex: invalid prefix")

	// ErrInvalidSize 表示 Compiler 缓存容量无效。
	ErrInvalidSize = errors.New("xregex: cache size must be greater than 0")

	// ErrInvalidTTL 表示 Compiler 缓存 TTL 为负。
	ErrInvalidTTL = errors.New("xregex: cache TTL must not be negative")

	// ErrClosed 表示 Compiler 已关闭。
	ErrClosed = errors.New("xregex: compiler is closed")
)
