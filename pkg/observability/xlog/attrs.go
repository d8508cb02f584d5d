package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 key
const (
	KeyError     = "error"
	KeyCount     = "count"
	KeyDuration  = "duration"
	KeyComponent = "component"
	KeyPath      = "path"
	KeyPrefix    = "prefix"
)

// Err 创建错误属性。err 为 nil 时返回空属性，slog 会忽略它。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Count 创建计数属性
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Duration 创建耗时属性
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// Component 创建组件名属性，通常配合 Logger.With 使用。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Path 创建文件路径属性
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Prefix 创建前缀属性。v 通常是 xprefix.Prefix 或 xprefixset.Set，按 String() 输出。
func Prefix(v interface{ String() string }) slog.Attr {
	return slog.String(KeyPrefix, v.String())
}
