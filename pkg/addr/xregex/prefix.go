package xregex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
)

// options 是 PrefixPattern 的可选配置。
type options struct {
	sep      string
	sepSet   bool
	anchored bool
}

// Option 配置 [PrefixPattern] 的输出形式。
type Option func(*options)

// WithSeparator 指定字节之间的分隔符。分隔符按字面量转义。
// 非 IPv4 前缀必须设置此选项。
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.sep = sep
		o.sepSet = true
	}
}

// WithoutBoundary 以 ^…$ 锚定整串，替代默认的 \b…\b 单词边界。
func WithoutBoundary() Option {
	return func(o *options) {
		o.anchored = true
	}
}

// PrefixPattern 返回匹配前缀内所有地址十进制分隔写法的正则表达式。
//
// 每个字节的取值范围由首末地址对应字节给出，经 [Range] 编译后用分隔符连接。
// 前缀内的地址恰好是这些字节范围的笛卡尔积，长度不是 8 的倍数时同样成立。
func PrefixPattern(p xprefix.Prefix, opts ...Option) (string, error) {
	return prefixPattern(p, resolve(opts))
}

func resolve(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func prefixPattern(p xprefix.Prefix, o options) (string, error) {
	if !p.IsValid() {
		return "", ErrInvalidPrefix
	}
	if !o.sepSet {
		if p.Kind() != xprefix.KindIPv4 {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, p.Kind())
		}
		o.sep = "."
	}

	first, last := p.FirstAddr(), p.LastAddr()
	parts := make([]string, len(first))
	for i := range first {
		frag, err := Range(uint64(first[i]), uint64(last[i]))
		if err != nil {
			return "", err
		}
		parts[i] = frag
	}
	body := strings.Join(parts, regexp.QuoteMeta(o.sep))
	if o.anchored {
		return "^" + body + "$", nil
	}
	return `\b` + body + `\b`, nil
}

// CompilePrefix 编译 [PrefixPattern] 的结果。
func CompilePrefix(p xprefix.Prefix, opts ...Option) (*regexp.Regexp, error) {
	pat, err := PrefixPattern(p, opts...)
	if err != nil {
		return nil, err
	}
	return regexp.Compile(pat)
}
