// Package xregex 将整数范围与地址前缀编译为正则表达式。
//
// # 整数范围
//
// [Range] 与 [RangeDecimal] 为闭区间 [low, high] 生成一个正则片段，
// 精确匹配区间内每个整数的十进制表示（不带前导零），且不匹配区间外的任何整数：
//
//	xregex.Range(16, 31)    // (1[6-9]|2[0-9]|3[0-1])
//	xregex.Range(100, 999)  // [1-9][0-9][0-9]
//	xregex.Range(7, 7)      // 7
//
// 片段不带锚点，可直接拼接进更大的表达式；[CompileRange] 返回以 ^…$
// 锚定的整串匹配器。
//
// # 地址前缀
//
// [PrefixPattern] 将前缀的首末地址逐字节配对为 0..255 的范围，分别编译后
// 用转义的分隔符连接，并以 \b 包围：
//
//	p := xprefix.MustParse("192.0.2.0/23")
//	xregex.PrefixPattern(p)
//	// \b192\.0\.[2-3]\.([0-9]|[1-9][0-9]|1[0-9][0-9]|2[0-4][0-9]|25[0-5])\b
//
// IPv4 默认使用 "." 分隔。其他种类没有十进制点分写法，需要 [WithSeparator]
// 显式指定分隔符（每字节仍以十进制表示），否则返回 [ErrUnsupportedKind]。
//
// # 缓存
//
// 同一范围或前缀反复编译时，使用 [Compiler] 复用已编译的 [*regexp.Regexp]。
// Compiler 基于 hashicorp/golang-lru 的 expirable LRU，并发安全。
//
// # 设计决策
//
//   - 拆分过程使用显式工作栈而非递归，栈深度由数字位数决定
//   - 分组使用普通括号 ( )，保证 POSIX ERE 与 PCRE 方言下都可用
//   - 备选项按数值升序排列，输出对相同输入是确定的
package xregex
