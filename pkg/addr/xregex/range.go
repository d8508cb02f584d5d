package xregex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// span 是工作栈中待展开的子区间：ctx 是已固定的前导数字，
// lo 与 hi 是等长的剩余数字串。
type span struct {
	ctx, lo, hi string
}

// Range 返回精确匹配 [low, high] 内整数十进制表示的正则片段。
// low == high 时返回该数字本身。
func Range(low, high uint64) (string, error) {
	return RangeDecimal(strconv.FormatUint(low, 10), strconv.FormatUint(high, 10))
}

// RangeDecimal 类似 [Range]，但边界以十进制数字串给出，长度不受 uint64 限制。
// 前导零会被去除："007" 与 "7" 等价。
func RangeDecimal(low, high string) (string, error) {
	lo, err := normalize(low)
	if err != nil {
		return "", err
	}
	hi, err := normalize(high)
	if err != nil {
		return "", err
	}
	if compareDecimal(lo, hi) > 0 {
		return "", fmt.Errorf("%w: %s > %s", ErrInvertedRange, lo, hi)
	}
	if lo == hi {
		return lo, nil
	}
	return alternation(expand(lo, hi)), nil
}

// CompileRange 编译 [Range] 的结果，并以 ^(?:…)$ 锚定为整串匹配。
func CompileRange(low, high uint64) (*regexp.Regexp, error) {
	pat, err := Range(low, high)
	if err != nil {
		return nil, err
	}
	return regexp.Compile("^(?:" + pat + ")$")
}

// expand 将 lo..hi 拆成按数值升序排列的备选项。lo 与 hi 已规范化且 lo < hi。
func expand(lo, hi string) []string {
	// 位数不同时在 10 的幂处切开，得到若干等长区间
	var spans []span
	for cur := lo; ; {
		if len(cur) == len(hi) {
			spans = append(spans, span{lo: cur, hi: hi})
			break
		}
		spans = append(spans, span{lo: cur, hi: strings.Repeat("9", len(cur))})
		cur = "1" + strings.Repeat("0", len(cur))
	}

	stack := make([]span, 0, len(spans)*2)
	for i := len(spans) - 1; i >= 0; i-- {
		stack = append(stack, spans[i])
	}

	var alts []string
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := len(s.lo)
		i := commonPrefix(s.lo, s.hi)
		if i == n {
			alts = append(alts, s.ctx+s.lo)
			continue
		}

		head := s.ctx + s.lo[:i]
		lowDigit, highDigit := s.lo[i], s.hi[i]
		rest := n - i - 1
		if rest == 0 {
			alts = append(alts, head+class(lowDigit, highDigit))
			continue
		}

		loTail, hiTail := s.lo[i+1:], s.hi[i+1:]
		loFloor := allDigit(loTail, '0')
		hiCeil := allDigit(hiTail, '9')
		if loFloor && hiCeil {
			alts = append(alts, head+class(lowDigit, highDigit)+strings.Repeat("[0-9]", rest))
			continue
		}

		start, end := lowDigit, highDigit
		if !loFloor {
			start++
		}
		if !hiCeil {
			end--
		}

		// 逆序入栈，出栈顺序为 下段、中段、上段
		if !hiCeil {
			stack = append(stack, span{
				ctx: head + string(highDigit),
				lo:  strings.Repeat("0", rest),
				hi:  hiTail,
			})
		}
		if start <= end {
			stack = append(stack, span{
				ctx: head,
				lo:  string(start) + strings.Repeat("0", rest),
				hi:  string(end) + strings.Repeat("9", rest),
			})
		}
		if !loFloor {
			stack = append(stack, span{
				ctx: head + string(lowDigit),
				lo:  loTail,
				hi:  strings.Repeat("9", rest),
			})
		}
	}
	return alts
}

func alternation(alts []string) string {
	if len(alts) == 1 {
		return alts[0]
	}
	return "(" + strings.Join(alts, "|") + ")"
}

// class 返回匹配单个数字 x..y 的字符类。
func class(x, y byte) string {
	switch {
	case x == y:
		return string(x)
	case x == '0' && y == '9':
		return "[0-9]"
	default:
		return "[" + string(x) + "-" + string(y) + "]"
	}
}

func normalize(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidNumber)
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0", nil
	}
	return s, nil
}

// compareDecimal 比较两个规范化的十进制数字串。
func compareDecimal(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func commonPrefix(a, b string) int {
	i := 0
	for i < len(a) && a[i] == b[i] {
		i++
	}
	return i
}

func allDigit(s string, d byte) bool {
	for i := range len(s) {
		if s[i] != d {
			return false
		}
	}
	return true
}
