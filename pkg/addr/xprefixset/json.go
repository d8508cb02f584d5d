package xprefixset

import (
	"encoding/json"
	"fmt"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
)

// MarshalJSON 将集合编码为前缀字符串数组，如 ["192.0.2.0/24"]。
// 空集合编码为 []。
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON 解析前缀字符串数组并规范化。
// 输入无需有序或不重叠；任一元素无法解析时返回错误。
func (s *Set) UnmarshalJSON(data []byte) error {
	var strs []string
	if err := json.Unmarshal(data, &strs); err != nil {
		return fmt.Errorf("xprefixset: %w", err)
	}
	var out Set
	for i, str := range strs {
		p, err := xprefix.Parse(str)
		if err != nil {
			return fmt.Errorf("xprefixset: element [%d] %q: %w", i, str, err)
		}
		out = out.Put(p)
	}
	*s = out
	return nil
}
