// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmac: MAC-48 地址值类型，多格式解析与规范化输出
package util
