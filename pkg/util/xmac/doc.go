// Package xmac 提供 MAC-48 地址的文本解析与格式化。
//
// xmac 是地址代数（xprefix）的文本层：[Addr] 只负责 6 字节值与字符串之间的转换，
// 前缀、掩码、包含等运算由 xprefix 完成。
//
// # 支持的格式
//
//   - 冒号分隔：aa:bb:cc:dd:ee:ff
//   - 短线分隔：aa-bb-cc-dd-ee-ff
//   - 点分隔（Cisco 风格）：aabb.ccdd.eeff
//   - 无分隔：aabbccddeeff
//
// 大小写不敏感，输出统一为小写冒号格式。
//
// # 快速示例
//
//	addr, err := xmac.Parse("AA-BB-CC-DD-EE-FF")
//	fmt.Println(addr)           // aa:bb:cc:dd:ee:ff
//	b := addr.Bytes()           // [6]byte
//
// # 零值
//
// 与 xprefix 的前缀语义一致，全零地址是合法值（如 00:00:00:00:00:00/0），
// [Addr.IsZero] 仅用于判断，不视为解析错误。
package xmac
