// Package addr 提供定宽地址前缀的代数与聚合。
//
// 子包列表：
//   - xmask: 任意字节宽度的掩码运算，长度与掩码互转
//   - xprefix: 前缀值类型（IPv4/IPv6/MAC-48/generic），包含、并、交、父子与兄弟关系
//   - xprefixset: 规范前缀集合，插入时合并兄弟块，删除时拆分大块
//   - xregex: 整数范围与地址前缀到正则表达式的编译
//
// 设计原则：
//   - 值类型不可变、可比较，可作为 map key
//   - 核心包不记录日志、不 panic（Must* 除外），错误以 errors.Is 判定
package addr
