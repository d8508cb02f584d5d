// Package xmask 提供前缀掩码与等宽字节序列的位运算。
//
// 所有函数都是纯函数：不修改入参，返回新分配的切片。
// 字节序列按网络字节序（大端）解释，第 0 字节为最高位字节。
//
// # 核心功能
//
//   - [LengthToMask] / [MaskToLength]：前缀长度与掩码互转
//   - [MaskToLengthStrict]：校验掩码连续性的严格版本
//   - [And] / [Or] / [Xor] / [Not]：等宽字节序列的按位运算
//   - [Embed]：左侧补零到目标宽度
//   - [BitLen]：大端无符号整数的有效位数
//
// # 快速示例
//
//	mask, _ := xmask.LengthToMask(20, 4)       // ff.ff.f0.00
//	n := xmask.MaskToLength(mask)               // 20
//	first, _ := xmask.And(addr, mask)           // 网络地址
//
// # 两级掩码校验
//
// [MaskToLength] 只统计置位数量，不要求连续；
// [MaskToLengthStrict] 额外拒绝 "255.0.255.0" 这类非连续掩码并返回
// [ErrNonContiguousMask]。解析用户输入的点分掩码时应使用严格版本。
//
// # 错误处理
//
// 宽度不一致、长度越界等都以预定义错误返回，不做静默截断：
//
//	_, err := xmask.And(a4, b16)
//	if errors.Is(err, xmask.ErrWidthMismatch) {
//	    // 处理宽度不一致
//	}
package xmask
