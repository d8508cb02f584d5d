// Package xprefixset 提供前缀的规范聚合集合。
//
// [Set] 维护一个有序、互不重叠、不可再合并的前缀列表，精确覆盖所有插入
// 减去所有删除的地址：
//
//   - 插入两个兄弟前缀时自动合并为父前缀，合并可向上级联
//   - 删除某个大块的子块时，大块被拆成覆盖剩余地址的最少 CIDR 片段
//   - 已被覆盖的插入不产生变化，覆盖已有条目的插入替换这些条目
//
// # 快速示例
//
//	s := xprefixset.New(
//	    xprefix.MustParse("192.0.2.0/25"),
//	    xprefix.MustParse("192.0.2.128/25"),
//	)
//	fmt.Println(s)        // [192.0.2.0/24]
//
//	s = s.Delete(xprefix.MustParse("192.0.2.96/28"))
//	fmt.Println(s)        // [192.0.2.0/26 192.0.2.64/27 192.0.2.112/28 192.0.2.128/25]
//
// # 设计决策
//
//   - 底层是有序切片，不使用 trie/radix 树
//   - [Set] 是不可变值：Put/Delete 返回新集合，原集合不受影响，可并发读
//   - 多个写者共享同一集合时使用 [Atomic]（基于 CAS 的 Update）
//   - 插入和删除前统一清零主机位，集合中只保存网络地址
//   - 不同宽度的前缀（IPv4/IPv6/MAC）可共存，按宽度分段排序，互不合并
//
// # 互操作
//
// [Set.IPSet] 和 [FromIPSet] 与 [go4.org/netipx.IPSet] 互转；
// [Set.Fingerprint] 用 xxhash 计算规范编码的指纹，便于检测集合变化；
// Set 实现 json.Marshaler/json.Unmarshaler，编码为前缀字符串数组。
package xprefixset
