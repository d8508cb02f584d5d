// Package listwatch 加载前缀列表文件，并在文件变更时重新聚合。
//
// 列表文件格式：
//
//	# 注释行与空行被忽略
//	192.0.2.0/25
//	192.0.2.128/25      # 行尾注释
//	!192.0.2.96/28      # 以 ! 开头表示排除
//
// 多个文件的包含项先合并，再统一减去所有排除项，结果与文件顺序无关。
//
// [Watcher] 监视文件所在目录而非文件本身，以兼容编辑器先删除再创建、
// 或写临时文件后 rename 的保存方式。短时间内的多次变更经防抖合并为一次重载。
package listwatch
