// Package xlog 提供基于 log/slog 的结构化日志。
//
// # 快速开始
//
//	logger, cleanup, err := xlog.New().
//	    SetLevel(xlog.LevelInfo).
//	    SetFormat("json").
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
//	logger.Info(ctx, "prefix list reloaded", xlog.Count(12))
//
// # 接口约定
//
// [Logger] 的所有方法都以 context.Context 为第一个参数，只接受 [slog.Attr]，
// 不支持隐式的 key-value 变参。
//
// # 日志轮转
//
// [Builder.SetRotation] 将输出切换到 lumberjack 管理的文件，按大小轮转。
// Build 返回的 cleanup 负责关闭文件，可重复调用。
//
// # 设计决策
//
//   - 级别通过共享的 [slog.LevelVar] 控制，派生 Logger 随父级同步变更
//   - 写入失败不向调用方返回错误，只计数并回调 OnError
package xlog
