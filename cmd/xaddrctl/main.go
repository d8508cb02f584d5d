// xaddrctl 是地址前缀工具的命令行入口。
//
// 用法:
//
//	xaddrctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件（.yaml/.yml/.json）
//	    --log-level   日志级别 (debug/info/warn/error，默认 warn)
//	    --log-format  日志格式 (text/json)
//	    --log-file    日志文件，按大小轮转
//	-o, --output      输出格式 (text/json)
//
// 命令:
//
//	aggregate FILE...       聚合前缀列表文件
//	regex range LOW HIGH    整数范围正则
//	regex prefix P          地址前缀正则
//	regex grep -p P FILE... 输出包含前缀内地址的行
//	info P                  前缀详情
//	join A B                最小公共超前缀
//	meet A B                交集
//	contains A B            A 是否包含 B
//
// 退出码:
//
//	0: 成功（contains: 包含）
//	1: 执行失败（contains: 不包含）
//	2: 参数错误
//
// 示例:
//
//	xaddrctl aggregate allow.txt deny.txt
//	xaddrctl aggregate --delete 192.0.2.96/28 --watch allow.txt
//	xaddrctl regex prefix 192.0.2.0/23
//	xaddrctl -o json info 2001:db8::/32
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xaddr/pkg/observability/xlog"
)

// 版本信息，可通过 -ldflags "-X main.Version=..." 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// exitError 表示输出已完成、只需设置退出码的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// env 是一次命令执行的运行环境，由根命令的 Before 初始化。
type env struct {
	stdout  io.Writer
	stderr  io.Writer
	cfg     Config
	logger  xlog.Logger
	cleanup func() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	e := &env{stdout: stdout, stderr: stderr, logger: xlog.Discard()}
	err := newApp(e).Run(ctx, args)
	if e.cleanup != nil {
		if cerr := e.cleanup(); cerr != nil {
			fmt.Fprintf(stderr, "close log: %v\n", cerr)
		}
	}
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "usage error: %v\n", usageErr)
		return 2
	}
	if isCLIUsageError(err) {
		fmt.Fprintln(stderr, err)
		return 2
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

// isCLIUsageError 识别 urfave/cli 与 flag 包产生的参数错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, s := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"Required flag",
		"No help topic",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

func newApp(e *env) *cli.Command {
	return &cli.Command{
		Name:      "xaddrctl",
		Usage:     "地址前缀聚合、运算与正则生成",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    e.stdout,
		ErrWriter: e.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "配置文件 (.yaml/.yml/.json)"},
			&cli.StringFlag{Name: "log-level", Usage: "日志级别 (debug/info/warn/error)"},
			&cli.StringFlag{Name: "log-format", Usage: "日志格式 (text/json)"},
			&cli.StringFlag{Name: "log-file", Usage: "日志文件，按大小轮转"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "输出格式 (text/json)"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, e.setup(cmd)
		},
		Commands: []*cli.Command{
			aggregateCommand(e),
			regexCommand(e),
			infoCommand(e),
			joinCommand(e),
			meetCommand(e),
			containsCommand(e),
		},
		// 退出码统一由 run 映射，禁止 urfave/cli 直接 os.Exit。
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// setup 加载配置、应用命令行覆盖并构建日志。
func (e *env) setup(cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}
	if cmd.IsSet("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(cmd.String("output")))
	}
	if err := cfg.validate(); err != nil {
		return &usageError{msg: err.Error()}
	}
	e.cfg = cfg

	b := xlog.New().
		SetOutput(e.stderr).
		SetLevelString(cfg.Log.Level).
		SetFormat(cfg.Log.Format)
	if cfg.Log.File != "" {
		b.SetRotation(cfg.Log.File, xlog.Rotation{MaxSizeMB: cfg.Log.MaxSizeMB})
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return err
	}
	e.logger = logger.With(xlog.Component("xaddrctl"))
	e.cleanup = cleanup
	return nil
}
