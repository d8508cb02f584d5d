package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 轮转默认值
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 7
	DefaultMaxAgeDays = 30
)

// Rotation 文件轮转配置，零值字段使用默认值。
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Builder 日志配置构建器
//
// Set 方法遇到非法参数时记录第一个错误，由 Build 统一返回。
type Builder struct {
	output    io.Writer
	levelVar  *slog.LevelVar
	format    Format
	addSource bool
	rotator   *lumberjack.Logger
	onError   func(error)
	err       error
}

// New 创建配置构建器，默认 Info 级别、text 格式、输出到 stderr。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	return &Builder{
		output:   os.Stderr,
		levelVar: levelVar,
		format:   FormatText,
	}
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// SetOutput 设置输出目标
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if w == nil {
		return b.fail(ErrNilOutput)
	}
	b.output = w
	return b
}

// SetLevel 设置日志级别
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置日志级别
func (b *Builder) SetLevelString(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		return b.fail(err)
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json
func (b *Builder) SetFormat(s string) *Builder {
	f, err := ParseFormat(s)
	if err != nil {
		return b.fail(err)
	}
	b.format = f
	return b
}

// SetAddSource 是否在日志中添加源码位置
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetOnError 设置写入失败回调。回调在日志调用方的 goroutine 中同步执行。
func (b *Builder) SetOnError(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// SetRotation 将输出切换为按大小轮转的文件。
func (b *Builder) SetRotation(filename string, r Rotation) *Builder {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return b.fail(ErrEmptyFilename)
	}
	if r.MaxSizeMB < 0 || r.MaxBackups < 0 || r.MaxAgeDays < 0 {
		return b.fail(fmt.Errorf("xlog: negative rotation setting %+v", r))
	}
	if r.MaxSizeMB == 0 {
		r.MaxSizeMB = DefaultMaxSizeMB
	}
	if r.MaxBackups == 0 {
		r.MaxBackups = DefaultMaxBackups
	}
	if r.MaxAgeDays == 0 {
		r.MaxAgeDays = DefaultMaxAgeDays
	}
	b.rotator = &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    r.MaxSizeMB,
		MaxBackups: r.MaxBackups,
		MaxAge:     r.MaxAgeDays,
		Compress:   r.Compress,
	}
	b.output = b.rotator
	return b
}

// Build 构建 Logger
//
// 返回的 cleanup 关闭轮转文件（如有），可多次调用。
func (b *Builder) Build() (Logger, func() error, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}
	var handler slog.Handler
	switch b.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(b.output, opts)
	default:
		handler = slog.NewTextHandler(b.output, opts)
	}

	logger := &xlogger{
		handler:    handler,
		levelVar:   b.levelVar,
		onError:    b.onError,
		errorCount: new(atomic.Uint64),
		addSource:  b.addSource,
	}

	var once sync.Once
	rotator := b.rotator
	cleanup := func() error {
		var err error
		once.Do(func() {
			if rotator != nil {
				err = rotator.Close()
			}
		})
		return err
	}
	return logger, cleanup, nil
}
