package listwatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/omeyang/xaddr/pkg/addr/xprefixset"
	"github.com/omeyang/xaddr/pkg/observability/xlog"
)

// DefaultDebounce 默认防抖时间
const DefaultDebounce = 100 * time.Millisecond

// Callback 在每次重载后调用。err 非 nil 时 set 为零值，调用方应保留上一次的结果。
type Callback func(set xprefixset.Set, err error)

// Option 配置 Watcher
type Option func(*options)

type options struct {
	debounce time.Duration
	logger   xlog.Logger
}

// WithDebounce 设置防抖时间，非正值被忽略。
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithLogger 设置日志记录器，默认丢弃。
func WithLogger(l xlog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Watcher 监视一组前缀列表文件
type Watcher struct {
	paths    []string
	names    map[string]struct{}
	watcher  *fsnotify.Watcher
	callback Callback
	debounce time.Duration
	logger   xlog.Logger
	ctx      context.Context
	cancel   context.CancelFunc

	mu       sync.Mutex
	running  bool
	timer    *time.Timer
	wg       sync.WaitGroup
	reloadMu sync.Mutex
}

// New 创建监视器。返回的 Watcher 需要调用 Start 或 StartAsync 开始监视，Stop 停止。
func New(paths []string, callback Callback, opts ...Option) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}
	o := options{debounce: DefaultDebounce, logger: xlog.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("listwatch: create watcher: %w", err)
	}

	abs := make([]string, 0, len(paths))
	names := make(map[string]struct{}, len(paths))
	var dirs []string
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("listwatch: %w", err), fsw.Close())
		}
		abs = append(abs, a)
		names[a] = struct{}{}
		if d := filepath.Dir(a); !slices.Contains(dirs, d) {
			dirs = append(dirs, d)
		}
	}
	for _, d := range dirs {
		if err := fsw.Add(d); err != nil {
			return nil, errors.Join(fmt.Errorf("listwatch: watch directory %s: %w", d, err), fsw.Close())
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		paths:    abs,
		names:    names,
		watcher:  fsw,
		callback: callback,
		debounce: o.debounce,
		logger:   o.logger.With(xlog.Component("listwatch")),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start 启动监视，阻塞直到 Stop 被调用。
func (w *Watcher) Start() {
	if !w.markRunning() {
		return
	}
	w.run()
}

// StartAsync 在后台 goroutine 中启动监视并立即返回。
func (w *Watcher) StartAsync() {
	if !w.markRunning() {
		return
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run()
	}()
}

func (w *Watcher) markRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.ctx.Err() != nil {
		return false
	}
	w.running = true
	return true
}

// Stop 停止监视并等待后台 goroutine 退出。可重复调用。
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.ctx.Err() != nil {
		w.mu.Unlock()
		return nil
	}
	w.stopTimer()
	w.cancel()
	w.running = false
	err := w.watcher.Close()
	w.mu.Unlock()

	w.wg.Wait()
	return err
}

// stopTimer 取消尚未触发的重载。调用方持有 mu。
func (w *Watcher) stopTimer() {
	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.timer = nil
}

// Reload 立即重新加载所有文件并调用回调。并发调用被串行化。
func (w *Watcher) Reload() {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	start := time.Now()
	l, err := Load(w.ctx, w.paths...)
	if err != nil {
		w.logger.Warn(w.ctx, "reload failed", xlog.Err(err))
		if w.callback != nil {
			w.callback(xprefixset.Set{}, err)
		}
		return
	}
	set := l.Set()
	w.logger.Info(w.ctx, "reloaded", xlog.Count(set.Len()), xlog.Duration(time.Since(start)))
	if w.callback != nil {
		w.callback(set, nil)
	}
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(w.ctx, "watch error", xlog.Err(err))
			if w.callback != nil {
				w.callback(xprefixset.Set{}, fmt.Errorf("listwatch: watch error: %w", err))
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if _, ok := w.names[filepath.Clean(event.Name)]; !ok {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}
	w.logger.Debug(w.ctx, "list changed", xlog.Path(event.Name), slog.String("op", event.Op.String()))

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ctx.Err() != nil {
		return
	}
	w.stopTimer()
	w.wg.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		if w.ctx.Err() != nil {
			return
		}
		w.Reload()
	})
}
