package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xaddr/internal/listwatch"
	"github.com/omeyang/xaddr/pkg/addr/xprefix"
	"github.com/omeyang/xaddr/pkg/addr/xprefixset"
	"github.com/omeyang/xaddr/pkg/addr/xregex"
	"github.com/omeyang/xaddr/pkg/observability/xlog"
)

func aggregateCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "aggregate",
		Aliases:   []string{"agg"},
		Usage:     "聚合前缀列表文件，输出规范前缀集合",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "delete", Aliases: []string{"d"}, Usage: "额外排除的前缀，可重复"},
			&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: "文件变更时重新聚合，直到收到中断信号"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				return usagef("aggregate: at least one FILE is required")
			}
			var extra xprefixset.Set
			for _, s := range cmd.StringSlice("delete") {
				p, err := xprefix.Parse(s)
				if err != nil {
					return usagef("aggregate: --delete %q: %v", s, err)
				}
				extra = extra.Put(p)
			}
			if cmd.Bool("watch") {
				return e.watchAggregate(ctx, files, extra)
			}

			l, err := listwatch.Load(ctx, files...)
			if err != nil {
				return err
			}
			set := l.Set().Subtract(extra)
			e.logger.Info(ctx, "aggregated", xlog.Count(set.Len()), slog.Any("files", files))
			return e.printSet(set)
		},
	}
}

// watchAggregate 先输出一次聚合结果，之后每次文件变更重新输出，直到 ctx 取消。
func (e *env) watchAggregate(ctx context.Context, files []string, extra xprefixset.Set) error {
	var last xprefixset.Atomic
	w, err := listwatch.New(files, func(set xprefixset.Set, err error) {
		if err != nil {
			e.logger.Warn(ctx, "keeping previous result", xlog.Err(err))
			return
		}
		set = set.Subtract(extra)
		if last.Load().Equal(set) {
			return
		}
		last.Store(set)
		if perr := e.printSet(set); perr != nil {
			e.logger.Error(ctx, "print", xlog.Err(perr))
		}
	}, listwatch.WithDebounce(e.cfg.Watch.Debounce), listwatch.WithLogger(e.logger))
	if err != nil {
		return err
	}

	l, err := listwatch.Load(ctx, files...)
	if err != nil {
		return errors.Join(err, w.Stop())
	}
	set := l.Set().Subtract(extra)
	last.Store(set)
	if err := e.printSet(set); err != nil {
		return errors.Join(err, w.Stop())
	}

	w.StartAsync()
	<-ctx.Done()
	return w.Stop()
}

func regexCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "regex",
		Usage: "生成正则表达式",
		Commands: []*cli.Command{
			{
				Name:      "range",
				Usage:     "整数闭区间 [LOW, HIGH] 的十进制正则片段",
				ArgsUsage: "LOW HIGH",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "anchored", Aliases: []string{"a"}, Usage: "以 ^(?:…)$ 锚定"},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 2 {
						return usagef("regex range: want LOW HIGH, got %d argument(s)", cmd.NArg())
					}
					pat, err := xregex.RangeDecimal(cmd.Args().Get(0), cmd.Args().Get(1))
					if err != nil {
						return &usageError{msg: err.Error()}
					}
					if cmd.Bool("anchored") {
						pat = "^(?:" + pat + ")$"
					}
					return e.printPattern(pat)
				},
			},
			{
				Name:      "prefix",
				Usage:     "匹配前缀内所有地址的正则",
				ArgsUsage: "PREFIX",
				Flags:     patternFlags(),
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 1 {
						return usagef("regex prefix: want exactly one PREFIX")
					}
					p, err := parseArg(cmd.Args().First())
					if err != nil {
						return err
					}
					pat, err := xregex.PrefixPattern(p, patternOptions(cmd)...)
					if err != nil {
						return err
					}
					return e.printPattern(pat)
				},
			},
			{
				Name:      "grep",
				Usage:     "输出包含任一前缀内地址的行",
				ArgsUsage: "FILE...",
				Flags: append(patternFlags(),
					&cli.StringSliceFlag{Name: "prefix", Aliases: []string{"p"}, Usage: "前缀，可重复"},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return e.grep(ctx, cmd)
				},
			},
		},
	}
}

func patternFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "separator", Aliases: []string{"s"}, Usage: "字节分隔符（非 IPv4 前缀必填）"},
		&cli.BoolFlag{Name: "anchored", Aliases: []string{"a"}, Usage: "以 ^…$ 锚定整串而非单词边界"},
	}
}

func patternOptions(cmd *cli.Command) []xregex.Option {
	var opts []xregex.Option
	if cmd.IsSet("separator") {
		opts = append(opts, xregex.WithSeparator(cmd.String("separator")))
	}
	if cmd.Bool("anchored") {
		opts = append(opts, xregex.WithoutBoundary())
	}
	return opts
}

func (e *env) printPattern(pat string) error {
	if e.cfg.Output == outputJSON {
		return e.printJSON(map[string]string{"pattern": pat})
	}
	fmt.Fprintln(e.stdout, pat)
	return nil
}

// grep 逐行扫描文件，输出匹配任一前缀正则的行。没有匹配行时退出码为 1。
func (e *env) grep(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringSlice("prefix")
	if len(raw) == 0 {
		return usagef("regex grep: at least one --prefix is required")
	}
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return usagef("regex grep: at least one FILE is required")
	}

	c, err := xregex.NewCompiler(xregex.Config{Size: e.cfg.Regex.CacheSize, TTL: e.cfg.Regex.CacheTTL})
	if err != nil {
		return err
	}
	defer c.Close()

	// 先聚合，减少需要编译的正则数量
	var set xprefixset.Set
	for _, s := range raw {
		p, err := parseArg(s)
		if err != nil {
			return err
		}
		set = set.Put(p)
	}
	opts := patternOptions(cmd)
	for p := range set.All() {
		if _, err := c.Prefix(p, opts...); err != nil {
			return err
		}
	}
	e.logger.Debug(ctx, "compiled patterns", xlog.Count(c.Len()), xlog.Prefix(set))

	matched := 0
	for _, name := range files {
		n, err := e.grepFile(ctx, c, set, opts, name, len(files) > 1)
		if err != nil {
			return err
		}
		matched += n
	}
	if matched == 0 {
		return &exitError{code: 1}
	}
	return nil
}

func (e *env) grepFile(ctx context.Context, c *xregex.Compiler, set xprefixset.Set, opts []xregex.Option, name string, withName bool) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	matched := 0
	sc := bufio.NewScanner(f)
	for lineNo := 1; sc.Scan(); lineNo++ {
		if err := ctx.Err(); err != nil {
			return matched, err
		}
		line := sc.Text()
		for p := range set.All() {
			re, err := c.Prefix(p, opts...)
			if err != nil {
				return matched, err
			}
			if re.MatchString(line) {
				matched++
				if withName {
					fmt.Fprintf(e.stdout, "%s:%d:%s\n", name, lineNo, line)
				} else {
					fmt.Fprintln(e.stdout, line)
				}
				break
			}
		}
	}
	return matched, sc.Err()
}

func infoCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "显示前缀的种类、首末地址、掩码、父前缀与兄弟前缀",
		ArgsUsage: "PREFIX",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return usagef("info: want exactly one PREFIX")
			}
			p, err := parseArg(cmd.Args().First())
			if err != nil {
				return err
			}
			v := newPrefixView(p)
			if e.cfg.Output == outputJSON {
				return e.printJSON(v)
			}
			w := e.stdout
			fmt.Fprintf(w, "prefix:  %s\n", v.Prefix)
			fmt.Fprintf(w, "kind:    %s\n", v.Kind)
			fmt.Fprintf(w, "length:  %d/%d\n", v.Len, v.Bits)
			fmt.Fprintf(w, "first:   %s\n", v.First)
			fmt.Fprintf(w, "last:    %s\n", v.Last)
			fmt.Fprintf(w, "mask:    %s\n", v.Mask)
			if v.Parent != "" {
				fmt.Fprintf(w, "parent:  %s\n", v.Parent)
				fmt.Fprintf(w, "sibling: %s\n", v.Sibling)
			}
			return nil
		},
	}
}

func joinCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "join",
		Usage:     "两个前缀的最小公共超前缀",
		ArgsUsage: "A B",
		Action: func(_ context.Context, cmd *cli.Command) error {
			a, b, err := parsePair(cmd)
			if err != nil {
				return err
			}
			j, err := xprefix.Join(a, b)
			if err != nil {
				return &usageError{msg: err.Error()}
			}
			return e.printPrefix(j)
		},
	}
}

func meetCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "meet",
		Usage:     "两个前缀的交集（较具体的一个），不相交时退出码为 1",
		ArgsUsage: "A B",
		Action: func(_ context.Context, cmd *cli.Command) error {
			a, b, err := parsePair(cmd)
			if err != nil {
				return err
			}
			m, ok := xprefix.Meet(a, b)
			if !ok {
				if e.cfg.Output == outputJSON {
					if err := e.printJSON(map[string]any{"prefix": nil}); err != nil {
						return err
					}
				} else {
					fmt.Fprintln(e.stdout, "none")
				}
				return &exitError{code: 1}
			}
			return e.printPrefix(m)
		},
	}
}

func containsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "contains",
		Usage:     "判断 A 是否包含 B，包含时退出码为 0，否则为 1",
		ArgsUsage: "A B",
		Action: func(_ context.Context, cmd *cli.Command) error {
			a, b, err := parsePair(cmd)
			if err != nil {
				return err
			}
			ok := a.Contains(b)
			if e.cfg.Output == outputJSON {
				if err := e.printJSON(map[string]bool{"contains": ok}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(e.stdout, strconv.FormatBool(ok))
			}
			if !ok {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}

func parseArg(s string) (xprefix.Prefix, error) {
	p, err := xprefix.Parse(s)
	if err != nil {
		return xprefix.Prefix{}, &usageError{msg: err.Error()}
	}
	return p, nil
}

func parsePair(cmd *cli.Command) (xprefix.Prefix, xprefix.Prefix, error) {
	if cmd.NArg() != 2 {
		return xprefix.Prefix{}, xprefix.Prefix{}, usagef("%s: want A B, got %d argument(s)", cmd.Name, cmd.NArg())
	}
	a, err := parseArg(cmd.Args().Get(0))
	if err != nil {
		return xprefix.Prefix{}, xprefix.Prefix{}, err
	}
	b, err := parseArg(cmd.Args().Get(1))
	if err != nil {
		return xprefix.Prefix{}, xprefix.Prefix{}, err
	}
	return a, b, nil
}
