package listwatch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xaddr/pkg/addr/xprefix"
	"github.com/omeyang/xaddr/pkg/addr/xprefixset"
)

// List 是一个或多个列表文件的解析结果。
type List struct {
	Include xprefixset.Set
	Exclude xprefixset.Set
}

// Set 返回包含项减去排除项后的规范集合。
func (l List) Set() xprefixset.Set {
	return l.Include.Subtract(l.Exclude)
}

// Merge 合并两个列表的包含项与排除项。
func (l List) Merge(o List) List {
	return List{
		Include: l.Include.Union(o.Include),
		Exclude: l.Exclude.Union(o.Exclude),
	}
}

// Parse 逐行读取列表。name 仅用于错误信息。
func Parse(r io.Reader, name string) (List, error) {
	var l List
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		exclude := strings.HasPrefix(line, "!")
		if exclude {
			line = strings.TrimSpace(line[1:])
		}
		p, err := xprefix.Parse(line)
		if err != nil {
			return List{}, fmt.Errorf("%w: %s:%d: %w", ErrSyntax, name, lineNo, err)
		}
		if exclude {
			l.Exclude = l.Exclude.Put(p)
		} else {
			l.Include = l.Include.Put(p)
		}
	}
	if err := sc.Err(); err != nil {
		return List{}, fmt.Errorf("listwatch: read %s: %w", name, err)
	}
	return l, nil
}

// LoadFile 读取并解析单个列表文件。
func LoadFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return List{}, fmt.Errorf("listwatch: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Load 并发读取所有列表文件并合并。任一文件失败时返回第一个错误。
func Load(ctx context.Context, paths ...string) (List, error) {
	if len(paths) == 0 {
		return List{}, ErrNoFiles
	}
	lists := make([]List, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l, err := LoadFile(path)
			if err != nil {
				return err
			}
			lists[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return List{}, err
	}

	var out List
	for _, l := range lists {
		out = out.Merge(l)
	}
	return out, nil
}
