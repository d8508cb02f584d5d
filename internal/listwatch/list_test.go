package listwatch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse(t *testing.T) {
	in := `# allow list
192.0.2.0/25
192.0.2.128/25   # second half

  2001:db8::/32
!192.0.2.96/28
`
	l, err := Parse(strings.NewReader(in), "allow.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"192.0.2.0/24", "2001:db8::/32"}, l.Include.Strings())
	assert.Equal(t, []string{"192.0.2.96/28"}, l.Exclude.Strings())
	assert.Equal(t,
		[]string{"192.0.2.0/26", "192.0.2.64/27", "192.0.2.112/28", "192.0.2.128/25", "2001:db8::/32"},
		l.Set().Strings())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader("10.0.0.0/8\n10.0.0.0/33\n"), "bad.txt")
	require.ErrorIs(t, err, ErrSyntax)
	assert.ErrorContains(t, err, "bad.txt:2")

	_, err = Parse(strings.NewReader("!\n"), "bang.txt")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "10.0.0.0/9\n!10.1.0.0/16\n")
	b := writeFile(t, dir, "b.txt", "10.128.0.0/9\n")

	l, err := Load(context.Background(), a, b)
	require.NoError(t, err)
	set := l.Set()
	assert.Equal(t, 8, set.Len())
	assert.Equal(t, "10.0.0.0/16", set.Prefixes()[0].String())
	assert.Equal(t, "10.128.0.0/9", set.Prefixes()[set.Len()-1].String())

	// 文件顺序不影响结果
	l2, err := Load(context.Background(), b, a)
	require.NoError(t, err)
	assert.True(t, set.Equal(l2.Set()))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(context.Background())
	assert.ErrorIs(t, err, ErrNoFiles)

	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "10.0.0.0/8\n")
	_, err = Load(context.Background(), good, filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, good)
	assert.ErrorIs(t, err, context.Canceled)
}
