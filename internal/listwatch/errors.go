package listwatch

import "errors"

var (
	// ErrNoFiles 表示未指定任何列表文件。
	ErrNoFiles = errors.New("listwatch: no list files")

	// ErrSyntax 表示列表文件中存在无法解析的行。
	ErrSyntax = errors.New("listwatch: syntax error")
)
