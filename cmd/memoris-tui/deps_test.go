package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/decker502/memoris"

// packageImports 返回目录下非测试源文件的导入路径
func packageImports(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var imports []string
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		require.NoError(t, err)
		for _, spec := range f.Imports {
			path, err := strconv.Unquote(spec.Path.Value)
			require.NoError(t, err)
			imports = append(imports, path)
		}
	}
	return imports
}

// TestTerminalBuildDoesNotLinkEbiten 终端前端及其依赖的核心包不能引入图形库（cgo/GL）
func TestTerminalBuildDoesNotLinkEbiten(t *testing.T) {
	root := filepath.Join("..", "..")
	visited := map[string]bool{}
	queue := []string{"cmd/memoris-tui"}

	for len(queue) > 0 {
		rel := queue[0]
		queue = queue[1:]
		if visited[rel] {
			continue
		}
		visited[rel] = true

		for _, imp := range packageImports(t, filepath.Join(root, filepath.FromSlash(rel))) {
			assert.False(t, strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten"),
				"%s imports %s", rel, imp)
			if strings.HasPrefix(imp, modulePath+"/") {
				queue = append(queue, strings.TrimPrefix(imp, modulePath+"/"))
			}
		}
	}

	for _, pkg := range []string{"pkg/match", "pkg/snowfall", "pkg/render", "pkg/utils", "pkg/timer"} {
		assert.True(t, visited[pkg], "%s should be reachable from the terminal front-end", pkg)
	}
}
