package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/dtsdoc/internal/errors"
)

func TestReadFileCachesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "types.d.ts")
	require.NoError(t, os.WriteFile(path, []byte("type A = string;"), 0o644))

	ops := NewFileOps()

	content, err := ops.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "type A = string;", string(content))
	assert.Equal(t, 1, ops.CacheManager().Size())

	t.Run("changed file is read again", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("type A = number | string;"), 0o644))

		content, err := ops.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "type A = number | string;", string(content))
	})

	t.Run("shared cache", func(t *testing.T) {
		shared := newFileOpsWithCache(ops.CacheManager())
		cached, ok := shared.CacheManager().GetContent(path)
		require.True(t, ok)
		assert.Equal(t, "type A = number | string;", string(cached))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ops.ReadFile(filepath.Join(dir, "missing.d.ts"))
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
	})
}

func TestWriteAndRemoveFile(t *testing.T) {
	dir := t.TempDir()
	ops := NewFileOps()
	path := filepath.Join(dir, "doc", "api.md")

	require.NoError(t, ops.EnsureDir(filepath.Dir(path), 0o755))
	require.NoError(t, ops.WriteFile(path, []byte("first"), 0o644))

	content, err := ops.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))

	require.NoError(t, ops.WriteFile(path, []byte("second"), 0o644))
	_, cached := ops.CacheManager().GetContent(path)
	assert.False(t, cached, "writes invalidate the cache")

	require.NoError(t, ops.RemoveFile(path))
	assert.False(t, ops.Exists(path))

	err = ops.RemoveFile(path)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
}

func TestDotsInsideNames(t *testing.T) {
	dir := t.TempDir()
	ops := NewFileOps()

	path := filepath.Join(dir, "docs..v2", "api.md")
	require.NoError(t, ops.EnsureDir(filepath.Dir(path), 0o755))
	require.NoError(t, ops.WriteFile(path, []byte("# API"), 0o644))

	content, err := ops.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# API", string(content))

	declarations := filepath.Join(dir, "my..types", "b.d.ts")
	require.NoError(t, ops.EnsureDir(filepath.Dir(declarations), 0o755))
	require.NoError(t, os.WriteFile(declarations, []byte("type B = string;"), 0o644))

	content, err = ops.ReadFile(declarations)
	require.NoError(t, err)
	assert.Equal(t, "type B = string;", string(content))
	assert.True(t, ops.IsFile(declarations))
}

func TestEnsureDirOverFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := NewFileOps().EnsureDir(filepath.Join(blocker, "doc"), 0o755)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))

	docErr, ok := errors.AsDocError(err)
	require.True(t, ok)
	assert.NotEmpty(t, docErr.Suggestions())
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.d.ts", "a.d.ts", "index.ts", "nested/c.d.ts"} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.d.ts"), 0o755))

	ops := NewFileOps()

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{"single level", "*.d.ts", []string{"a.d.ts", "b.d.ts"}},
		{"recursive", "**/*.d.ts", []string{"a.d.ts", "b.d.ts", "nested/c.d.ts"}},
		{"alternation", "{a,index}.*", []string{"a.d.ts", "index.ts"}},
		{"no match", "*.js", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := ops.Glob(filepath.Join(dir, tt.pattern))
			require.NoError(t, err)

			var rel []string
			for _, match := range matches {
				r, err := filepath.Rel(dir, match)
				require.NoError(t, err)
				rel = append(rel, filepath.ToSlash(r))
			}
			assert.Equal(t, tt.expected, rel)
		})
	}
}

func TestHasMeta(t *testing.T) {
	ops := NewFileOps()

	assert.True(t, ops.HasMeta("src/*.d.ts"))
	assert.True(t, ops.HasMeta("src/?.d.ts"))
	assert.True(t, ops.HasMeta("src/[ab].d.ts"))
	assert.True(t, ops.HasMeta("src/{a,b}.d.ts"))
	assert.False(t, ops.HasMeta("src/types.d.ts"))
}

func TestPathValidator(t *testing.T) {
	pv := NewPathValidator()

	t.Run("validate and clean", func(t *testing.T) {
		clean, err := pv.ValidateAndCleanOptional("doc/./api.md")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("doc", "api.md"), clean)

		_, err = pv.ValidateAndCleanOptional("")
		assert.Error(t, err)

		_, err = pv.ValidateAndCleanOptional("doc/../../etc/passwd")
		assert.NoError(t, err, "leading parent segments are allowed")

		for _, name := range []string{"my..types/b.d.ts", "docs..v2/api.md", "types/..hidden.d.ts", "a../b"} {
			clean, err := pv.ValidateAndCleanOptional(name)
			require.NoError(t, err, name)
			assert.Equal(t, filepath.FromSlash(name), clean)
		}

		_, err = pv.ValidateAndClean(filepath.Join(t.TempDir(), "missing"))
		assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
	})

	t.Run("within", func(t *testing.T) {
		root := filepath.FromSlash("/work/project")

		assert.True(t, pv.Within(root, root))
		assert.True(t, pv.Within(root, filepath.FromSlash("/work/project/types/a.d.ts")))
		assert.True(t, pv.Within(root, filepath.FromSlash("/work/project/..types/a.d.ts")))
		assert.False(t, pv.Within(root, filepath.FromSlash("/work/other/a.d.ts")))
		assert.False(t, pv.Within(root, filepath.FromSlash("/work")))
		assert.False(t, pv.Within(root, filepath.FromSlash("/work/project-two/a.d.ts")))
	})

	t.Run("absolute path", func(t *testing.T) {
		abs, err := pv.GetAbsolutePath("types")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(abs))
	})
}
