package billy

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parentfs "github.com/w4/shorty/fs"
)

// runSuite runs a battery of consistency checks against a Filesystem impl.
func runSuite(t *testing.T, fs parentfs.Filesystem, root string) {
	t.Helper()

	dir := filepath.Join(root, "a", "b")
	require.NoError(t, fs.MkdirAll(dir, 0o755))

	info, err := fs.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	p := filepath.Join(dir, "file.txt")
	require.NoError(t, fs.WriteFile(p, []byte("hello world"), 0o644))

	data, err := fs.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	f, err := fs.Open(p)
	require.NoError(t, err)
	defer f.Close()

	st, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(11), st.Size())

	buf := make([]byte, 5)
	n, err := f.ReadAt(buf, 6)
	require.NoError(t, err)
	assert.Equal(t, "world", string(buf[:n]))

	all, err := io.ReadAll(io.NewSectionReader(f, 0, st.Size()))
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(all))

	_, err = fs.Stat(filepath.Join(root, "missing"))
	assert.Error(t, err)

	_, err = fs.Open(filepath.Join(root, "missing"))
	assert.ErrorContains(t, err, "billy: open")
}

func TestInMemoryFS_Suite(t *testing.T) {
	runSuite(t, NewInMemoryFS(), "/")
}

func TestOSFS_Suite(t *testing.T) {
	root := t.TempDir()
	runSuite(t, NewOSFS(root), "/")
}

func TestBaseOSFS_Suite(t *testing.T) {
	root := t.TempDir()
	runSuite(t, NewBaseOSFS(), root)
}

func TestFile_ReadAt(t *testing.T) {
	fs := NewInMemoryFS()
	require.NoError(t, fs.WriteFile("/f.bin", []byte("0123456789"), 0o644))

	f, err := fs.Open("/f.bin")
	require.NoError(t, err)

	buf := make([]byte, 4)
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = f.ReadAt(buf, 2)
	})
	assert.Zero(t, allocs, "successful reads do not build error strings")

	n, err := f.ReadAt(buf, 8)
	assert.Equal(t, 2, n)
	assert.Equal(t, io.EOF, err, "EOF is returned unwrapped")

	require.NoError(t, f.Close())
	_, err = f.ReadAt(buf, 3)
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.ErrorContains(t, err, "billy: readat off=3")
}
