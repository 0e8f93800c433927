//go:build unix

package xpm

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFileMode(t *testing.T) {
	m := newTestImage(1, 1, 0xffff0000)

	// Whatever the umask, only the bits it masks are missing from 0644
	mask := syscall.Umask(0)
	syscall.Umask(mask)

	name := filepath.Join(t.TempDir(), "test.xpm")
	require.NoError(t, EncodeFile(m, name))

	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644)&^os.FileMode(mask), info.Mode().Perm())

	// rw-r--r-- exactly under the usual umask
	defer syscall.Umask(syscall.Umask(0022))

	name = filepath.Join(t.TempDir(), "test.xpm")
	require.NoError(t, WriteFile(name, []byte("data")))

	info, err = os.Stat(name)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}
