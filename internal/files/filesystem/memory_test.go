package filesystem

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/etc/rfconn")

	expectedContent := "redfish_address: bmc.example.com"
	mfs.AddFile("nodes/node-0.yaml", expectedContent)

	content, err := mfs.ReadFile("/etc/rfconn/nodes/node-0.yaml")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	content, err = mfs.ReadFile("nodes/node-0.yaml")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))
}

func TestMemoryFileSystem_ReadFile_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem("/etc/rfconn")

	_, err := mfs.ReadFile("/etc/rfconn/missing.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFileSystem_ReadFile_Directory(t *testing.T) {
	mfs := NewMemoryFileSystem("/etc/rfconn")
	mfs.AddFile("certs/ca.pem", "pem")

	_, err := mfs.ReadFile("/etc/rfconn/certs")
	require.Error(t, err)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/etc/rfconn")
	mfs.AddFile("ca.pem", "pem")

	info, err := mfs.Stat("/etc/rfconn/ca.pem")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "ca.pem", info.Name())
	require.Equal(t, int64(3), info.Size())

	info, err = mfs.Stat("/etc/rfconn")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/")
	mfs.AddFile("/etc/pki/b.pem", "b")
	mfs.AddFile("/etc/pki/a.pem", "a")
	mfs.AddFile("/etc/pki/nested/c.pem", "c")
	mfs.AddDir("/etc/empty")

	entries, err := mfs.ReadDir("/etc/pki")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a.pem", "b.pem", "nested"}, names)

	entries, err = mfs.ReadDir("/etc/empty")
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = mfs.ReadDir("/etc/pki/a.pem")
	assert.Error(t, err)
}

func TestMemoryFileSystem_Exists(t *testing.T) {
	mfs := NewMemoryFileSystem("/")
	mfs.AddFile("/path/to/a/valid/CA", "pem")

	assert.True(t, mfs.Exists("/path/to/a/valid/CA"))
	assert.True(t, mfs.Exists("/path/to/a"))
	assert.False(t, mfs.Exists("/this/path/doesnt/exist"))
	assert.False(t, mfs.Exists(""))

	assert.Equal(t, 1, mfs.ExistsCalls("/path/to/a/valid/CA"))
	assert.Equal(t, 1, mfs.ExistsCalls("/this/path/doesnt/exist"))
	assert.Equal(t, 0, mfs.ExistsCalls("/never/asked"))
}
