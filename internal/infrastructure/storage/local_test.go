package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateName(t *testing.T) {
	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name := st.GenerateName("My Photo.PNG")
	assert.True(t, strings.HasSuffix(name, ".png"), "extension should be lowercased: %s", name)
	assert.NotContains(t, name, " ")

	// 2 lần gọi với cùng input không được trùng tên
	other := st.GenerateName("My Photo.PNG")
	assert.NotEqual(t, name, other)
}

func TestSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	st, err := NewLocalStorage(dir)
	require.NoError(t, err)

	written, err := st.Save("photo.png", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("payload")), written)

	data, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	// Không còn temp file sau khi save
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, st.Delete("photo.png"))
	_, err = os.Stat(filepath.Join(dir, "photo.png"))
	assert.True(t, os.IsNotExist(err))

	// Delete file không tồn tại không lỗi
	assert.NoError(t, st.Delete("ghost.png"))
}
