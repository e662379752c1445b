package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage handles file uploads on local disk
// Thư mục uploads được serve lại dưới dạng static content (/uploads/...)
type LocalStorage struct {
	dir string
}

// NewLocalStorage khởi tạo storage, tạo thư mục nếu chưa có
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir returns the root directory files are stored under.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// GenerateName sinh filename collision-resistant: timestamp + random suffix + extension gốc
// Tránh overwrite file upload trước đó có cùng tên
func (s *LocalStorage) GenerateName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// Save writes src to disk under name and returns the number of bytes written.
// File ghi qua temp name rồi rename: size cap fail giữa chừng sẽ không để lại file rác
func (s *LocalStorage) Save(name string, src io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}

	written, err := io.Copy(tmp, src)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	dst := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("failed to move file into place: %w", err)
	}

	return written, nil
}

// Delete xóa một file khỏi storage. Xóa file không tồn tại không phải là lỗi.
func (s *LocalStorage) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
