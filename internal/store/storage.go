package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// TokenStorage は認証トークンの永続化先。
// キーは1つだけ（トークン以外は保存しない）。
type TokenStorage interface {
	Read() (string, error)
	Write(token string) error
	Clear() error
}

// ファイル1個にトークンを保存する実装
type FileTokenStorage struct {
	path string
}

func NewFileTokenStorage(path string) *FileTokenStorage {
	return &FileTokenStorage{path: path}
}

// Read はトークンを読む。ファイルが無ければ空文字（未ログイン状態）。
func (s *FileTokenStorage) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "read token file")
	}
	return string(data), nil
}

func (s *FileTokenStorage) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create token dir")
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "write token file")
	}
	return nil
}

// Clear はトークンを削除する。もともと無ければ何もしない。
func (s *FileTokenStorage) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove token file")
	}
	return nil
}
