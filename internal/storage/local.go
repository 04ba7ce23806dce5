package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore keeps uploaded files on the local filesystem and serves them
// through the media handler.
type LocalStore struct {
	baseURL   string
	uploadDir string
}

func NewLocalStore(baseURL, uploadDir string) (*LocalStore, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{
		baseURL:   strings.TrimRight(baseURL, "/"),
		uploadDir: uploadDir,
	}, nil
}

func (s *LocalStore) Save(reader io.Reader, originalName string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	// Stored names are opaque so a client cannot probe other users' files.
	storedName := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.uploadDir, storedName))
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		os.Remove(f.Name())
		return "", "", err
	}

	url := fmt.Sprintf("%s/api/v1/media/%s", s.baseURL, storedName)
	return storedName, url, nil
}

func (s *LocalStore) Open(storedName string) (io.ReadCloser, error) {
	// Reject path traversal; stored names never contain separators.
	if storedName != filepath.Base(storedName) {
		return nil, os.ErrNotExist
	}
	return os.Open(filepath.Join(s.uploadDir, storedName))
}

func (s *LocalStore) Delete(storedName string) error {
	if storedName != filepath.Base(storedName) {
		return os.ErrNotExist
	}
	err := os.Remove(filepath.Join(s.uploadDir, storedName))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
