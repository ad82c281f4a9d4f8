// Package filestore keeps generated artifact files on the local filesystem
// under a stable download root.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"video-link-service/internal/core/domain"
	ports "video-link-service/internal/core/ports/output"
)

const downloadsPrefix = "/downloads/"

type localStore struct {
	baseDir string
}

// NewLocalStore returns an ArtifactFileStore rooted at baseDir, creating the
// directory when missing.
func NewLocalStore(baseDir string) (ports.ArtifactFileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create downloads directory: %w", err)
	}
	return &localStore{baseDir: baseDir}, nil
}

func (s *localStore) Write(name string, data []byte) (string, error) {
	name, err := sanitizeName(name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact file: %w", err)
	}
	return downloadsPrefix + name, nil
}

func (s *localStore) Remove(link string) error {
	path, err := s.resolve(link)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove artifact file: %w", err)
	}
	return nil
}

func (s *localStore) Open(link string) (io.ReadCloser, error) {
	path, err := s.resolve(link)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("open artifact file: %w", err)
	}
	return f, nil
}

func (s *localStore) resolve(link string) (string, error) {
	name, err := sanitizeName(strings.TrimPrefix(link, downloadsPrefix))
	if err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, name), nil
}

// sanitizeName rejects anything that could escape the download root. The
// file name is an opaque caller-supplied label, never a trusted path.
func sanitizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "", domain.ErrInvalidFileName
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return "", domain.ErrInvalidFileName
	}
	return name, nil
}
