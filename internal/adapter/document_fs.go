package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	m "skstress.dev/pkg/skstress/internal/model"
)

// DocumentFSAdapter abstracts filesystem access to the documents requests
// refer to. It hides direct `os` access so planning and report logic can be
// tested without touching the disk.
type DocumentFSAdapter interface {
	// ReadFile loads a document from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (e.g. SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)
}

// LocalDocumentFSAdapter is the concrete implementation backed by the local
// filesystem.
type LocalDocumentFSAdapter struct{}

// NewLocalDocumentFSAdapter constructs a LocalDocumentFSAdapter ready to be
// wired into the planner.
func NewLocalDocumentFSAdapter() *LocalDocumentFSAdapter {
	return &LocalDocumentFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalDocumentFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalDocumentFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
