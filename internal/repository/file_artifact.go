package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"RegimeSim/internal/domain/repository"
)

// FileArtifact writes the rendered chart to a fixed path.
type FileArtifact struct {
	path string
}

// NewFileArtifact creates a file-backed artifact writer.
func NewFileArtifact(path string) repository.ArtifactWriter {
	return &FileArtifact{path: path}
}

// Write stores data at the configured path. The file appears only once it is
// complete: data goes to a temp file in the same directory which is renamed
// over the target.
func (a *FileArtifact) Write(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Dir(a.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(a.path)+".*")
	if err != nil {
		return "", fmt.Errorf("create temp artifact: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("chmod artifact: %w", err)
	}
	if err := os.Rename(tmpName, a.path); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("rename artifact: %w", err)
	}
	return a.path, nil
}
