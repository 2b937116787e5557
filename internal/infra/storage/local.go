package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bryanwahyu/chaos-engine/internal/domain/media"
)

// Local keeps scratch files in a directory on disk.
type Local struct {
	dir string
	log *zap.Logger
}

// NewLocal creates dir if needed. An empty dir means the OS temp directory.
func NewLocal(dir string, log *zap.Logger) (*Local, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "chaos-engine")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch dir: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Local{dir: dir, log: log.Named("scratch-local")}, nil
}

func (l *Local) Put(_ context.Context, filename string, r io.Reader) (*media.Scratch, error) {
	mimeType, body, err := sniff(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	key := scratchKey(filename)
	f, err := os.OpenFile(l.path(key), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	n, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(l.path(key))
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}
	l.log.Debug("scratch stored", zap.String("key", key), zap.Int64("bytes", n))
	return &media.Scratch{Key: key, Name: filename, MIMEType: mimeType, Size: n}, nil
}

func (l *Local) Open(_ context.Context, key string) (io.ReadCloser, error) {
	return os.Open(l.path(key))
}

func (l *Local) Remove(_ context.Context, key string) error {
	if err := os.Remove(l.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Check verifies the directory is still there and writable.
func (l *Local) Check(context.Context) error {
	f, err := os.CreateTemp(l.dir, ".health-*")
	if err != nil {
		return err
	}
	f.Close()
	return os.Remove(f.Name())
}

func (l *Local) path(key string) string {
	return filepath.Join(l.dir, filepath.Base(key))
}
