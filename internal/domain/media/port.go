package media

import (
	"context"
	"io"
)

// Scratch is an uploaded file parked for the duration of one request.
type Scratch struct {
	Key      string
	Name     string
	MIMEType string
	Size     int64
}

// ScratchStore port (interface untuk penyimpanan sementara)
type ScratchStore interface {
	// Put stores r under a key unique to this call, even when filename repeats.
	Put(ctx context.Context, filename string, r io.Reader) (*Scratch, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
	Check(ctx context.Context) error
}
