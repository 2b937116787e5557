package storage

import (
	"bufio"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	sniffLen    = 3072
	maxNameLen  = 64
	defaultName = "upload"
)

// scratchKey prefixes a sanitized filename with a uuid so same-named uploads
// never share a key.
func scratchKey(filename string) string {
	return uuid.New().String() + "-" + safeName(filename)
}

func safeName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), ".")
	if name == "" {
		return defaultName
	}
	if len(name) > maxNameLen {
		name = name[len(name)-maxNameLen:]
	}
	return name
}

// sniff detects the MIME type from the head of r and returns a reader that
// still yields every byte.
func sniff(r io.Reader) (string, io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return "", nil, err
	}
	return mimetype.Detect(head).String(), br, nil
}
