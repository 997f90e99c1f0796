// Package storage puts uploaded document bytes somewhere addressable by URL.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

var ErrInvalidKey = errors.New("storage: invalid object key")

// Storage stores objects under slash-separated keys such as
// "insurance_policy/1735689600000_k3j9.pdf".
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) (publicURL string, err error)
	Delete(ctx context.Context, key string) error
}

// cleanKey rejects absolute and parent-relative keys.
func cleanKey(key string) (string, error) {
	key = strings.ReplaceAll(key, "\\", "/")
	cleaned := path.Clean(key)
	if cleaned == "." || strings.HasPrefix(cleaned, "/") || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
