// Package blob stores opaque binary objects (profile images) and hands out
// stable handles of the form "blob:<key>" that can later be turned into a
// URL or deleted.
package blob

//go:generate mockgen -source=blob.go -destination=../mock/blob_mock.go -package=mock -mock_names=Store=MockBlobStore

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const handlePrefix = "blob:"

var (
	ErrInvalidHandle = errors.New("invalid blob handle")
	ErrNotFound      = errors.New("blob not found")
)

// Store is implemented by LocalStore and S3Store
type Store interface {
	// Put stores data and returns its handle
	Put(ctx context.Context, data []byte, contentType string) (string, error)
	// URL returns a URL a client can fetch the object from
	URL(ctx context.Context, handle string) (string, error)
	Delete(ctx context.Context, handle string) error
}

// IsHandle reports whether ref points into a blob store rather than being
// an external URL
func IsHandle(ref string) bool {
	return strings.HasPrefix(ref, handlePrefix)
}

func handleFor(key string) string {
	return handlePrefix + key
}

// keyFromHandle returns the storage key of handle, rejecting anything that
// could escape the store's namespace
func keyFromHandle(handle string) (string, error) {
	key, ok := strings.CutPrefix(handle, handlePrefix)
	if !ok || key == "" {
		return "", ErrInvalidHandle
	}
	if path.IsAbs(key) || path.Clean(key) != key || strings.HasPrefix(key, "..") {
		return "", ErrInvalidHandle
	}
	return key, nil
}

// newKey builds a date-partitioned random key, e.g.
// profile-images/2026/10/19/<uuid>.png
func newKey(now time.Time, contentType string) string {
	return fmt.Sprintf("profile-images/%04d/%02d/%02d/%s%s",
		now.Year(), now.Month(), now.Day(), uuid.New(), extensionFor(contentType))
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
