package blob

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromHandle(t *testing.T) {
	tests := []struct {
		name    string
		handle  string
		wantKey string
		wantErr bool
	}{
		{name: "valid", handle: "blob:profile-images/2026/01/02/a.png", wantKey: "profile-images/2026/01/02/a.png"},
		{name: "external url", handle: "https://example.com/a.png", wantErr: true},
		{name: "empty key", handle: "blob:", wantErr: true},
		{name: "parent traversal", handle: "blob:../etc/passwd", wantErr: true},
		{name: "absolute", handle: "blob:/etc/passwd", wantErr: true},
		{name: "unclean", handle: "blob:a/../../b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := keyFromHandle(tt.handle)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHandle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestNewKey(t *testing.T) {
	now := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)

	key := newKey(now, "image/png")

	assert.True(t, strings.HasPrefix(key, "profile-images/2026/03/07/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
}

func TestLocalStore_PutURLDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/")
	require.NoError(t, err)
	ctx := context.Background()

	handle, err := store.Put(ctx, []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	require.True(t, IsHandle(handle))

	key, err := keyFromHandle(handle)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	url, err := store.URL(ctx, handle)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/"+key, url)

	require.NoError(t, store.Delete(ctx, handle))
	assert.ErrorIs(t, store.Delete(ctx, handle), ErrNotFound)
}

type recordedRequest struct {
	method string
	path   string
	body   string
}

func newFakeS3(t *testing.T) (*httptest.Server, func() []recordedRequest) {
	t.Helper()

	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()

		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), requests...)
	}
}

func newTestS3Store(t *testing.T, endpoint string) *S3Store {
	t.Helper()

	store, err := NewS3Store(context.Background(), S3Options{
		Bucket:     "avatars",
		Region:     "us-east-1",
		Endpoint:   endpoint,
		AccessKey:  "minioadmin",
		SecretKey:  "minioadmin",
		PresignTTL: 5 * time.Minute,
	})
	require.NoError(t, err)
	return store
}

func TestS3Store_PutAndDelete(t *testing.T) {
	srv, requests := newFakeS3(t)
	store := newTestS3Store(t, srv.URL)
	ctx := context.Background()

	handle, err := store.Put(ctx, []byte("gif-bytes"), "image/gif")
	require.NoError(t, err)
	key, err := keyFromHandle(handle)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, handle))

	got := requests()
	require.Len(t, got, 2)
	assert.Equal(t, http.MethodPut, got[0].method)
	assert.Equal(t, "/avatars/"+key, got[0].path)
	assert.Contains(t, got[0].body, "gif-bytes")
	assert.Equal(t, http.MethodDelete, got[1].method)
	assert.Equal(t, "/avatars/"+key, got[1].path)
}

func TestS3Store_URLIsPresigned(t *testing.T) {
	srv, requests := newFakeS3(t)
	store := newTestS3Store(t, srv.URL)

	url, err := store.URL(context.Background(), "blob:profile-images/2026/01/01/x.jpg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, srv.URL+"/avatars/profile-images/2026/01/01/x.jpg?"), url)
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=300")
	assert.Empty(t, requests(), "presigning must not call the endpoint")
}

func TestS3Store_RejectsForeignHandle(t *testing.T) {
	srv, _ := newFakeS3(t)
	store := newTestS3Store(t, srv.URL)

	_, err := store.URL(context.Background(), "https://example.com/a.png")
	assert.ErrorIs(t, err, ErrInvalidHandle)
	assert.ErrorIs(t, store.Delete(context.Background(), "blob:../x"), ErrInvalidHandle)
}
