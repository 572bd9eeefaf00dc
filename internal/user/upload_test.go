package user

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestSniffImage(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantType string
		wantErr  error
	}{
		{name: "png", data: pngHeader, wantType: "image/png"},
		{name: "gif", data: []byte("GIF89a\x01\x00\x01\x00"), wantType: "image/gif"},
		{name: "jpeg", data: []byte("\xff\xd8\xff\xe0\x00\x10JFIF"), wantType: "image/jpeg"},
		{name: "text", data: []byte("hello world"), wantErr: ErrImageType},
		{name: "empty", data: nil, wantErr: ErrImageType},
		{name: "too large", data: make([]byte, MaxImageBytes+1), wantErr: ErrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType, err := sniffImage(&ImageUpload{Data: tt.data})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, contentType)
		})
	}
}

func TestProfileInputFromForm(t *testing.T) {
	values := url.Values{
		"name":  {"Grace"},
		"age":   {"36"},
		"email": {"grace@example.com"},
	}

	in, err := ProfileInputFromForm(values, nil)
	require.NoError(t, err)

	require.NotNil(t, in.Name)
	assert.Equal(t, "Grace", *in.Name)
	require.NotNil(t, in.Age)
	assert.Equal(t, 36, *in.Age)
	require.NotNil(t, in.Email)
	assert.Nil(t, in.ProfileImage)

	_, err = ProfileInputFromForm(url.Values{"age": {"old"}}, nil)
	assert.ErrorIs(t, err, ErrInvalidAge)
}

func TestReadMultipart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Heidi"))
	fw, err := mw.CreateFormFile(ImageField, "me.png")
	require.NoError(t, err)
	_, err = fw.Write(pngHeader)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/users/x", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.True(t, IsMultipart(req))

	values, image, err := ReadMultipart(httptest.NewRecorder(), req)
	require.NoError(t, err)
	assert.Equal(t, "Heidi", values.Get("name"))
	require.NotNil(t, image)
	assert.Equal(t, "me.png", image.Filename)
	assert.Equal(t, pngHeader, image.Data)
}

func TestReadMultipart_WithoutFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("age", "20"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/users/x", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	values, image, err := ReadMultipart(httptest.NewRecorder(), req)
	require.NoError(t, err)
	assert.Nil(t, image)
	assert.Equal(t, "20", values.Get("age"))
}

func TestIsMultipart_JSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/users/x", nil)
	req.Header.Set("Content-Type", "application/json")
	assert.False(t, IsMultipart(req))
}
