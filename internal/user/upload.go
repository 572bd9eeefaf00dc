package user

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
)

// ImageField is the multipart field carrying a profile image
const ImageField = "profileImage"

// MaxImageBytes is the largest accepted profile image
const MaxImageBytes = 1 << 20

const maxFormBytes = MaxImageBytes + 64<<10

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// IsMultipart reports whether r carries a multipart/form-data body
func IsMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// ReadMultipart parses a size-limited multipart body. It returns the text
// fields and the profile image, which is nil when no file was sent.
func ReadMultipart(w http.ResponseWriter, r *http.Request) (url.Values, *ImageUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(maxFormBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, ErrImageTooLarge
		}
		return nil, nil, ErrMalformedForm
	}

	values := url.Values(r.MultipartForm.Value)

	file, header, err := r.FormFile(ImageField)
	if errors.Is(err, http.ErrMissingFile) {
		return values, nil, nil
	}
	if err != nil {
		return nil, nil, ErrMalformedForm
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageBytes+1))
	if err != nil {
		return nil, nil, ErrMalformedForm
	}

	return values, &ImageUpload{Filename: header.Filename, Data: data}, nil
}

// ProfileInputFromForm builds an update input from multipart text fields
func ProfileInputFromForm(values url.Values, image *ImageUpload) (UpdateProfileInput, error) {
	in := UpdateProfileInput{Image: image}

	if values.Has("name") {
		name := values.Get("name")
		in.Name = &name
	}
	if values.Has("age") {
		age, err := strconv.Atoi(values.Get("age"))
		if err != nil {
			return in, ErrInvalidAge
		}
		in.Age = &age
	}
	if values.Has("email") {
		email := values.Get("email")
		in.Email = &email
	}
	if values.Has(ImageField) {
		ref := values.Get(ImageField)
		in.ProfileImage = &ref
	}

	return in, nil
}

// sniffImage checks the upload's size and content and returns its detected
// MIME type. The client supplied filename and Content-Type are not trusted.
func sniffImage(upload *ImageUpload) (string, error) {
	if len(upload.Data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	if len(upload.Data) == 0 {
		return "", ErrImageType
	}

	contentType := http.DetectContentType(upload.Data)
	if !allowedImageTypes[contentType] {
		return "", ErrImageType
	}
	return contentType, nil
}
