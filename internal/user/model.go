package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a registered principal
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string `json:"-"` // Never expose password hash
	Name         *string
	Age          *int
	// ProfileImage is either an external URL or a blob handle
	ProfileImage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Response is the public representation of a user
type Response struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	Age          *int      `json:"age"`
	ProfileImage *string   `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProfileChanges lists the columns an update touches. Nil fields are left as they are.
type ProfileChanges struct {
	Name         *string
	Age          *int
	ProfileImage *string
}

// UpdateProfileInput is the body of PUT /users/{id}
type UpdateProfileInput struct {
	Name         *string `json:"name"`
	Age          *int    `json:"age"`
	Email        *string `json:"email"`
	ProfileImage *string `json:"profileImage"`

	// Image is set when the request carried a multipart file upload
	Image *ImageUpload `json:"-"`
}

// ImageUpload is a profile image received as a file
type ImageUpload struct {
	Filename string
	Data     []byte
}

// NormalizeEmail is applied to every email before it is stored or looked up
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
