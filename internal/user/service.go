package user

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/redmonkez12/go-task-api/internal/blob"
	"github.com/redmonkez12/go-task-api/internal/logging"
)

const (
	maxNameLength = 100
	maxAge        = 120
)

// Service implements profile reads and updates
type Service struct {
	store  Store
	cache  Invalidator
	blobs  blob.Store
	logger *logging.Logger
}

func NewService(store Store, cache Invalidator, blobs blob.Store, logger *logging.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		blobs:  blobs,
		logger: logger,
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.store.GetByID(ctx, id)
}

// Present builds the public representation of u, turning a blob handle
// into a fetchable URL
func (s *Service) Present(ctx context.Context, u *User) *Response {
	resp := &Response{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	if u.ProfileImage == nil || *u.ProfileImage == "" {
		return resp
	}

	ref := *u.ProfileImage
	if !blob.IsHandle(ref) {
		resp.ProfileImage = &ref
		return resp
	}

	imageURL, err := s.blobs.URL(ctx, ref)
	if err != nil {
		s.logger.Warn("failed to resolve profile image", "user_id", u.ID.String(), "error", err.Error())
		return resp
	}
	resp.ProfileImage = &imageURL
	return resp
}

// UpdateProfile changes the profile of targetID on behalf of principalID.
// A principal may only update itself and the email never changes.
func (s *Service) UpdateProfile(ctx context.Context, principalID, targetID uuid.UUID, in UpdateProfileInput) (*User, error) {
	if principalID != targetID {
		return nil, ErrForbiddenUpdate
	}
	if in.Email != nil {
		return nil, ErrEmailImmutable
	}

	changes, err := ValidateProfile(in.Name, in.Age, in.ProfileImage)
	if err != nil {
		return nil, err
	}
	if in.Image != nil && in.ProfileImage != nil {
		return nil, ErrAmbiguousImage
	}

	current, err := s.store.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if in.Image != nil {
		handle, err := s.StoreProfileImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		changes.ProfileImage = &handle
	}

	updated, err := s.store.UpdateProfile(ctx, targetID, changes)
	if err != nil {
		if in.Image != nil {
			s.DiscardProfileImage(ctx, *changes.ProfileImage)
		}
		return nil, err
	}

	if changes.ProfileImage != nil && current.ProfileImage != nil && *current.ProfileImage != *changes.ProfileImage {
		s.DiscardProfileImage(ctx, *current.ProfileImage)
	}

	if err := s.cache.Invalidate(ctx, targetID); err != nil {
		s.logger.Warn("failed to invalidate cached principal", "user_id", targetID.String(), "error", err.Error())
	}

	return updated, nil
}

// StoreProfileImage validates an uploaded image and stores it, returning
// its blob handle
func (s *Service) StoreProfileImage(ctx context.Context, upload *ImageUpload) (string, error) {
	contentType, err := sniffImage(upload)
	if err != nil {
		return "", err
	}
	return s.blobs.Put(ctx, upload.Data, contentType)
}

// DiscardProfileImage deletes ref if it points into the blob store. External
// URLs are left alone. Failures are logged only.
func (s *Service) DiscardProfileImage(ctx context.Context, ref string) {
	if !blob.IsHandle(ref) {
		return
	}
	if err := s.blobs.Delete(ctx, ref); err != nil {
		s.logger.Warn("failed to delete profile image", "handle", ref, "error", err.Error())
	}
}

// ValidateProfile checks the optional profile fields and returns them
// normalised. An empty profile image clears the current one.
func ValidateProfile(name *string, age *int, profileImage *string) (ProfileChanges, error) {
	var changes ProfileChanges

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if utf8.RuneCountInString(trimmed) > maxNameLength {
			return changes, ErrNameTooLong
		}
		changes.Name = &trimmed
	}

	if age != nil {
		if *age < 0 || *age > maxAge {
			return changes, ErrInvalidAge
		}
		changes.Age = age
	}

	if profileImage != nil {
		ref := strings.TrimSpace(*profileImage)
		if ref != "" && !isHTTPURL(ref) {
			return changes, ErrInvalidImageURL
		}
		changes.ProfileImage = &ref
	}

	return changes, nil
}

func isHTTPURL(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
