package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/redmonkez12/go-task-api/internal/logging"
	"github.com/redmonkez12/go-task-api/internal/user"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 6

const maxEmailLength = 254

// SignUpInput is a registration request with optional profile fields
type SignUpInput struct {
	Email        string
	Password     string
	Name         *string
	Age          *int
	ProfileImage *string
	Image        *user.ImageUpload
}

// Result is returned by sign-up and sign-in
type Result struct {
	Token string
	User  *user.Response
}

// Service handles authentication business logic
type Service struct {
	users    UserStore
	tokens   TokenService
	hasher   *PasswordHasher
	profiles Profiles
	cache    user.Invalidator
	notifier Notifier
	logger   *logging.Logger
}

func NewService(
	users UserStore,
	tokens TokenService,
	hasher *PasswordHasher,
	profiles Profiles,
	cache user.Invalidator,
	notifier Notifier,
	logger *logging.Logger,
) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		profiles: profiles,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// SignUp creates a principal and issues its first token. A taken email is
// detected by the store's unique index, never by a prior lookup.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*Result, error) {
	email := user.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrCredentialsRequired
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(in.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	profile, err := user.ValidateProfile(in.Name, in.Age, in.ProfileImage)
	if err != nil {
		return nil, err
	}
	if in.Image != nil && in.ProfileImage != nil {
		return nil, user.ErrAmbiguousImage
	}

	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if in.Image != nil {
		handle, err := s.profiles.StoreProfileImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		profile.ProfileImage = &handle
	}

	newUser := &user.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         profile.Name,
		Age:          profile.Age,
		ProfileImage: profile.ProfileImage,
	}
	if err := s.users.Create(ctx, newUser); err != nil {
		if in.Image != nil {
			s.profiles.DiscardProfileImage(ctx, *profile.ProfileImage)
		}
		return nil, err
	}

	token, err := s.tokens.CreateToken(newUser.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	s.notifier.NotifySignUp(ctx, newUser.Email)

	return &Result{Token: token, User: s.profiles.Present(ctx, newUser)}, nil
}

// SignIn checks credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Result, error) {
	email = user.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	existingUser, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Verify(password, existingUser.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(existingUser.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &Result{Token: token, User: s.profiles.Present(ctx, existingUser)}, nil
}

// ResetPassword replaces the password of the principal registered under
// email. Tokens issued before the reset stay valid until they expire.
func (s *Service) ResetPassword(ctx context.Context, email, password string) error {
	email = user.NormalizeEmail(email)
	if email == "" || password == "" {
		return ErrResetFieldsRequired
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	existingUser, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, existingUser.ID, passwordHash); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, existingUser.ID); err != nil {
		s.logger.Warn("failed to invalidate cached principal", "user_id", existingUser.ID.String(), "error", err.Error())
	}

	s.notifier.NotifyPasswordChanged(ctx, existingUser.Email)

	return nil
}

func validateEmail(email string) error {
	if len(email) > maxEmailLength {
		return ErrInvalidEmailFormat
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmailFormat
	}
	return nil
}
