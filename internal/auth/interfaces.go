package auth

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_mock.go -package=mock -mock_names=UserStore=MockCredentialStore

import (
	"context"

	"github.com/google/uuid"

	"github.com/redmonkez12/go-task-api/internal/user"
)

// TokenService defines the interface for token creation and validation.
// Implementations include PasetoService (PASETO v4.local) and JWTService (HS256).
type TokenService interface {
	CreateToken(userID uuid.UUID) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}

// PrincipalLookup resolves the principal named by a verified token
type PrincipalLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// UserStore is the credential side of user persistence
type UserStore interface {
	Create(ctx context.Context, u *user.User) error
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// Profiles stores sign-up profile images and renders users for responses
type Profiles interface {
	StoreProfileImage(ctx context.Context, upload *user.ImageUpload) (string, error)
	DiscardProfileImage(ctx context.Context, ref string)
	Present(ctx context.Context, u *user.User) *user.Response
}

// Notifier sends account emails. Calls return immediately; delivery
// failures are the notifier's to log.
type Notifier interface {
	NotifySignUp(ctx context.Context, email string)
	NotifyPasswordChanged(ctx context.Context, email string)
}
