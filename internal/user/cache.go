package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/redmonkez12/go-task-api/internal/logging"
)

// PrincipalSource loads a principal from the system of record
type PrincipalSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// CachedRepository is a read-through Redis cache in front of the principal
// lookup done on every authenticated request. The password hash is never
// cached. Redis failures degrade to reading from the source.
type CachedRepository struct {
	source PrincipalSource
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

func NewCachedRepository(source PrincipalSource, client *redis.Client, ttl time.Duration, logger *logging.Logger) *CachedRepository {
	return &CachedRepository{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// cachedPrincipal is the msgpack shape stored in Redis
type cachedPrincipal struct {
	ID           string    `msgpack:"id"`
	Email        string    `msgpack:"email"`
	Name         *string   `msgpack:"name"`
	Age          *int      `msgpack:"age"`
	ProfileImage *string   `msgpack:"profile_image"`
	CreatedAt    time.Time `msgpack:"created_at"`
	UpdatedAt    time.Time `msgpack:"updated_at"`
}

// getPrincipalKey generates the Redis key for a cached principal
func getPrincipalKey(id uuid.UUID) string {
	return fmt.Sprintf("principal:%s", id.String())
}

func (c *CachedRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	key := getPrincipalKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		u, decodeErr := decodePrincipal(data)
		if decodeErr == nil {
			return u, nil
		}
		c.logger.Warn("discarding undecodable cached principal", "user_id", id.String(), "error", decodeErr.Error())
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("principal cache read failed", "user_id", id.String(), "error", err.Error())
	}

	u, err := c.source.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	encoded, err := encodePrincipal(u)
	if err != nil {
		c.logger.Warn("failed to encode principal for cache", "user_id", id.String(), "error", err.Error())
		return u, nil
	}
	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		c.logger.Warn("principal cache write failed", "user_id", id.String(), "error", err.Error())
	}

	return u, nil
}

// Invalidate removes the cached copy of a principal
func (c *CachedRepository) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, getPrincipalKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached principal: %w", err)
	}
	return nil
}

func encodePrincipal(u *User) ([]byte, error) {
	return msgpack.Marshal(&cachedPrincipal{
		ID:           u.ID.String(),
		Email:        u.Email,
		Name:         u.Name,
		Age:          u.Age,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	})
}

func decodePrincipal(data []byte) (*User, error) {
	var cp cachedPrincipal
	if err := msgpack.Unmarshal(data, &cp); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(cp.ID)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           id,
		Email:        cp.Email,
		Name:         cp.Name,
		Age:          cp.Age,
		ProfileImage: cp.ProfileImage,
		CreatedAt:    cp.CreatedAt,
		UpdatedAt:    cp.UpdatedAt,
	}, nil
}

// NopInvalidator is used when Redis is disabled
type NopInvalidator struct{}

func (NopInvalidator) Invalidate(context.Context, uuid.UUID) error { return nil }
