package user

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/go-task-api/internal/logging"
)

// unreachableRedis returns a client whose every command fails fast
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestPrincipalEncoding_DropsPasswordHash(t *testing.T) {
	name := "Erin"
	age := 40
	now := time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC)
	u := &User{
		ID:           uuid.New(),
		Email:        "erin@example.com",
		PasswordHash: "secret-digest",
		Name:         &name,
		Age:          &age,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	data, err := encodePrincipal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-digest")

	got, err := decodePrincipal(data)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)
	assert.Empty(t, got.PasswordHash)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Erin", *got.Name)
	require.NotNil(t, got.Age)
	assert.Equal(t, 40, *got.Age)
	assert.Nil(t, got.ProfileImage)
	assert.True(t, now.Equal(got.CreatedAt))
}

func TestDecodePrincipal_Garbage(t *testing.T) {
	_, err := decodePrincipal([]byte{0xc1})
	assert.Error(t, err)
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestCachedRepository_ReadThroughAndInvalidate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	mr, client := newMiniredisClient(t)

	u := &User{Email: "grace@example.com", PasswordHash: "secret-digest"}
	require.NoError(t, repo.Create(ctx, u))

	cached := NewCachedRepository(repo, client, 5*time.Minute, logging.Nop())
	key := getPrincipalKey(u.ID)

	got, err := cached.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	assert.Nil(t, got.Name)

	require.True(t, mr.Exists(key))
	assert.Equal(t, 5*time.Minute, mr.TTL(key))
	stored, err := mr.Get(key)
	require.NoError(t, err)
	assert.NotContains(t, stored, "secret-digest")

	name := "New"
	_, err = repo.UpdateProfile(ctx, u.ID, ProfileChanges{Name: &name})
	require.NoError(t, err)

	// served from cache until invalidated
	got, err = cached.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Name)
	assert.Empty(t, got.PasswordHash)

	require.NoError(t, cached.Invalidate(ctx, u.ID))
	assert.False(t, mr.Exists(key))

	got, err = cached.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Name)
	assert.Equal(t, "New", *got.Name)
	assert.True(t, mr.Exists(key))
}

func TestCachedRepository_ExpiredEntryIsReloaded(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	mr, client := newMiniredisClient(t)

	u := &User{Email: "heidi@example.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, u))

	cached := NewCachedRepository(repo, client, time.Minute, logging.Nop())
	_, err := cached.GetByID(ctx, u.ID)
	require.NoError(t, err)

	name := "Heidi"
	_, err = repo.UpdateProfile(ctx, u.ID, ProfileChanges{Name: &name})
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(getPrincipalKey(u.ID)))

	got, err := cached.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Heidi", *got.Name)
}

func TestCachedRepository_UndecodableEntryFallsBackToSource(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	mr, client := newMiniredisClient(t)

	u := &User{Email: "ivan@example.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, u))

	key := getPrincipalKey(u.ID)
	require.NoError(t, mr.Set(key, "\xc1 not msgpack"))

	cached := NewCachedRepository(repo, client, time.Minute, logging.Nop())
	got, err := cached.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	stored, err := mr.Get(key)
	require.NoError(t, err)
	decoded, err := decodePrincipal([]byte(stored))
	require.NoError(t, err)
	assert.Equal(t, u.ID, decoded.ID)
}

func TestCachedRepository_MissingUserIsNotCached(t *testing.T) {
	repo := newTestRepository(t)
	mr, client := newMiniredisClient(t)

	cached := NewCachedRepository(repo, client, time.Minute, logging.Nop())
	id := uuid.New()

	_, err := cached.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, mr.Exists(getPrincipalKey(id)))
}

func TestCachedRepository_FallsBackWhenRedisIsDown(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	u := &User{Email: "frank@example.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, u))

	cached := NewCachedRepository(repo, unreachableRedis(t), time.Minute, logging.Nop())

	got, err := cached.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = cached.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, cached.Invalidate(ctx, u.ID))
}

func TestNopInvalidator(t *testing.T) {
	assert.NoError(t, NopInvalidator{}.Invalidate(context.Background(), uuid.New()))
}
