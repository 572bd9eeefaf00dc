package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testArgon2Params keeps tests fast
var testArgon2Params = Argon2Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(testArgon2Params)

	digest, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$argon2id$v=19$m=64,t=1,p=1$"), digest)
	assert.True(t, h.Verify("secret1", digest))
	assert.False(t, h.Verify("secret2", digest))
	assert.False(t, h.Verify("", digest))
}

func TestPasswordHasher_FreshSaltPerHash(t *testing.T) {
	h := NewPasswordHasher(testArgon2Params)

	first, err := h.Hash("same password")
	require.NoError(t, err)
	second, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same password", first))
	assert.True(t, h.Verify("same password", second))
}

func TestPasswordHasher_VerifiesWithEmbeddedParams(t *testing.T) {
	old := NewPasswordHasher(testArgon2Params)
	digest, err := old.Hash("secret1")
	require.NoError(t, err)

	stronger := NewPasswordHasher(Argon2Params{Time: 2, Memory: 128, Threads: 2, KeyLen: 32, SaltLen: 16})
	assert.True(t, stronger.Verify("secret1", digest))
}

func TestPasswordHasher_MalformedDigests(t *testing.T) {
	h := NewPasswordHasher(testArgon2Params)

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty", digest: ""},
		{name: "plain text", digest: "secret1"},
		{name: "wrong algorithm", digest: "$argon2i$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$aGFzaA"},
		{name: "wrong version", digest: "$argon2id$v=16$m=64,t=1,p=1$c2FsdHNhbHQ$aGFzaA"},
		{name: "bad params", digest: "$argon2id$v=19$m=x,t=1,p=1$c2FsdHNhbHQ$aGFzaA"},
		{name: "zero parallelism", digest: "$argon2id$v=19$m=64,t=1,p=0$c2FsdHNhbHQ$aGFzaA"},
		{name: "zero time", digest: "$argon2id$v=19$m=64,t=0,p=1$c2FsdHNhbHQ$aGFzaA"},
		{name: "bad salt", digest: "$argon2id$v=19$m=64,t=1,p=1$!!!$aGFzaA"},
		{name: "empty hash", digest: "$argon2id$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$"},
		{name: "too few parts", digest: "$argon2id$v=19$m=64,t=1,p=1"},
		{name: "truncated bcrypt", digest: "$2b$10$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("secret1", tt.digest))
			})
		})
	}
}

func TestPasswordHasher_LegacyBcrypt(t *testing.T) {
	h := NewPasswordHasher(testArgon2Params)

	legacy, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	digest := string(legacy)

	assert.True(t, h.Verify("secret1", digest))
	assert.False(t, h.Verify("wrong", digest))

	// Digests written by other bcrypt implementations use $2b$ or $2y$
	for _, prefix := range []string{"$2b$", "$2y$"} {
		variant := prefix + strings.TrimPrefix(digest, "$2a$")
		assert.True(t, h.Verify("secret1", variant), prefix)
	}
}
