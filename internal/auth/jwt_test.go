package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTSignVerifyRoundTrip(t *testing.T) {
	j := NewJWT("super-secret")

	tok, err := j.Sign(42)
	require.NoError(t, err)

	uid, err := j.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), uid)
}

func TestJWTVerifyWrongSecret(t *testing.T) {
	tok, err := NewJWT("right-secret").Sign(1)
	require.NoError(t, err)

	_, err = NewJWT("wrong-secret").Verify(tok)
	assert.Error(t, err)
}

func TestJWTVerifyExpired(t *testing.T) {
	j := NewJWT("secret")
	// Issue a token from two days in the past; the 24h TTL has lapsed.
	j.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	tok, err := j.Sign(7)
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.Verify(tok)
	assert.Error(t, err)
}

func TestJWTVerifyGarbage(t *testing.T) {
	_, err := NewJWT("secret").Verify("not-a-token")
	assert.Error(t, err)
}
