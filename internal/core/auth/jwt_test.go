package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("k"), Issuer: "bankclients", TTL: time.Hour}
	tok, err := j.Issue("admin", "admin")
	require.NoError(t, err)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", c.UID)
	assert.Equal(t, "admin", c.Role)
	assert.Equal(t, "bankclients", c.Issuer)
}

func TestParseRejects(t *testing.T) {
	j := &JWTer{Secret: []byte("k"), Issuer: "bankclients", TTL: time.Hour}

	other := &JWTer{Secret: []byte("k"), Issuer: "someone-else", TTL: time.Hour}
	tok, err := other.Issue("admin", "admin")
	require.NoError(t, err)
	_, err = j.Parse(tok)
	assert.Error(t, err, "wrong issuer")

	wrongKey := &JWTer{Secret: []byte("other"), Issuer: "bankclients", TTL: time.Hour}
	tok, err = wrongKey.Issue("admin", "admin")
	require.NoError(t, err)
	_, err = j.Parse(tok)
	assert.Error(t, err, "wrong key")

	expired := &JWTer{Secret: []byte("k"), Issuer: "bankclients", TTL: -2 * time.Minute}
	tok, err = expired.Issue("admin", "admin")
	require.NoError(t, err)
	_, err = j.Parse(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: "admin"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = j.Parse(none)
	assert.Error(t, err, "alg none")
}
