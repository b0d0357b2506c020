package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secretKey string = "testJwtKey"

func TestDecodeTokenCorrect(t *testing.T) {
	jwt := New(secretKey, 10*time.Second)
	token, err := jwt.NewToken(1)
	require.NoError(t, err)

	id, err := jwt.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestDecodeTokenExpired(t *testing.T) {
	jwt := New(secretKey, -time.Second)
	token, err := jwt.NewToken(1)
	require.NoError(t, err)

	_, err = jwt.DecodeToken(token)
	assert.Error(t, err, "we shouldn't decode expired token")
}

func TestDecodeTokenInvalidSecretKey(t *testing.T) {
	token, err := New(secretKey, 10*time.Second).NewToken(1)
	require.NoError(t, err)

	_, err = New("invalidSecret", 10*time.Second).DecodeToken(token)
	assert.Error(t, err, "we shouldn't decode token with invalid secret")
}

func TestDecodeTokenMalformed(t *testing.T) {
	_, err := New(secretKey, 10*time.Second).DecodeToken("not.a.token")
	assert.Error(t, err)
}
