package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func basicHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func TestBasicCredentials(t *testing.T) {
	email, token, ok := basicCredentials(basicHeader("helpdesk@example.com/token", "s3cret"))
	require.True(t, ok)
	assert.Equal(t, "helpdesk@example.com", email)
	assert.Equal(t, "s3cret", token)
}

func TestBasicCredentialsWithoutTokenSuffix(t *testing.T) {
	email, token, ok := basicCredentials(basicHeader("helpdesk@example.com", "s3cret"))
	require.True(t, ok)
	assert.Equal(t, "helpdesk@example.com", email)
	assert.Equal(t, "s3cret", token)
}

func TestBasicCredentialsRejectsMalformedHeaders(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"wrong scheme":     "Bearer abc",
		"not base64":       "Basic !!!",
		"no colon":         "Basic " + base64.StdEncoding.EncodeToString([]byte("useronly")),
		"empty password":   basicHeader("user@example.com/token", ""),
		"suffix only user": basicHeader("/token", "s3cret"),
	}
	for name, header := range cases {
		_, _, ok := basicCredentials(header)
		assert.False(t, ok, name)
	}
}

func TestTokenHashRoundTrip(t *testing.T) {
	hashed, err := HashToken("topsecret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, CompareToken(hashed, "topsecret"))
	assert.Error(t, CompareToken(hashed, "wrong"))
}
