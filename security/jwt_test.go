package security

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-collab-app/config/common"
	"team-collab-app/entity"
)

func testConfig(secret string) *common.Config {
	v := viper.New()
	v.Set("JWT_SECRET", secret)
	return &common.Config{Viper: v}
}

func TestTokenRoundTrip(t *testing.T) {
	jwt := NewJWT(testConfig("test-secret"))

	user := &entity.User{}
	user.ID = "user-1"

	token, err := jwt.GenerateToken(user)
	require.NoError(t, err)

	userID, err := jwt.GetUserIdFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenWithWrongSecretIsRejected(t *testing.T) {
	issuer := NewJWT(testConfig("secret-a"))
	verifier := NewJWT(testConfig("secret-b"))

	user := &entity.User{}
	user.ID = "user-1"

	token, err := issuer.GenerateToken(user)
	require.NoError(t, err)

	_, err = verifier.GetUserIdFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	jwt := NewJWT(testConfig("test-secret"))
	_, err := jwt.GetUserIdFromToken("not.a.token")
	assert.Error(t, err)
}
