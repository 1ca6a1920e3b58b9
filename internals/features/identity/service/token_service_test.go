package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nssportal_backend/internals/configs"
	authModel "nssportal_backend/internals/features/identity/model"
)

func withTestSecrets(t *testing.T) {
	t.Helper()
	oldAccess, oldRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = oldAccess
		configs.JWTRefreshSecret = oldRefresh
	})
}

func TestAccessTokenCarriesPrincipalClaims(t *testing.T) {
	withTestSecrets(t)

	dept := uuid.New()
	u := &authModel.UserModel{
		ID:           uuid.New(),
		UserName:     "Asha",
		Role:         "po",
		DepartmentID: &dept,
	}
	now := time.Now()

	raw, err := IssueAccessToken(u, now)
	require.NoError(t, err)

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID.String(), claims["sub"])
	assert.Equal(t, "po", claims["role"])
	assert.Equal(t, dept.String(), claims["department_id"])
}

func TestAccessTokenOmitsDepartmentForCoordinator(t *testing.T) {
	withTestSecrets(t)

	u := &authModel.UserModel{ID: uuid.New(), UserName: "Ravi", Role: "pc"}
	raw, err := IssueAccessToken(u, time.Now())
	require.NoError(t, err)

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)

	claims := tok.Claims.(jwt.MapClaims)
	_, present := claims["department_id"]
	assert.False(t, present)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	withTestSecrets(t)

	userID := uuid.New()
	raw, err := IssueRefreshToken(userID, time.Now())
	require.NoError(t, err)

	sub, err := ParseRefreshSubject(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, sub)
}

func TestParseRefreshSubjectRejectsForgedToken(t *testing.T) {
	withTestSecrets(t)

	// signed with the access secret instead of the refresh secret
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)

	_, err = ParseRefreshSubject(forged)
	assert.Error(t, err)

	_, err = ParseRefreshSubject("not-a-jwt")
	assert.Error(t, err)
}

func TestParseRefreshSubjectRejectsExpired(t *testing.T) {
	withTestSecrets(t)

	raw, err := IssueRefreshToken(uuid.New(), time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)

	_, err = ParseRefreshSubject(raw)
	assert.Error(t, err)
}

func TestRefreshHashIsStableAndSecretBound(t *testing.T) {
	withTestSecrets(t)

	h1 := computeRefreshHash("some-token")
	h2 := computeRefreshHash("some-token")
	assert.Equal(t, h1, h2)

	configs.JWTRefreshSecret = "rotated-secret"
	h3 := computeRefreshHash("some-token")
	assert.NotEqual(t, h1, h3, "rotating the secret must invalidate stored hashes")
}
