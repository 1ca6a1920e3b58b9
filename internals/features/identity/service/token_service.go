package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nssportal_backend/internals/configs"
	authModel "nssportal_backend/internals/features/identity/model"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

// buildAccessClaims puts everything the auth middleware needs into the
// token so the Principal can be rebuilt without a DB round trip.
func buildAccessClaims(u *authModel.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":       u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	if u.DepartmentID != nil {
		claims["department_id"] = u.DepartmentID.String()
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

func IssueAccessToken(u *authModel.UserModel, now time.Time) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET not configured")
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
}

func IssueRefreshToken(userID uuid.UUID, now time.Time) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET not configured")
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(userID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshSubject validates a refresh JWT and returns its subject.
func ParseRefreshSubject(raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("invalid refresh token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid refresh claims")
	}
	sub, _ := claims["sub"].(string)
	return uuid.Parse(sub)
}

// computeRefreshHash — only the HMAC of the refresh token touches the DB.
func computeRefreshHash(token string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func storeRefreshToken(db *gorm.DB, c *fiber.Ctx, userID uuid.UUID, raw string, now time.Time) error {
	ua := c.Get("User-Agent")
	ip := c.IP()
	return db.Create(&authModel.RefreshTokenModel{
		UserID:    userID,
		Token:     computeRefreshHash(raw),
		ExpiresAt: now.Add(refreshTTL),
		UserAgent: &ua,
		IP:        &ip,
	}).Error
}

func deleteRefreshTokenByRaw(db *gorm.DB, raw string) error {
	return db.Where("refresh_token_hash = ?", computeRefreshHash(raw)).
		Delete(&authModel.RefreshTokenModel{}).Error
}

func refreshTokenKnown(db *gorm.DB, raw string) (uuid.UUID, bool) {
	var rt authModel.RefreshTokenModel
	err := db.
		Where("refresh_token_hash = ? AND refresh_token_revoked_at IS NULL AND refresh_token_expires_at > NOW()", computeRefreshHash(raw)).
		Limit(1).
		Find(&rt).Error
	if err != nil || rt.ID == uuid.Nil {
		return uuid.Nil, false
	}
	return rt.UserID, true
}

func setRefreshCookie(c *fiber.Ctx, raw string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    raw,
		Expires:  now.Add(refreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/api/auth",
	})
}
