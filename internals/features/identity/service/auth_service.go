package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nssportal_backend/internals/configs"
	"nssportal_backend/internals/constants"
	"nssportal_backend/internals/features/approval/engine"
	"nssportal_backend/internals/features/identity/dto"
	authModel "nssportal_backend/internals/features/identity/model"
	helper "nssportal_backend/internals/helpers"
)

var validate = validator.New()

// ========================== REGISTER ==========================
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	role, ok := constants.ParseRole(req.Role)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown role")
	}
	// PO/SC need a department; the PC must not carry one
	if role == constants.RolePC && req.DepartmentID != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Program Coordinator accounts are not department-scoped")
	}
	if role != constants.RolePC && (req.DepartmentID == nil || *req.DepartmentID == "") {
		return helper.Error(c, fiber.StatusBadRequest, "A department is required for this role")
	}

	user, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid department ID")
	}
	user.Role = string(role)

	hash, err := HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	user.Password = hash

	if err := db.Create(user).Error; err != nil {
		if engine.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Email already registered")
		}
		log.Printf("[ERROR] register insert: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Account created", dto.FromUserModel(user))
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user authModel.UserModel
	if err := db.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if !CheckPassword(user.Password, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return issueSession(db, c, &user)
}

// ========================== LOGIN (GOOGLE) ==========================
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Google token carries no email")
	}

	// accounts are provisioned by the PC; Google sign-in only matches them
	var user authModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "No portal account for this Google identity")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if user.GoogleID == nil {
		sub := claimSet.Sub
		if err := db.Model(&user).Update("user_google_id", sub).Error; err != nil {
			log.Printf("[WARN] google id backfill: %v", err)
		}
	}

	return issueSession(db, c, &user)
}

func issueSession(db *gorm.DB, c *fiber.Ctx, user *authModel.UserModel) error {
	now := time.Now().UTC()

	access, err := IssueAccessToken(user, now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue access token")
	}
	refresh, err := IssueRefreshToken(user.ID, now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}
	if err := storeRefreshToken(db, c, user.ID, refresh, now); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to persist session")
	}
	setRefreshCookie(c, refresh, now)

	return helper.Success(c, "Login successful", fiber.Map{
		"access_token": access,
		"user":         dto.FromUserModel(user),
	})
}

// ========================== REFRESH ==========================
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	subject, err := ParseRefreshSubject(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	userID, known := refreshTokenKnown(db, raw)
	if !known || userID != subject {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}

	var user authModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Account no longer exists")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is deactivated")
	}

	// ROTATE: the old token dies with this request
	if err := deleteRefreshTokenByRaw(db, raw); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	return issueSession(db, c, &user)
}

// ========================== LOGOUT ==========================
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	if raw := strings.TrimSpace(c.Cookies("refresh_token")); raw != "" {
		if err := deleteRefreshTokenByRaw(db, raw); err != nil {
			log.Printf("[logout] delete refresh failed: %v", err)
		}
	}
	clearRefreshCookie(c)
	return helper.Success(c, "Logged out", nil)
}
