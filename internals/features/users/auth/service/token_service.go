// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/configs"
	authModel "lembagaku_backend/internals/features/users/auth/model"
	userModel "lembagaku_backend/internals/features/users/user/model"
	helper "lembagaku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 2 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func buildAccessClaims(user userModel.UserModel) jwt.MapClaims {
	now := time.Now()
	claims := jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	if user.BranchID != nil {
		claims["branch_id"] = user.BranchID.String()
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret belum diset")
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// computeRefreshHash: yang disimpan di DB cuma HMAC dari token.
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

// IssueTokens buat pasangan access+refresh, simpan hash refresh di DB,
// dan set refresh sebagai httpOnly cookie.
func IssueTokens(db *gorm.DB, c *fiber.Ctx, user userModel.UserModel) (string, error) {
	accessToken, err := signToken(buildAccessClaims(user), configs.JWTSecret)
	if err != nil {
		return "", err
	}

	refreshToken, err := signToken(buildRefreshClaims(user.ID), configs.JWTRefreshSecret)
	if err != nil {
		return "", err
	}

	rt := authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refreshToken, configs.JWTRefreshSecret),
		ExpiresAt: time.Now().Add(refreshTTLDefault),
	}
	if err := db.Create(&rt).Error; err != nil {
		return "", err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  rt.ExpiresAt,
		Path:     "/",
	})

	return accessToken, nil
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret := configs.JWTRefreshSecret
	if refreshSecret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "JWT refresh secret belum diset")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// pastikan hash refresh masih terdaftar & belum direvoke
	h := computeRefreshHash(refreshCookie, refreshSecret)
	var rt authModel.RefreshToken
	if err := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", h).
		First(&rt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak terdaftar")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User nonaktif")
	}

	accessToken, err := signToken(buildAccessClaims(user), configs.JWTSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[SUCCESS] Refresh token untuk user %s", userID)
	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token": accessToken,
	})
}
