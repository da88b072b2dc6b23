// internals/features/users/auth/service/auth_service.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"lembagaku_backend/internals/configs"
	authHelper "lembagaku_backend/internals/features/users/auth/helper"
	authModel "lembagaku_backend/internals/features/users/auth/model"
	userModel "lembagaku_backend/internals/features/users/user/model"
	helper "lembagaku_backend/internals/helpers"
)

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email dan password wajib diisi")
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		// jangan bocorkan apakah email terdaftar
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan, hubungi admin")
	}

	accessToken, err := IssueTokens(db, c, user)
	if err != nil {
		log.Println("[ERROR] Gagal issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	log.Printf("[SUCCESS] Login %s (%s)", user.Email, user.Role)
	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
			"branch_id": user.BranchID,
		},
	})
}

// ========================== LOGIN GOOGLE ==========================
// Akun harus sudah ada (dibuat admin / cascade employee); Google hanya
// membuktikan kepemilikan email.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google token tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google token tidak bisa dibaca")
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", strings.ToLower(claimSet.Email)).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun belum terdaftar, hubungi admin")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan, hubungi admin")
	}

	accessToken, err := IssueTokens(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	log.Printf("[SUCCESS] Login Google %s", user.Email)
	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

// ========================== LOGOUT ==========================
// Access token masuk blacklist sampai expired; refresh token direvoke.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// ambil exp dari token supaya blacklist tahu kapan boleh dibersihkan
	expiredAt := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}

	entry := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := db.Create(&entry).Error; err != nil {
		// token sudah pernah di-blacklist → tetap sukses
		log.Println("[WARN] Blacklist insert:", err)
	}

	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		h := computeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
		now := time.Now()
		db.Model(&authModel.RefreshToken{}).
			Where("token_hash = ? AND revoked_at IS NULL", h).
			Update("revoked_at", now)
	}

	c.ClearCookie("refresh_token")
	return helper.JsonOK(c, "Logout successful", nil)
}
