package handlers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/mail"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/config"
	"github.com/Ahadan1/SIPAS-Public-sub001/dto"
	"github.com/Ahadan1/SIPAS-Public-sub001/models"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils/mailer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Login - Autentikasi email+password, balas access token + refresh token.
func Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return utils.BadRequest(c, "Email dan password wajib diisi", nil)
	}

	var user models.User
	err := config.DB.Preload("Jabatan").Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Email atau password salah")
		}
		return utils.InternalServerError(c, "Gagal memproses login")
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return utils.Unauthorized(c, "Email atau password salah")
	}

	accessToken, claims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat token")
	}

	refreshToken, refreshClaims, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat token")
	}

	stored := models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: refreshClaims.ExpiresAt.Time,
	}
	if err := config.DB.Create(&stored).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan sesi")
	}

	return utils.OK(c, "Login berhasil", dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    claims.ExpiresAt.Time,
		User:         dto.NewUserSummary(user),
	})
}

// RefreshAccessToken - Tukar refresh token yang masih tercatat dengan
// access token baru. Token lama dirotasi.
func RefreshAccessToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		return utils.BadRequest(c, "refresh_token wajib diisi", nil)
	}

	claims, err := utils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return utils.Unauthorized(c, "Refresh token tidak valid")
	}

	var stored models.RefreshToken
	err = config.DB.Where("token = ? AND expires_at > ?", req.RefreshToken, time.Now()).First(&stored).Error
	if err != nil {
		return utils.Unauthorized(c, "Refresh token tidak dikenal atau sudah kedaluwarsa")
	}

	var user models.User
	if err := config.DB.Preload("Jabatan").First(&user, claims.UserID).Error; err != nil {
		return utils.Unauthorized(c, "User tidak ditemukan")
	}

	accessToken, accessClaims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat token")
	}

	newRefresh, newClaims, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat token")
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&stored).Error; err != nil {
			return err
		}
		return tx.Create(&models.RefreshToken{
			Token:     newRefresh,
			UserID:    user.ID,
			ExpiresAt: newClaims.ExpiresAt.Time,
		}).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Gagal merotasi sesi")
	}

	return utils.OK(c, "Token diperbarui", dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		TokenType:    "Bearer",
		ExpiresAt:    accessClaims.ExpiresAt.Time,
	})
}

// Logout - Cabut refresh token; access token dibiarkan kedaluwarsa sendiri.
func Logout(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		return utils.BadRequest(c, "refresh_token wajib diisi", nil)
	}

	config.DB.Unscoped().Where("token = ?", req.RefreshToken).Delete(&models.RefreshToken{})
	return utils.OK(c, "Logout berhasil", nil)
}

// RequestPasswordReset - Kirim link reset ke email terdaftar. Respons
// selalu sama supaya tidak membocorkan email mana yang terdaftar.
func RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return utils.BadRequest(c, "Invalid JSON body", nil)
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return utils.BadRequest(c, "Email wajib diisi", nil)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return utils.BadRequest(c, "Format email tidak valid", nil)
	}

	const neutralMsg = "Jika email terdaftar, link reset telah dikirim"

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.OK(c, neutralMsg, nil)
		}
		return utils.InternalServerError(c, "Gagal memproses permintaan")
	}

	rawToken, tokenHash, err := generateResetToken()
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat token")
	}

	resetToken := models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(models.PasswordResetTokenTTL),
	}
	if err := config.DB.Create(&resetToken).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan token")
	}

	resetLink := buildResetLink(rawToken)
	mailClient := mailer.NewClient(config.LoadEmailConfig())
	if err := mailClient.SendPasswordResetEmail(user.Email, resetLink); err != nil {
		return utils.InternalServerError(c, "Gagal mengirim email")
	}

	return utils.OK(c, neutralMsg, nil)
}

// ResetPassword - Tukar token reset dengan password baru. Token sekali
// pakai dan kedaluwarsa satu jam.
func ResetPassword(c *fiber.Ctx) error {
	var req dto.PasswordResetSubmission
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body", err.Error())
	}

	if strings.TrimSpace(req.Token) == "" {
		return utils.BadRequest(c, "Token wajib diisi", nil)
	}
	if len(req.Password) < 8 {
		return utils.BadRequest(c, "Password minimal 8 karakter", nil)
	}
	if req.Password != req.ConfirmPassword {
		return utils.BadRequest(c, "Konfirmasi password tidak cocok", nil)
	}

	sum := sha256.Sum256([]byte(req.Token))
	tokenHash := hex.EncodeToString(sum[:])

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var token models.PasswordResetToken
		if err := tx.Where("token_hash = ?", tokenHash).First(&token).Error; err != nil {
			return err
		}

		if err := token.Consume(tx, time.Now()); err != nil {
			return err
		}

		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", token.UserID).
			Update("password_hash", hashed).Error; err != nil {
			return err
		}

		// Semua sesi lama dicabut setelah ganti password.
		return tx.Unscoped().Where("user_id = ?", token.UserID).Delete(&models.RefreshToken{}).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return utils.BadRequest(c, "Token tidak valid", nil)
		case errors.Is(err, models.ErrPasswordResetTokenExpired):
			return utils.BadRequest(c, "Token sudah kedaluwarsa", nil)
		case errors.Is(err, models.ErrPasswordResetTokenUsed):
			return utils.BadRequest(c, "Token sudah dipakai", nil)
		default:
			return utils.InternalServerError(c, "Gagal mereset password")
		}
	}

	return utils.OK(c, "Password berhasil direset", nil)
}

func generateResetToken() (string, string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", err
	}
	raw := hex.EncodeToString(tokenBytes)
	sum := sha256.Sum256([]byte(raw))
	return raw, hex.EncodeToString(sum[:]), nil
}

func buildResetLink(token string) string {
	base := os.Getenv("PASSWORD_RESET_URL")
	if base == "" {
		base = "/auth/reset-password"
	}

	escapedToken := url.QueryEscape(token)
	if strings.Contains(base, "?") {
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			return base + "token=" + escapedToken
		}
		return base + "&token=" + escapedToken
	}
	return base + "?token=" + escapedToken
}
