package dto

import (
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	TokenType    string      `json:"token_type,omitempty"`
	ExpiresAt    time.Time   `json:"expires_at"`
	User         UserSummary `json:"user"`
}

type UserSummary struct {
	ID            uint        `json:"id"`
	Username      string      `json:"username"`
	FirstName     string      `json:"first_name,omitempty"`
	LastName      string      `json:"last_name,omitempty"`
	Email         string      `json:"email"`
	Role          models.Role `json:"role"`
	NamaJabatan   string      `json:"nama_jabatan,omitempty"`
	LevelHierarki int         `json:"level_hierarki,omitempty"`
	KodeUK        string      `json:"kode_uk,omitempty"`
}

func NewUserSummary(user models.User) UserSummary {
	s := UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	}
	if user.Jabatan != nil {
		s.NamaJabatan = user.Jabatan.NamaJabatan
		s.LevelHierarki = user.Jabatan.LevelHierarki
		s.KodeUK = user.Jabatan.KodeUK
	}
	return s
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type PasswordResetRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type PasswordResetSubmission struct {
	Token           string `json:"token" form:"token" binding:"required"`
	Password        string `json:"password" form:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required,eqfield=Password"`
}
