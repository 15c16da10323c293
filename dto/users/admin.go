package users

import (
	"strings"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub001/models"
)

type AdminUserCreateRequest struct {
	Username  string      `json:"username"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Role      models.Role `json:"role"`
	JabatanID uint        `json:"jabatan_id"`
}

type AdminUserUpdateRequest struct {
	Username  *string      `json:"username"`
	FirstName *string      `json:"first_name"`
	LastName  *string      `json:"last_name"`
	Email     *string      `json:"email"`
	Password  *string      `json:"password"`
	Role      *models.Role `json:"role"`
	JabatanID *uint        `json:"jabatan_id"`
}

type AdminUserResponse struct {
	ID          uint        `json:"id"`
	Username    string      `json:"username"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	JabatanID   uint        `json:"jabatan_id"`
	NamaJabatan string      `json:"nama_jabatan,omitempty"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

func (r *AdminUserCreateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errors["username"] = "username is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errors["email"] = "email is required"
	}
	if strings.TrimSpace(r.Password) == "" {
		errors["password"] = "password is required"
	} else if len(r.Password) < 8 {
		errors["password"] = "password must be at least 8 characters"
	}
	if !r.Role.IsValid() {
		errors["role"] = "role must be admin, tata_usaha, or pejabat"
	}
	if r.JabatanID == 0 {
		errors["jabatan_id"] = "jabatan_id is required"
	}

	return errors
}

func (r *AdminUserUpdateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Password != nil {
		pwd := strings.TrimSpace(*r.Password)
		if pwd != "" && len(pwd) < 8 {
			errors["password"] = "password must be at least 8 characters"
		}
	}
	if r.Role != nil && !r.Role.IsValid() {
		errors["role"] = "role must be admin, tata_usaha, or pejabat"
	}
	if r.JabatanID != nil && *r.JabatanID == 0 {
		errors["jabatan_id"] = "jabatan_id must reference a jabatan"
	}

	return errors
}

func NewAdminUserResponse(user models.User) AdminUserResponse {
	resp := AdminUserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		JabatanID: user.JabatanID,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
	if user.Jabatan != nil {
		resp.NamaJabatan = user.Jabatan.NamaJabatan
	}
	return resp
}
