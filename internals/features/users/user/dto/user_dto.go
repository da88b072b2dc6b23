package dto

import (
	"time"

	"github.com/google/uuid"

	"lembagaku_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8"`
	Role     string     `json:"role" validate:"required"`
	BranchID *uuid.UUID `json:"branch_id"`
}

// Password kosong = jangan ganti password lama.
type UpdateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Role     string     `json:"role" validate:"required"`
	BranchID *uuid.UUID `json:"branch_id"`
	IsActive *bool      `json:"is_active"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string     `json:"role"`
	BranchID  *uuid.UUID `json:"branch_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserModel(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		BranchID:  u.BranchID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func FromUserModels(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromUserModel(&users[i]))
	}
	return out
}
