package dto

import (
	"github.com/google/uuid"

	"lembagaku_backend/internals/features/users/user_rights/model"
)

type UpsertUserRightRequest struct {
	UserID      uuid.UUID              `json:"user_id" validate:"required"`
	Permissions []model.PagePermission `json:"permissions" validate:"required,dive"`
}

type UserRightResponse struct {
	ID          uuid.UUID              `json:"id"`
	UserID      uuid.UUID              `json:"user_id"`
	Permissions []model.PagePermission `json:"permissions"`
}

func FromModel(ur *model.UserRightModel) (UserRightResponse, error) {
	perms, err := ur.PagePermissions()
	if err != nil {
		return UserRightResponse{}, err
	}
	if perms == nil {
		perms = []model.PagePermission{}
	}
	return UserRightResponse{
		ID:          ur.ID,
		UserID:      ur.UserID,
		Permissions: perms,
	}, nil
}
