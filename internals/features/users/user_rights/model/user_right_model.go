package model

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PagePermission: satu baris matrix CRUD per halaman.
type PagePermission struct {
	Page   string `json:"page"`
	View   bool   `json:"view"`
	Add    bool   `json:"add"`
	Edit   bool   `json:"edit"`
	Delete bool   `json:"delete"`
}

// UserRightModel: matrix permission per user, satu row per user.
// Tidak ada row = tidak ada hak sama sekali (fail-closed), kecuali superadmin.
type UserRightModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Permissions datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"permissions"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserRightModel) TableName() string {
	return "user_rights"
}

// PagePermissions decode kolom jsonb ke slice matrix.
func (ur *UserRightModel) PagePermissions() ([]PagePermission, error) {
	if len(ur.Permissions) == 0 {
		return nil, nil
	}
	var perms []PagePermission
	if err := sonic.Unmarshal(ur.Permissions, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

// SetPagePermissions encode slice matrix ke kolom jsonb.
func (ur *UserRightModel) SetPagePermissions(perms []PagePermission) error {
	raw, err := sonic.Marshal(perms)
	if err != nil {
		return err
	}
	ur.Permissions = datatypes.JSON(raw)
	return nil
}
