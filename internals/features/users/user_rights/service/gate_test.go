package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/users/user_rights/model"
)

func rightsWith(t *testing.T, perms []model.PagePermission) *model.UserRightModel {
	t.Helper()
	ur := &model.UserRightModel{UserID: uuid.New()}
	require.NoError(t, ur.SetPagePermissions(perms))
	return ur
}

func TestAuthorizeSuperAdminBypass(t *testing.T) {
	// superadmin lolos walau tidak punya row sama sekali
	d := Authorize(constants.RoleSuperAdmin, nil, constants.PageStudent, ActionDelete)
	assert.True(t, d.Allowed)
}

func TestAuthorizeNoRightsRowFailClosed(t *testing.T) {
	for _, role := range []string{
		constants.RoleBranchAdmin,
		constants.RoleTeacher,
		constants.RoleReceptionist,
	} {
		d := Authorize(role, nil, constants.PageStudent, ActionView)
		assert.False(t, d.Allowed, "role %s harus ditolak tanpa row", role)
		assert.Equal(t, "No permissions assigned", d.Reason)
	}
}

func TestAuthorizeCellGranted(t *testing.T) {
	ur := rightsWith(t, []model.PagePermission{
		{Page: constants.PageStudent, View: true, Add: true},
	})

	assert.True(t, Authorize(constants.RoleBranchAdmin, ur, constants.PageStudent, ActionView).Allowed)
	assert.True(t, Authorize(constants.RoleBranchAdmin, ur, constants.PageStudent, ActionAdd).Allowed)
}

func TestAuthorizeCellDenied(t *testing.T) {
	ur := rightsWith(t, []model.PagePermission{
		{Page: constants.PageStudent, View: true},
	})

	d := Authorize(constants.RoleBranchAdmin, ur, constants.PageStudent, ActionDelete)
	assert.False(t, d.Allowed)
	assert.Equal(t, "Access denied to delete Student", d.Reason)
}

func TestAuthorizePageMissingFromMatrix(t *testing.T) {
	ur := rightsWith(t, []model.PagePermission{
		{Page: constants.PageStudent, View: true, Add: true, Edit: true, Delete: true},
	})

	d := Authorize(constants.RoleBranchAdmin, ur, constants.PageEmployee, ActionView)
	assert.False(t, d.Allowed)
	assert.Equal(t, "Access denied to view Employee", d.Reason)
}

func TestAuthorizeUnknownPageOrAction(t *testing.T) {
	ur := rightsWith(t, []model.PagePermission{
		{Page: constants.PageStudent, View: true},
	})

	assert.False(t, Authorize(constants.RoleTeacher, ur, "Nonsense", ActionView).Allowed)
	assert.False(t, Authorize(constants.RoleTeacher, ur, constants.PageStudent, Action("drop")).Allowed)
}

func TestAuthorizeCorruptMatrixFailClosed(t *testing.T) {
	ur := &model.UserRightModel{UserID: uuid.New(), Permissions: []byte(`{not json`)}
	d := Authorize(constants.RoleTeacher, ur, constants.PageStudent, ActionView)
	assert.False(t, d.Allowed)
}
