package constants

import "fmt"

// Daftar role yang dikenal sistem
const (
	RoleSuperAdmin     = "superadmin"
	RoleBranchAdmin    = "branchadmin"
	RoleBranchDirector = "branchdirector"
	RoleManager        = "manager"
	RoleTeacher        = "teacher"
	RoleFaculty        = "faculty"
	RoleReceptionist   = "receptionist"
	RoleMarketing      = "marketing"
	RoleStudent        = "student"
	RoleOther          = "other"
)

// Template pesan error role
const (
	ErrOnlySuperAdminCanAccess = "❌ Hanya superadmin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess      = "❌ Hanya staff yang boleh mengakses fitur %s."
)

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleBranchAdmin,
		RoleBranchDirector,
		RoleManager,
		RoleTeacher,
		RoleFaculty,
		RoleReceptionist,
		RoleMarketing,
		RoleStudent,
		RoleOther,
	}

	// Role yang boleh masuk panel admin (selain student)
	StaffRoles = []string{
		RoleSuperAdmin,
		RoleBranchAdmin,
		RoleBranchDirector,
		RoleManager,
		RoleTeacher,
		RoleFaculty,
		RoleReceptionist,
		RoleMarketing,
		RoleOther,
	}

	// Role privileged: bebas dari pengecekan matrix permission
	// dan boleh memilih branch sendiri (mis. pada pencatatan visitor).
	PrivilegedRoles = []string{
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)

func IsPrivilegedRole(role string) bool {
	for _, r := range PrivilegedRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
