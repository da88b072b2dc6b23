package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"lembagaku_backend/internals/configs"
	"lembagaku_backend/internals/constants"
	authHelper "lembagaku_backend/internals/features/users/auth/helper"
	branchModel "lembagaku_backend/internals/features/lembaga/branches/model"
	userModel "lembagaku_backend/internals/features/users/user/model"
)

// Run menjalankan seed bootstrap kalau SEED=true.
// Idempotent: record yang sudah ada tidak dibuat ulang, jadi aman dijalankan
// di setiap start.
func Run(db *gorm.DB) {
	if configs.GetEnv("SEED", "false") != "true" {
		return
	}

	log.Println("[INFO] Menjalankan seeds bootstrap...")
	seedHeadOffice(db)
	seedSuperAdmin(db)
	log.Println("[SUCCESS] Seeds selesai")
}

func seedHeadOffice(db *gorm.DB) {
	var existing branchModel.BranchModel
	err := db.First(&existing, "short_code = ?", "HO").Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Seed branch gagal cek:", err)
		return
	}

	branch := branchModel.BranchModel{
		Name:      "Head Office",
		ShortCode: "HO",
		IsActive:  true,
	}
	if err := db.Create(&branch).Error; err != nil {
		log.Println("[ERROR] Seed branch gagal:", err)
		return
	}
	log.Println("[SUCCESS] Branch Head Office dibuat")
}

func seedSuperAdmin(db *gorm.DB) {
	email := configs.GetEnv("SEED_ADMIN_EMAIL", "admin@lembagaku.local")

	var existing userModel.UserModel
	err := db.First(&existing, "email = ?", email).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Seed superadmin gagal cek:", err)
		return
	}

	// password default HARUS diganti setelah login pertama
	plain := configs.GetEnv("SEED_ADMIN_PASSWORD", "changeme123")
	hash, err := authHelper.HashPassword(plain)
	if err != nil {
		log.Println("[ERROR] Seed superadmin gagal hash password:", err)
		return
	}

	admin := userModel.UserModel{
		UserName: "Super Admin",
		Email:    email,
		Password: hash,
		Role:     constants.RoleSuperAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("[ERROR] Seed superadmin gagal:", err)
		return
	}
	log.Printf("[SUCCESS] Superadmin %s dibuat", email)
}
