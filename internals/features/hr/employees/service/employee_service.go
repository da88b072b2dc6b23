package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/hr/employees/dto"
	"lembagaku_backend/internals/features/hr/employees/model"
	authHelper "lembagaku_backend/internals/features/users/auth/helper"
	userModel "lembagaku_backend/internals/features/users/user/model"
	helper "lembagaku_backend/internals/helpers"
	"lembagaku_backend/internals/helpers/sequence"
)

// EmployeeService memegang cascade Employee ⇄ User.
// Create dengan login berjalan sebagai saga dua langkah: buat user dulu,
// lalu employee; kalau employee gagal, user yang baru dibuat dihapus lagi
// (compensating delete). Kegagalan kompensasi dicatat keras di log untuk
// rekonsiliasi manual — jangan sampai ada akun yatim yang diam-diam hidup.
type EmployeeService struct {
	DB *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{DB: db}
}

// CreateWithLogin membuat karyawan, plus akun login kalau password diisi.
// Urutan saga:
//  1. cek email login belum terpakai → Conflict("email") TANPA membuat apa pun
//  2. buat user (password di-hash)
//  3. buat employee yang menunjuk user tsb
//  4. employee gagal → hapus user tadi (kompensasi)
//
// Sukses dengan login memicu SMS berisi password plaintext + reg_no ke nomor
// karyawan (fire-and-forget).
func (s *EmployeeService) CreateWithLogin(req dto.CreateEmployeeRequest) (*model.EmployeeModel, error) {
	if !constants.IsValidRole(req.Role) {
		return nil, helper.NewValidation("role", "role tidak dikenal")
	}

	regNo, err := sequence.NextEmployeeCode(s.DB, time.Now())
	if err != nil {
		return nil, err
	}

	emp := model.EmployeeModel{
		RegNo:         regNo,
		Name:          req.Name,
		Email:         req.Email,
		Mobile:        req.Mobile,
		Gender:        req.Gender,
		Role:          req.Role,
		DateOfJoining: req.DateOfJoining,
		IsActive:      true,
	}

	// Tanpa login: satu insert saja.
	if req.LoginPassword == "" {
		if err := s.DB.Create(&emp).Error; err != nil {
			return nil, helper.FromPgError(err)
		}
		log.Printf("[SUCCESS] Employee %s (%s) dibuat tanpa akun login", emp.Name, emp.RegNo)
		return &emp, nil
	}

	// Langkah 1: email login harus belum ada — gagal di sini berarti
	// TIDAK ada employee yang tercipta.
	var count int64
	if err := s.DB.Model(&userModel.UserModel{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, helper.NewConflict("email")
	}

	hash, err := authHelper.HashPassword(req.LoginPassword)
	if err != nil {
		return nil, err
	}

	// Langkah 2: buat akun login.
	login := userModel.UserModel{
		UserName: req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     req.Role,
		IsActive: true,
	}
	if err := s.DB.Create(&login).Error; err != nil {
		return nil, helper.FromPgError(err)
	}

	// Langkah 3: buat employee yang menunjuk akun tadi.
	emp.LinkedUserID = &login.ID
	if err := s.DB.Create(&emp).Error; err != nil {
		// Langkah 4: kompensasi — akun tanpa employee tidak boleh tertinggal.
		if compErr := s.DB.Delete(&userModel.UserModel{}, "id = ?", login.ID).Error; compErr != nil {
			log.Printf("[ERROR] KOMPENSASI GAGAL: user %s (%s) yatim setelah employee gagal dibuat: %v",
				login.ID, login.Email, compErr)
		} else {
			log.Printf("[WARN] Employee gagal dibuat, user %s dihapus kembali", login.Email)
		}
		return nil, helper.FromPgError(err)
	}

	log.Printf("[SUCCESS] Employee %s (%s) dibuat dengan akun login", emp.Name, emp.RegNo)

	// Parity dengan alur lama: kredensial dikirim plaintext lewat SMS.
	// Diketahui sebagai celah keamanan pada deployment nyata.
	helper.SendSMSAsync(emp.Mobile, fmt.Sprintf(
		"Selamat bergabung %s. No registrasi: %s. Login: %s / %s",
		emp.Name, emp.RegNo, emp.Email, req.LoginPassword))

	return &emp, nil
}

// Update mengubah data karyawan dan menjaga akun login tetap sinkron
// (nama, role, status aktif, dan password bila diisi — kosong berarti
// hash lama dipertahankan).
func (s *EmployeeService) Update(id uuid.UUID, req dto.UpdateEmployeeRequest) (*model.EmployeeModel, error) {
	if !constants.IsValidRole(req.Role) {
		return nil, helper.NewValidation("role", "role tidak dikenal")
	}

	var emp model.EmployeeModel
	q := helper.WithDeleted(s.DB, "is_deleted", false)
	if err := q.First(&emp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}

	emp.Name = req.Name
	emp.Mobile = req.Mobile
	emp.Gender = req.Gender
	emp.Role = req.Role
	emp.DateOfJoining = req.DateOfJoining
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&emp).Error; err != nil {
			return err
		}
		if emp.LinkedUserID == nil {
			return nil
		}

		updates := map[string]interface{}{
			"user_name": emp.Name,
			"role":      emp.Role,
			"is_active": emp.IsActive,
		}
		if req.LoginPassword != "" {
			hash, err := authHelper.HashPassword(req.LoginPassword)
			if err != nil {
				return err
			}
			updates["password"] = hash
		}
		return tx.Model(&userModel.UserModel{}).
			Where("id = ?", *emp.LinkedUserID).
			Updates(updates).Error
	})
	if err != nil {
		return nil, helper.FromPgError(err)
	}
	return &emp, nil
}

// SoftDelete menandai karyawan terhapus dan menonaktifkan akun login
// pasangannya dalam satu transaksi. Idempotent: karyawan yang sudah
// terhapus adalah no-op sukses.
func (s *EmployeeService) SoftDelete(id uuid.UUID) error {
	var emp model.EmployeeModel
	if err := s.DB.First(&emp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound
		}
		return err
	}
	if emp.IsDeleted {
		return nil
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&emp).
			Updates(map[string]interface{}{"is_deleted": true, "is_active": false}).Error; err != nil {
			return err
		}
		if emp.LinkedUserID == nil {
			return nil
		}
		return tx.Model(&userModel.UserModel{}).
			Where("id = ?", *emp.LinkedUserID).
			Update("is_active", false).Error
	})
	if err != nil {
		log.Printf("[ERROR] Gagal hapus employee %s (linked user ikut?): %v", emp.RegNo, err)
		return err
	}

	log.Printf("[SUCCESS] Employee %s dihapus (soft) beserta penonaktifan akun login", emp.RegNo)
	return nil
}

// Restore mengembalikan karyawan terhapus dan mengaktifkan lagi akun
// loginnya.
func (s *EmployeeService) Restore(id uuid.UUID) (*model.EmployeeModel, error) {
	var emp model.EmployeeModel
	if err := s.DB.First(&emp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	if !emp.IsDeleted {
		return &emp, nil
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&emp).
			Updates(map[string]interface{}{"is_deleted": false, "is_active": true}).Error; err != nil {
			return err
		}
		if emp.LinkedUserID == nil {
			return nil
		}
		return tx.Model(&userModel.UserModel{}).
			Where("id = ?", *emp.LinkedUserID).
			Update("is_active", true).Error
	})
	if err != nil {
		return nil, err
	}
	emp.IsDeleted = false
	emp.IsActive = true
	return &emp, nil
}
