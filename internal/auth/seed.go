package auth

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/royalhouse/fellowship-backend/config"
)

// SeedAdminUser makes sure the configured admin account exists so the
// dashboard is reachable on a fresh database.
func SeedAdminUser(db *gorm.DB, cfg *config.Config) error {
	email := cfg.AdminEmail
	if email == "" {
		email = "admin@royalhouse.local"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "ChangeMe123!"
		log.Println("⚠️ ADMIN_PASSWORD not set, seeding admin with the default password")
	}
	name := cfg.AdminName
	if name == "" {
		name = "Fellowship Admin"
	}

	var existing User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		FullName:     name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded admin account: %s", email)
	return nil
}
