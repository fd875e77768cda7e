package database

import (
	"github.com/Payphone-Digital/catalog/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultAdmin defines the default admin user credentials
type DefaultAdmin struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// GetDefaultAdmin returns the default admin user
func GetDefaultAdmin() DefaultAdmin {
	return DefaultAdmin{
		FirstName: "Admin",
		LastName:  "Catalog",
		Email:     "admin@catalog.local",
		Password:  "Admin@123", // Change this in production!
	}
}

// Seed creates initial data for the database
func Seed(db *gorm.DB) error {
	if err := SeedUsers(db); err != nil {
		return err
	}
	return SeedProducts(db)
}

// SeedUsers creates the default admin user if not exists
func SeedUsers(db *gorm.DB) error {
	admin := GetDefaultAdmin()

	// Check if admin user already exists
	var existingUser model.User
	result := db.Where("email = ?", admin.Email).First(&existingUser)

	if result.Error == nil {
		// User already exists, skip seeding
		return nil
	}

	if result.Error != gorm.ErrRecordNotFound {
		// Unexpected error
		return result.Error
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Create the admin user
	user := model.User{
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     admin.Email,
		Password:  string(hashedPassword),
	}

	return db.Create(&user).Error
}

// SeedProducts creates a small starter catalog in empty databases.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		// Catalog already has data, skip seeding
		return nil
	}

	products := []model.Product{
		{
			Name:       "Prepaid Voucher 50K",
			SKU:        "VCH-050",
			Category:   "voucher",
			Price:      50000,
			Stock:      250,
			Active:     true,
			Attributes: datatypes.JSON([]byte(`{"denomination": 50000, "currency": "IDR"}`)),
		},
		{
			Name:       "Prepaid Voucher 100K",
			SKU:        "VCH-100",
			Category:   "voucher",
			Price:      100000,
			Stock:      180,
			Active:     true,
			Attributes: datatypes.JSON([]byte(`{"denomination": 100000, "currency": "IDR"}`)),
		},
		{
			Name:     "SIM Starter Pack",
			SKU:      "SIM-001",
			Category: "hardware",
			Price:    25000,
			Stock:    40,
			Active:   true,
		},
	}

	return db.Create(&products).Error
}
