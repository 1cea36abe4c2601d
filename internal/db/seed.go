package database

import (
	"log"

	"gorm.io/gorm"

	"songdeck/internal/models"
)

// SeedAdminKey mints a first admin key when the table is empty, so the
// server stays operable with key bootstrap disabled. The token is printed
// once to the server log and never again.
func SeedAdminKey(db *gorm.DB) {
	var count int64
	db.Model(&models.AdminKey{}).Count(&count)
	if count > 0 {
		return
	}

	key := models.NewAdminKey(0, "bootstrap key (seeded at first start)")
	if err := db.Create(&key).Error; err != nil {
		log.Printf("Warning: failed to seed bootstrap admin key: %v", err)
		return
	}

	log.Printf("Seeded bootstrap admin key: %s (expires %s)",
		key.KeyValue, key.ExpiresAt.Format("2006-01-02"))
}
