package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Key validation outcomes, in the order they are checked.
const (
	KeyValid    = "valid"
	KeyInvalid  = "invalid"  // unknown key
	KeyInactive = "inactive" // deactivated via the API
	KeyExpired  = "expired"
)

// Effective lifetime for keys generated with validity_days = 0.
const UnlimitedValidityYears = 100

// AdminKey is a bearer token granting access to mutating endpoints.
// Keys are never deleted; deactivation is one-way.
type AdminKey struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	KeyValue    string     `gorm:"uniqueIndex;size:64;not null" json:"key"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   time.Time  `gorm:"not null" json:"expires_at"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastUsed    *time.Time `json:"last_used"`
	Description string     `gorm:"size:200" json:"description"`
}

// NewAdminKey mints a key with a fresh 64-hex-char token. A validityDays of
// zero maps to a far-future expiry rather than an instantly dead key.
func NewAdminKey(validityDays int, description string) AdminKey {
	now := time.Now().UTC()
	expires := now.AddDate(0, 0, validityDays)
	if validityDays == 0 {
		expires = now.AddDate(UnlimitedValidityYears, 0, 0)
	}

	return AdminKey{
		KeyValue:    generateToken(),
		ExpiresAt:   expires,
		IsActive:    true,
		Description: description,
	}
}

// Status reports why the key is (or is not) usable at the given instant.
// Check order is fixed: inactive before expired.
func (k *AdminKey) Status(now time.Time) string {
	if !k.IsActive {
		return KeyInactive
	}
	if !k.ExpiresAt.After(now) {
		return KeyExpired
	}
	return KeyValid
}

func generateToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the OS entropy source is broken;
		// nothing sensible to do but stop.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
