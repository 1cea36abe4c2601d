package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"songdeck/internal/models"
)

// AdminKeyHandler handles the admin key lifecycle
type AdminKeyHandler struct {
	db                  *gorm.DB
	defaultValidityDays int
}

// NewAdminKeyHandler creates a new AdminKeyHandler instance
func NewAdminKeyHandler(db *gorm.DB, defaultValidityDays int) *AdminKeyHandler {
	return &AdminKeyHandler{db: db, defaultValidityDays: defaultValidityDays}
}

// GenerateKey mints a fresh admin key. Whether this route sits behind the
// auth gate is decided at routing time by the auth.allow_key_bootstrap flag.
func (h *AdminKeyHandler) GenerateKey(c *gin.Context) {
	var input struct {
		ValidityDays *int   `json:"validity_days"`
		Description  string `json:"description"`
	}

	// An empty body is fine; every field has a default.
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validityDays := h.defaultValidityDays
	if input.ValidityDays != nil {
		if *input.ValidityDays < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validity_days must not be negative"})
			return
		}
		validityDays = *input.ValidityDays
	}

	key := models.NewAdminKey(validityDays, input.Description)
	if err := h.db.Create(&key).Error; err != nil {
		slog.Error("Failed to create admin key", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create key"})
		return
	}

	c.JSON(http.StatusCreated, key)
}

// VerifyKey reports whether a key would pass the auth gate right now.
// Unlike the gate itself, verification never touches last_used.
func (h *AdminKeyHandler) VerifyKey(c *gin.Context) {
	var input struct {
		Key string `json:"key" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var key models.AdminKey
	if err := h.db.Where("key_value = ?", input.Key).First(&key).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "message": models.KeyInvalid + " key"})
		return
	}

	status := key.Status(time.Now().UTC())
	c.JSON(http.StatusOK, gin.H{
		"valid":   status == models.KeyValid,
		"message": status + " key",
	})
}

// CheckKey is the read-only self-check used by the admin console. The key
// arrives as a query parameter; nothing is mutated.
func (h *AdminKeyHandler) CheckKey(c *gin.Context) {
	token := c.Query("key")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no key provided"})
		return
	}

	var key models.AdminKey
	if err := h.db.Where("key_value = ?", token).First(&key).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": models.KeyInvalid + " key"})
		return
	}

	if status := key.Status(time.Now().UTC()); status != models.KeyValid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": status + " key"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "valid key",
		"description": key.Description,
		"expires_at":  key.ExpiresAt,
	})
}

// ListKeys returns every key with full metadata. Token values are included,
// which is why this route sits behind the auth gate.
func (h *AdminKeyHandler) ListKeys(c *gin.Context) {
	var keys []models.AdminKey
	if err := h.db.Find(&keys).Error; err != nil {
		slog.Error("Failed to fetch admin keys", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, keys)
}

// DeactivateKey sets is_active=false. Keys are never deleted, and
// deactivation cannot be undone through the API; a second call on an
// already-inactive key still succeeds.
func (h *AdminKeyHandler) DeactivateKey(c *gin.Context) {
	var input struct {
		Key string `json:"key" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var key models.AdminKey
	if err := h.db.Where("key_value = ?", input.Key).First(&key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Key not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := h.db.Model(&key).Update("is_active", false).Error; err != nil {
		slog.Error("Failed to deactivate admin key", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate key"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Key deactivated"})
}
