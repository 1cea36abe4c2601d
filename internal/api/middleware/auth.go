package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"songdeck/internal/models"
)

// RequireAdminKey gates a route behind a valid admin key presented as
// "Authorization: Bearer <token>". On success the key's last_used timestamp
// is updated before the wrapped handler runs; the standalone verify endpoint
// deliberately does not share this side effect.
func RequireAdminKey(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no authentication token provided"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		var key models.AdminKey
		if err := db.Where("key_value = ?", token).First(&key).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": models.KeyInvalid + " key"})
			return
		}

		now := time.Now().UTC()
		if status := key.Status(now); status != models.KeyValid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": status + " key"})
			return
		}

		db.Model(&key).Update("last_used", now)

		c.Set("admin_key_id", key.ID)
		c.Next()
	}
}
