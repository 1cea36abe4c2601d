package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"songdeck/internal/models"
)

// Helper to create a disposable in-memory DB with the key table migrated
func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.AdminKey{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func protectedRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", RequireAdminKey(db), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "through the gate"})
	})
	return r
}

func hit(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdminKeyRejections(t *testing.T) {
	db := setupAuthDB(t)
	r := protectedRouter(db)

	inactive := models.NewAdminKey(7, "revoked")
	inactive.IsActive = false
	db.Create(&inactive)

	expired := models.NewAdminKey(7, "stale")
	expired.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	db.Create(&expired)

	tests := []struct {
		name   string
		header string
	}{
		{"No Header", ""},
		{"No Bearer Prefix", "Token abcdef"},
		{"Bare Token", "abcdef0123456789"},
		{"Unknown Token", "Bearer " + models.NewAdminKey(7, "").KeyValue},
		{"Inactive Token", "Bearer " + inactive.KeyValue},
		{"Expired Token", "Bearer " + expired.KeyValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := hit(r, tt.header)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestRequireAdminKeyPassesAndRecordsUse(t *testing.T) {
	db := setupAuthDB(t)
	r := protectedRouter(db)

	key := models.NewAdminKey(7, "live")
	db.Create(&key)

	w := hit(r, "Bearer "+key.KeyValue)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	// The gate updates last_used as a side effect of passage
	var stored models.AdminKey
	if err := db.Where("key_value = ?", key.KeyValue).First(&stored).Error; err != nil {
		t.Fatalf("failed to reload key: %v", err)
	}
	if stored.LastUsed == nil {
		t.Error("last_used not recorded after successful gate passage")
	}
}

func TestRequireAdminKeyInactiveBeatsExpired(t *testing.T) {
	db := setupAuthDB(t)
	r := protectedRouter(db)

	key := models.NewAdminKey(7, "dead twice over")
	key.IsActive = false
	key.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	db.Create(&key)

	w := hit(r, "Bearer "+key.KeyValue)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, models.KeyInactive) {
		t.Errorf("body = %s, want the inactive reason", body)
	}
}
