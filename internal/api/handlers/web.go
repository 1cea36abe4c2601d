package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"songdeck/internal/models"
)

// WebHandler renders the small HTML surface on top of the song store.
// Stateless: no sessions, no cookies.
type WebHandler struct {
	db *gorm.DB
}

// NewWebHandler creates a new WebHandler instance
func NewWebHandler(db *gorm.DB) *WebHandler {
	return &WebHandler{db: db}
}

// Index lists all songs with the add form
func (h *WebHandler) Index(c *gin.Context) {
	var songs []models.Song
	if err := h.db.Find(&songs).Error; err != nil {
		c.String(http.StatusInternalServerError, "database error")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{"songs": songs})
}

// AddSong handles the add-song form post and redirects back to the listing.
// Form errors share the API's validation rules but render as plain 400s.
func (h *WebHandler) AddSong(c *gin.Context) {
	title := c.PostForm("title")
	youtubeID := c.PostForm("youtube_id")
	if title == "" || youtubeID == "" {
		c.String(http.StatusBadRequest, "title and youtube_id are required")
		return
	}

	song := models.Song{Title: title, YoutubeID: youtubeID}
	if err := h.db.Create(&song).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to add song")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Play renders the shuffle view with up to num random songs
func (h *WebHandler) Play(c *gin.Context) {
	num, err := strconv.Atoi(c.DefaultQuery("num", "10"))
	if err != nil || num < 0 {
		c.String(http.StatusBadRequest, "invalid num parameter")
		return
	}

	songs := []models.Song{}
	if num > 0 {
		if err := h.db.Order("RANDOM()").Limit(num).Find(&songs).Error; err != nil {
			c.String(http.StatusInternalServerError, "database error")
			return
		}
	}

	c.HTML(http.StatusOK, "play.html", gin.H{"songs": songs})
}
