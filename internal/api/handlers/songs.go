package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"songdeck/internal/models"
)

// SongHandler handles song-related requests independently of the main server
type SongHandler struct {
	db *gorm.DB
}

// NewSongHandler creates a new SongHandler instance
func NewSongHandler(db *gorm.DB) *SongHandler {
	return &SongHandler{db: db}
}

type songInput struct {
	Title     string `json:"title" binding:"required"`
	YoutubeID string `json:"youtube_id" binding:"required"`
	PlayTime  string `json:"play_time"`
}

// GetSongs returns every song in the list. With "?random" present it behaves
// like GetRandomSongs so the play view can reuse the collection route.
func (h *SongHandler) GetSongs(c *gin.Context) {
	if _, random := c.GetQuery("random"); random {
		h.GetRandomSongs(c)
		return
	}

	var songs []models.Song
	if err := h.db.Find(&songs).Error; err != nil {
		slog.Error("Failed to fetch songs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, songs)
}

// GetSong returns a single song by id
func (h *SongHandler) GetSong(c *gin.Context) {
	id := c.Param("id")

	var song models.Song
	if err := h.db.First(&song, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Song not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, song)
}

// GetRandomSongs returns up to num songs in random order, without
// replacement. The draw happens in the database, so it is not reproducible.
func (h *SongHandler) GetRandomSongs(c *gin.Context) {
	num, err := strconv.Atoi(c.DefaultQuery("num", "10"))
	if err != nil || num < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid num parameter"})
		return
	}

	songs := []models.Song{}
	if num > 0 {
		if err := h.db.Order("RANDOM()").Limit(num).Find(&songs).Error; err != nil {
			slog.Error("Failed to fetch random songs", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	c.JSON(http.StatusOK, songs)
}

// CreateSong adds a new song to the list
func (h *SongHandler) CreateSong(c *gin.Context) {
	var input songInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.PlayTime != "" {
		if err := models.ParseClock(input.PlayTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	song := models.Song{
		Title:     input.Title,
		YoutubeID: input.YoutubeID,
		PlayTime:  input.PlayTime,
	}

	if err := h.db.Create(&song).Error; err != nil {
		slog.Error("Failed to create song", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create song"})
		return
	}

	c.JSON(http.StatusCreated, song)
}

// UpdateSong replaces a song's title, video id and play time wholesale
func (h *SongHandler) UpdateSong(c *gin.Context) {
	id := c.Param("id")

	var input songInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.PlayTime != "" {
		if err := models.ParseClock(input.PlayTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var song models.Song
	if err := h.db.First(&song, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Song not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	song.Title = input.Title
	song.YoutubeID = input.YoutubeID
	song.PlayTime = input.PlayTime

	if err := h.db.Save(&song).Error; err != nil {
		slog.Error("Failed to update song", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update song"})
		return
	}

	c.JSON(http.StatusOK, song)
}

// DeleteSong removes a song from the list
func (h *SongHandler) DeleteSong(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	result := h.db.Delete(&models.Song{}, uint(id))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete song"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Song not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
