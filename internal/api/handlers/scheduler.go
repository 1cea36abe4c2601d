package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"songdeck/internal/models"
)

// SchedulerHandler handles playback schedule requests
type SchedulerHandler struct {
	db *gorm.DB
}

// NewSchedulerHandler creates a new SchedulerHandler instance
func NewSchedulerHandler(db *gorm.DB) *SchedulerHandler {
	return &SchedulerHandler{db: db}
}

type scheduleInput struct {
	StartTime string   `json:"start_time" binding:"required"`
	DayOfWeek []string `json:"day_of_week" binding:"required"`
	PlayTime  string   `json:"play_time" binding:"required"`
}

// scheduleResponse expands the stored day string back into a list. There is
// deliberately no check that play_time is plausible, nor any link to songs.
type scheduleResponse struct {
	models.Schedule
	DayOfWeek []string `json:"day_of_week"`
}

func renderSchedule(s models.Schedule) scheduleResponse {
	return scheduleResponse{Schedule: s, DayOfWeek: s.Days()}
}

func (in *scheduleInput) validate() (string, error) {
	if err := models.ParseClock(in.StartTime); err != nil {
		return "", err
	}
	if err := models.ParseClock(in.PlayTime); err != nil {
		return "", err
	}
	return models.EncodeDays(in.DayOfWeek)
}

// CreateSchedule stores a new weekly playback slot
func (h *SchedulerHandler) CreateSchedule(c *gin.Context) {
	var input scheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days, err := input.validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule := models.Schedule{
		StartTime: input.StartTime,
		DayOfWeek: days,
		PlayTime:  input.PlayTime,
	}

	if err := h.db.Create(&schedule).Error; err != nil {
		slog.Error("Failed to create schedule", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	c.JSON(http.StatusCreated, renderSchedule(schedule))
}

// GetSchedules returns all schedule entries
func (h *SchedulerHandler) GetSchedules(c *gin.Context) {
	var schedules []models.Schedule
	if err := h.db.Find(&schedules).Error; err != nil {
		slog.Error("Failed to fetch schedules", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	out := make([]scheduleResponse, len(schedules))
	for i, s := range schedules {
		out[i] = renderSchedule(s)
	}

	c.JSON(http.StatusOK, out)
}

// GetSchedule returns a single schedule entry by id
func (h *SchedulerHandler) GetSchedule(c *gin.Context) {
	id := c.Param("id")

	var schedule models.Schedule
	if err := h.db.First(&schedule, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, renderSchedule(schedule))
}

// UpdateSchedule replaces a schedule entry wholesale
func (h *SchedulerHandler) UpdateSchedule(c *gin.Context) {
	id := c.Param("id")

	var input scheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days, err := input.validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var schedule models.Schedule
	if err := h.db.First(&schedule, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	schedule.StartTime = input.StartTime
	schedule.DayOfWeek = days
	schedule.PlayTime = input.PlayTime

	if err := h.db.Save(&schedule).Error; err != nil {
		slog.Error("Failed to update schedule", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		return
	}

	c.JSON(http.StatusOK, renderSchedule(schedule))
}

// DeleteSchedule removes a schedule entry
func (h *SchedulerHandler) DeleteSchedule(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	result := h.db.Delete(&models.Schedule{}, uint(id))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
