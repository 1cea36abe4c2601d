package models

import "time"

// Song is a single entry in the station's song list. The video itself lives
// on YouTube; we only keep the video id and an optional play length.
type Song struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	YoutubeID string    `gorm:"size:200;not null" json:"youtube_id"`
	PlayTime  string    `gorm:"size:8" json:"play_time,omitempty"` // HH:MM:SS, optional
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"last_modified"`
}
