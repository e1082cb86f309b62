package models

import "time"

// Like represents a user's like on an image.
// The combination of UserID and ImageID must be unique; row existence is the
// only state, so likes are hard-deleted rather than soft-deleted.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_image" json:"user_id"`
	ImageID   uint      `gorm:"not null;uniqueIndex:idx_user_image" json:"image_id"`
	CreatedAt time.Time `json:"created_at"`
}
