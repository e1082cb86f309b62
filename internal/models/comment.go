package models

import (
	"time"

	"gorm.io/gorm"
)

// CommentStatus is the moderation state of a comment.
type CommentStatus string

const (
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusSpam     CommentStatus = "spam"
)

// ValidCommentStatus reports whether s is one of the recognized statuses.
func ValidCommentStatus(s CommentStatus) bool {
	switch s {
	case CommentStatusApproved, CommentStatusPending, CommentStatusSpam:
		return true
	}
	return false
}

// Comment represents a comment on an image, optionally threaded via ParentID.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	ImageID   uint           `gorm:"not null;index" json:"image_id"`
	ParentID  *uint          `gorm:"index" json:"parent_id,omitempty"`
	Status    CommentStatus  `gorm:"size:16;not null;default:approved;index" json:"status"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
