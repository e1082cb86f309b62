package models

import (
	"time"

	"gorm.io/gorm"
)

// ImageStatus is the moderation/visibility state of an image.
type ImageStatus string

const (
	ImageStatusDraft      ImageStatus = "draft"
	ImageStatusPublished  ImageStatus = "published"
	ImageStatusPrivate    ImageStatus = "private"
	ImageStatusProcessing ImageStatus = "processing"
)

// ValidImageStatus reports whether s is one of the recognized statuses.
func ValidImageStatus(s ImageStatus) bool {
	switch s {
	case ImageStatusDraft, ImageStatusPublished, ImageStatusPrivate, ImageStatusProcessing:
		return true
	}
	return false
}

// Image represents an astrophotography submission. Equipment fields are
// free text; they are not foreign keys into the equipment reference catalog.
type Image struct {
	ID       uint                `gorm:"primaryKey" json:"id"`
	UserID   uint                `gorm:"not null;index" json:"user_id"`
	User     User                `gorm:"foreignKey:UserID" json:"user"`
	ObjectID *uint               `gorm:"index" json:"object_id,omitempty"`
	Object   *AstronomicalObject `gorm:"foreignKey:ObjectID" json:"object,omitempty"`

	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	ImageURL     string `gorm:"not null" json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`

	// Acquisition metadata, all optional.
	AcquisitionDate   *time.Time `gorm:"index" json:"acquisition_date,omitempty"`
	Location          string     `json:"location"`
	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	Telescope         string     `gorm:"index" json:"telescope"`
	TelescopeType     string     `json:"telescope_type"`
	ApertureMM        float64    `gorm:"column:aperture_mm" json:"aperture_mm"`
	FocalLengthMM     float64    `gorm:"column:focal_length_mm" json:"focal_length_mm"`
	CameraName        string     `gorm:"index" json:"camera_name"`
	CameraType        string     `json:"camera_type"`
	Mount             string     `json:"mount"`
	Filters           string     `json:"filters"`
	TotalExposureTime int        `gorm:"index" json:"total_exposure_time"`
	Binning           string     `json:"binning"`
	TemperatureC      float64    `gorm:"column:temperature_c" json:"temperature_c"`
	ProcessingNotes   string     `gorm:"type:text" json:"processing_notes"`

	Status     ImageStatus `gorm:"size:16;not null;default:draft;index" json:"status"`
	Featured   bool        `gorm:"default:false;index" json:"featured"`
	LikesCount int         `gorm:"not null;default:0" json:"likes_count"`
	ViewsCount int         `gorm:"not null;default:0" json:"views_count"`
	// Liked indicates whether the current requesting user liked this image (computed)
	Liked bool `gorm:"->" json:"liked"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
