package models

import "time"

// Catalog represents one of the supported astronomical catalogs
// (Messier, NGC, IC, Caldwell, Sharpless).
type Catalog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	Code         string    `gorm:"uniqueIndex;size:16;not null" json:"code"`
	Description  string    `gorm:"type:text" json:"description"`
	TotalObjects int       `json:"total_objects"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
