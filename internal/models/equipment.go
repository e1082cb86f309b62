package models

import "time"

// Equipment is a reference catalog row used for autocomplete suggestions.
// Images store equipment as free text, not as foreign keys into this table;
// the decoupling matches how uploaders actually describe gear.
type Equipment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	Type      string    `gorm:"size:32;not null;index" json:"type"`
	Brand     string    `gorm:"index" json:"brand"`
	Model     string    `json:"model"`
	Specs     string    `gorm:"type:text" json:"specs"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName avoids the default pluralization of "equipment".
func (Equipment) TableName() string {
	return "equipment"
}
