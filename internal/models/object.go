package models

import "time"

// AstronomicalObject is one catalog entry for a deep-sky object. The same
// physical object may appear in several catalogs; the five alternate
// designation columns record the other catalog names when known, and the
// cross-reference resolver relates rows through them.
type AstronomicalObject struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Designation string  `gorm:"not null;index" json:"designation"`
	CatalogID   uint    `gorm:"not null;index" json:"catalog_id"`
	Catalog     Catalog `gorm:"foreignKey:CatalogID" json:"catalog"`

	// Alternate designations, one column per external catalog. Empty means
	// "not cataloged there (or unknown)".
	MessierNumber   string `gorm:"index;default:''" json:"messier_number"`
	NGCNumber       string `gorm:"column:ngc_number;index;default:''" json:"ngc_number"`
	ICNumber        string `gorm:"column:ic_number;index;default:''" json:"ic_number"`
	CaldwellNumber  string `gorm:"index;default:''" json:"caldwell_number"`
	SharplessNumber string `gorm:"index;default:''" json:"sharpless_number"`

	ObjectType    string  `gorm:"index" json:"object_type"`
	Constellation string  `gorm:"index" json:"constellation"`
	RAHours       float64 `gorm:"column:ra_hours" json:"ra_hours"`
	DecDegrees    float64 `json:"dec_degrees"`
	Magnitude     float64 `json:"magnitude"`
	Size          string  `json:"size"`
	Distance      string  `json:"distance"`
	CommonNames   string  `gorm:"type:text" json:"common_names"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the short table name shared with the importer tooling.
func (AstronomicalObject) TableName() string {
	return "objects"
}

// CrossReference is the result of resolving a designation or common name:
// the anchor object plus every row sharing an alternate designation with it.
type CrossReference struct {
	MainObject      *AstronomicalObject   `json:"main_object"`
	CrossReferences []*AstronomicalObject `json:"cross_references"`
}
