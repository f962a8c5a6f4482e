package models

import (
	"time"

	"gorm.io/gorm"
)

// Artist represents a performer looking for venues
type Artist struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Name               string    `gorm:"not null" json:"name"`
	NameKey            string    `gorm:"index" json:"-"`
	Genres             []string  `gorm:"serializer:json" json:"genres"`
	City               string    `gorm:"size:120" json:"city"`
	State              string    `gorm:"size:120" json:"state"`
	Phone              string    `gorm:"size:120" json:"phone"`
	SeekingVenue       bool      `gorm:"default:false" json:"seeking_venue"`
	SeekingDescription string    `gorm:"size:500" json:"seeking_description"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	Website            string    `json:"website"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`

	// Relationships
	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"shows,omitempty"`
}

// BeforeSave keeps the search key in step with the name
func (a *Artist) BeforeSave(tx *gorm.DB) error {
	a.NameKey = NameKey(a.Name)
	return nil
}
