package models

import (
	"time"

	"gorm.io/gorm"
)

// Venue represents a place that books artists
type Venue struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Name               string    `gorm:"not null" json:"name"`
	NameKey            string    `gorm:"index" json:"-"`
	Genres             []string  `gorm:"serializer:json" json:"genres"`
	City               string    `gorm:"size:120" json:"city"`
	State              string    `gorm:"size:120" json:"state"`
	Address            string    `gorm:"size:120" json:"address"`
	Phone              string    `gorm:"size:120" json:"phone"`
	SeekingTalent      bool      `gorm:"default:false" json:"seeking_talent"`
	SeekingDescription string    `gorm:"size:500" json:"seeking_description"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	Website            string    `json:"website"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`

	// Relationships
	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"shows,omitempty"`
}

// BeforeSave keeps the search key in step with the name
func (v *Venue) BeforeSave(tx *gorm.DB) error {
	v.NameKey = NameKey(v.Name)
	return nil
}
