package models

import "time"

// Show books one artist at one venue at one point in time.
// Both references are nullable: a show survives the deletion of either side.
type Show struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	VenueID   *uint     `gorm:"index" json:"venue_id"`
	ArtistID  *uint     `gorm:"index" json:"artist_id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`

	// Relationships
	Venue  *Venue  `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
}
