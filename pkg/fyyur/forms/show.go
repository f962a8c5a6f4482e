package forms

import (
	"errors"
	"strings"
	"time"

	"github.com/mikepea/fyyur/pkg/fyyur/models"
)

// StartTimeLayout is the format used to pre-fill and display start times in forms
const StartTimeLayout = "2006-01-02 15:04:05"

var startTimeLayouts = []string{
	StartTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
}

// ShowForm is the create show submission
type ShowForm struct {
	ArtistID  uint   `form:"artist_id" json:"artist_id" binding:"required,gt=0"`
	VenueID   uint   `form:"venue_id" json:"venue_id" binding:"required,gt=0"`
	StartTime string `form:"start_time" json:"start_time" binding:"required"`

	startTime time.Time
}

// NewShowForm returns an empty form whose start time defaults to now
func NewShowForm(now time.Time) *ShowForm {
	return &ShowForm{StartTime: now.Format(StartTimeLayout)}
}

func (f *ShowForm) check(errs Errors) {
	f.StartTime = strings.TrimSpace(f.StartTime)
	if f.StartTime == "" {
		return
	}
	t, err := ParseStartTime(f.StartTime)
	if err != nil {
		errs.Merge(Errors{"start_time": "Not a valid datetime value."})
		return
	}
	f.startTime = t
}

// Show converts the form into a model. Only valid after a successful Bind.
func (f *ShowForm) Show() *models.Show {
	venueID, artistID := f.VenueID, f.ArtistID
	return &models.Show{
		VenueID:   &venueID,
		ArtistID:  &artistID,
		StartTime: f.startTime,
	}
}

// ParseStartTime accepts the datetime formats browsers and API clients send.
// Values without a zone are read as UTC.
func ParseStartTime(value string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("unrecognized datetime format")
}
