package forms

import (
	"strings"

	"github.com/mikepea/fyyur/pkg/fyyur/models"
)

// ArtistForm is the create/edit artist submission
type ArtistForm struct {
	Name               string   `form:"name" json:"name" binding:"required"`
	City               string   `form:"city" json:"city" binding:"required,max=120"`
	State              string   `form:"state" json:"state" binding:"required"`
	Phone              string   `form:"phone" json:"phone" binding:"max=120"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url,max=120"`
	Website            string   `form:"website" json:"website" binding:"omitempty,url"`
	SeekingVenue       Checkbox `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" binding:"max=500"`
}

func (f *ArtistForm) check(errs Errors) {
	f.Name = strings.TrimSpace(f.Name)
	f.State = strings.ToUpper(strings.TrimSpace(f.State))
	f.Genres = trim(f.Genres)
	checkState(errs, f.State)
	checkGenres(errs, f.Genres)
	checkPhone(errs, strings.TrimSpace(f.Phone))
}

// Artist converts the form into a model
func (f *ArtistForm) Artist() *models.Artist {
	return &models.Artist{
		Name:               f.Name,
		Genres:             append([]string{}, f.Genres...),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Phone:              strings.TrimSpace(f.Phone),
		SeekingVenue:       bool(f.SeekingVenue),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		Website:            strings.TrimSpace(f.Website),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
	}
}

// NewArtistForm pre-fills a form from an existing artist
func NewArtistForm(a *models.Artist) *ArtistForm {
	return &ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             append([]string{}, a.Genres...),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       Checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}
