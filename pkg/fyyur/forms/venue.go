package forms

import (
	"strings"

	"github.com/mikepea/fyyur/pkg/fyyur/models"
)

// VenueForm is the create/edit venue submission
type VenueForm struct {
	Name               string   `form:"name" json:"name" binding:"required"`
	City               string   `form:"city" json:"city" binding:"required,max=120"`
	State              string   `form:"state" json:"state" binding:"required"`
	Address            string   `form:"address" json:"address" binding:"required,max=120"`
	Phone              string   `form:"phone" json:"phone" binding:"max=120"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url,max=120"`
	Website            string   `form:"website" json:"website" binding:"omitempty,url"`
	SeekingTalent      Checkbox `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" binding:"max=500"`
}

func (f *VenueForm) check(errs Errors) {
	f.Name = strings.TrimSpace(f.Name)
	f.State = strings.ToUpper(strings.TrimSpace(f.State))
	f.Genres = trim(f.Genres)
	checkState(errs, f.State)
	checkGenres(errs, f.Genres)
	checkPhone(errs, strings.TrimSpace(f.Phone))
}

// Venue converts the form into a model
func (f *VenueForm) Venue() *models.Venue {
	return &models.Venue{
		Name:               f.Name,
		Genres:             append([]string{}, f.Genres...),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Address:            strings.TrimSpace(f.Address),
		Phone:              strings.TrimSpace(f.Phone),
		SeekingTalent:      bool(f.SeekingTalent),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		Website:            strings.TrimSpace(f.Website),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
	}
}

// NewVenueForm pre-fills a form from an existing venue
func NewVenueForm(v *models.Venue) *VenueForm {
	return &VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             append([]string{}, v.Genres...),
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      Checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}
