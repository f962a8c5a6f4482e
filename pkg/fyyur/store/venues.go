package store

import (
	"context"
	"errors"
	"strings"

	"github.com/mikepea/fyyur/pkg/fyyur/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListVenues returns every venue ordered by id
func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return listAll[models.Venue](ctx, s.db, "list venues")
}

// GetVenue returns the venue with the given id or ErrNotFound
func (s *Store) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	return findByID[models.Venue](ctx, s.db, id, "get venue")
}

// SearchVenues matches venue names case-insensitively. An empty term matches all venues.
func (s *Store) SearchVenues(ctx context.Context, term string) (*SearchResult[models.Venue], error) {
	return searchByName[models.Venue](ctx, s.db, term, "search venues")
}

// RecentVenues returns the most recently listed venues
func (s *Store) RecentVenues(ctx context.Context, limit int) ([]models.Venue, error) {
	return recent[models.Venue](ctx, s.db, limit, "recent venues")
}

func validateVenue(v *models.Venue) error {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return newValidationError("name", "is required")
	}
	v.Genres = normalizeGenres(v.Genres)
	return nil
}

// CreateVenue inserts v and sets its generated id
func (s *Store) CreateVenue(ctx context.Context, v *models.Venue) error {
	if err := validateVenue(v); err != nil {
		return err
	}
	v.ID = 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(v).Error
	})
	if err != nil {
		v.ID = 0
		return &OperationError{Op: "create venue", Err: err}
	}

	s.publish("venue.created", v)
	return nil
}

// UpdateVenue replaces every mutable field of the venue with the values in v.
// Fields left empty in v are written as empty; nothing is merged from the old row.
func (s *Store) UpdateVenue(ctx context.Context, id uint, v *models.Venue) (*models.Venue, error) {
	if err := validateVenue(v); err != nil {
		return nil, err
	}

	var venue models.Venue
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}

		venue.Name = v.Name
		venue.Genres = v.Genres
		venue.City = v.City
		venue.State = v.State
		venue.Address = v.Address
		venue.Phone = v.Phone
		venue.SeekingTalent = v.SeekingTalent
		venue.SeekingDescription = v.SeekingDescription
		venue.ImageLink = v.ImageLink
		venue.Website = v.Website
		venue.FacebookLink = v.FacebookLink

		return tx.Omit(clause.Associations).Save(&venue).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &OperationError{Op: "update venue", Err: err}
	}

	s.publish("venue.updated", &venue)
	return &venue, nil
}

// DeleteVenue removes the venue. Its shows are kept with venue_id set to NULL.
// Deleting an id that does not exist is a no-op.
func (s *Store) DeleteVenue(ctx context.Context, id uint) error {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Show{}).Where("venue_id = ?", id).Update("venue_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Venue{}, id)
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return &OperationError{Op: "delete venue", Err: err}
	}

	if deleted > 0 {
		s.publish("venue.deleted", map[string]uint{"id": id})
	}
	return nil
}
