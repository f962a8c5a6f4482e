package store

import (
	"context"
	"errors"
	"strings"

	"github.com/mikepea/fyyur/pkg/fyyur/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListArtists returns every artist ordered by id
func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return listAll[models.Artist](ctx, s.db, "list artists")
}

// GetArtist returns the artist with the given id or ErrNotFound
func (s *Store) GetArtist(ctx context.Context, id uint) (*models.Artist, error) {
	return findByID[models.Artist](ctx, s.db, id, "get artist")
}

// SearchArtists matches artist names case-insensitively. An empty term matches all artists.
func (s *Store) SearchArtists(ctx context.Context, term string) (*SearchResult[models.Artist], error) {
	return searchByName[models.Artist](ctx, s.db, term, "search artists")
}

// RecentArtists returns the most recently listed artists
func (s *Store) RecentArtists(ctx context.Context, limit int) ([]models.Artist, error) {
	return recent[models.Artist](ctx, s.db, limit, "recent artists")
}

func validateArtist(a *models.Artist) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return newValidationError("name", "is required")
	}
	a.Genres = normalizeGenres(a.Genres)
	return nil
}

// CreateArtist inserts a and sets its generated id
func (s *Store) CreateArtist(ctx context.Context, a *models.Artist) error {
	if err := validateArtist(a); err != nil {
		return err
	}
	a.ID = 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(a).Error
	})
	if err != nil {
		a.ID = 0
		return &OperationError{Op: "create artist", Err: err}
	}

	s.publish("artist.created", a)
	return nil
}

// UpdateArtist replaces every mutable field of the artist with the values in a.
// Fields left empty in a are written as empty; nothing is merged from the old row.
func (s *Store) UpdateArtist(ctx context.Context, id uint, a *models.Artist) (*models.Artist, error) {
	if err := validateArtist(a); err != nil {
		return nil, err
	}

	var artist models.Artist
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}

		artist.Name = a.Name
		artist.Genres = a.Genres
		artist.City = a.City
		artist.State = a.State
		artist.Phone = a.Phone
		artist.SeekingVenue = a.SeekingVenue
		artist.SeekingDescription = a.SeekingDescription
		artist.ImageLink = a.ImageLink
		artist.Website = a.Website
		artist.FacebookLink = a.FacebookLink

		return tx.Omit(clause.Associations).Save(&artist).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &OperationError{Op: "update artist", Err: err}
	}

	s.publish("artist.updated", &artist)
	return &artist, nil
}

// DeleteArtist removes the artist. Its shows are kept with artist_id set to NULL.
// Deleting an id that does not exist is a no-op.
func (s *Store) DeleteArtist(ctx context.Context, id uint) error {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Show{}).Where("artist_id = ?", id).Update("artist_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Artist{}, id)
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return &OperationError{Op: "delete artist", Err: err}
	}

	if deleted > 0 {
		s.publish("artist.deleted", map[string]uint{"id": id})
	}
	return nil
}
