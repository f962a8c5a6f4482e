package store

import (
	"context"
	"fmt"

	"github.com/mikepea/fyyur/pkg/fyyur/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Directory is a full dump of venues, artists and shows
type Directory struct {
	Venues  []models.Venue  `json:"venues"`
	Artists []models.Artist `json:"artists"`
	Shows   []models.Show   `json:"shows"`
}

// ImportResult summarizes an import
type ImportResult struct {
	Venues  int      `json:"venues"`
	Artists int      `json:"artists"`
	Shows   int      `json:"shows"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// Export returns every row of the directory
func (s *Store) Export(ctx context.Context) (*Directory, error) {
	venues, err := s.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	artists, err := s.ListArtists(ctx)
	if err != nil {
		return nil, err
	}
	shows, err := listAll[models.Show](ctx, s.db, "list shows")
	if err != nil {
		return nil, err
	}
	return &Directory{Venues: venues, Artists: artists, Shows: shows}, nil
}

// Import inserts every entry of dir in one transaction. Ids in dir are only
// used to link shows to the venues and artists of the same document; new ids
// are generated. Invalid entries are skipped and reported, a database error
// rolls back the whole import.
func (s *Store) Import(ctx context.Context, dir *Directory) (*ImportResult, error) {
	result := &ImportResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		venueIDs := map[uint]uint{}
		for i := range dir.Venues {
			v := dir.Venues[i]
			oldID := v.ID
			if err := validateVenue(&v); err != nil {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("venue %d: %v", oldID, err))
				continue
			}
			v.ID = 0
			v.Shows = nil
			if err := tx.Omit(clause.Associations).Create(&v).Error; err != nil {
				return err
			}
			venueIDs[oldID] = v.ID
			result.Venues++
		}

		artistIDs := map[uint]uint{}
		for i := range dir.Artists {
			a := dir.Artists[i]
			oldID := a.ID
			if err := validateArtist(&a); err != nil {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("artist %d: %v", oldID, err))
				continue
			}
			a.ID = 0
			a.Shows = nil
			if err := tx.Omit(clause.Associations).Create(&a).Error; err != nil {
				return err
			}
			artistIDs[oldID] = a.ID
			result.Artists++
		}

		for i := range dir.Shows {
			show := dir.Shows[i]
			oldID := show.ID
			if show.StartTime.IsZero() {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("show %d: start_time is required", oldID))
				continue
			}
			venueID, ok := remap(show.VenueID, venueIDs)
			if !ok {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("show %d: unknown venue %d", oldID, *show.VenueID))
				continue
			}
			artistID, ok := remap(show.ArtistID, artistIDs)
			if !ok {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("show %d: unknown artist %d", oldID, *show.ArtistID))
				continue
			}

			row := models.Show{VenueID: venueID, ArtistID: artistID, StartTime: show.StartTime.UTC()}
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return err
			}
			result.Shows++
		}
		return nil
	})
	if err != nil {
		return nil, &OperationError{Op: "import directory", Err: err}
	}

	s.publish("directory.imported", result)
	return result, nil
}

// remap translates a document id into a generated id. A nil reference stays nil.
func remap(id *uint, ids map[uint]uint) (*uint, bool) {
	if id == nil {
		return nil, true
	}
	newID, ok := ids[*id]
	if !ok {
		return nil, false
	}
	return &newID, true
}
