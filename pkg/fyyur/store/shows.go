package store

import (
	"context"
	"time"

	"github.com/mikepea/fyyur/pkg/fyyur/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShowDetail is a show flattened with the names and images of both sides
type ShowDetail struct {
	ID              uint      `json:"id"`
	VenueID         *uint     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        *uint     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ShowBuckets splits the shows of one venue or artist around the current time
type ShowBuckets struct {
	Upcoming []ShowDetail `json:"upcoming_shows"`
	Past     []ShowDetail `json:"past_shows"`
}

const showDetailColumns = "shows.id, shows.venue_id, shows.artist_id, shows.start_time, " +
	"COALESCE(venues.name, '') AS venue_name, COALESCE(venues.image_link, '') AS venue_image_link, " +
	"COALESCE(artists.name, '') AS artist_name, COALESCE(artists.image_link, '') AS artist_image_link"

func (s *Store) showDetails(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table("shows").Select(showDetailColumns)
}

// ListShows returns every show ordered by id. Shows whose venue or artist is
// gone are included with empty names.
func (s *Store) ListShows(ctx context.Context) ([]ShowDetail, error) {
	rows := []ShowDetail{}
	err := s.showDetails(ctx).
		Joins("LEFT JOIN venues ON venues.id = shows.venue_id").
		Joins("LEFT JOIN artists ON artists.id = shows.artist_id").
		Order("shows.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, &OperationError{Op: "list shows", Err: err}
	}
	return rows, nil
}

// VenueShows returns the upcoming and past shows of a venue.
// A show starting exactly now is in neither bucket.
func (s *Store) VenueShows(ctx context.Context, venueID uint) (*ShowBuckets, error) {
	return s.buckets(ctx, "shows.venue_id", venueID, "venue shows")
}

// ArtistShows returns the upcoming and past shows of an artist.
// A show starting exactly now is in neither bucket.
func (s *Store) ArtistShows(ctx context.Context, artistID uint) (*ShowBuckets, error) {
	return s.buckets(ctx, "shows.artist_id", artistID, "artist shows")
}

func (s *Store) buckets(ctx context.Context, column string, id uint, op string) (*ShowBuckets, error) {
	now := s.Now()
	b := &ShowBuckets{Upcoming: []ShowDetail{}, Past: []ShowDetail{}}

	// Inner joins drop shows whose other side has been nulled out.
	query := func() *gorm.DB {
		return s.showDetails(ctx).
			Joins("JOIN venues ON venues.id = shows.venue_id").
			Joins("JOIN artists ON artists.id = shows.artist_id").
			Where(column+" = ?", id)
	}

	if err := query().Where("shows.start_time > ?", now).Order("shows.start_time ASC, shows.id ASC").Scan(&b.Upcoming).Error; err != nil {
		return nil, &OperationError{Op: op, Err: err}
	}
	if err := query().Where("shows.start_time < ?", now).Order("shows.start_time DESC, shows.id ASC").Scan(&b.Past).Error; err != nil {
		return nil, &OperationError{Op: op, Err: err}
	}
	return b, nil
}

// UpcomingVenueShowCounts returns the number of upcoming shows per venue id
func (s *Store) UpcomingVenueShowCounts(ctx context.Context, ids []uint) (map[uint]int, error) {
	return s.upcomingCounts(ctx, "venue_id", ids)
}

// UpcomingArtistShowCounts returns the number of upcoming shows per artist id
func (s *Store) UpcomingArtistShowCounts(ctx context.Context, ids []uint) (map[uint]int, error) {
	return s.upcomingCounts(ctx, "artist_id", ids)
}

func (s *Store) upcomingCounts(ctx context.Context, column string, ids []uint) (map[uint]int, error) {
	counts := make(map[uint]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	type row struct {
		ID    uint
		Count int
	}
	var rows []row
	err := s.db.WithContext(ctx).Table("shows").
		Select("shows."+column+" AS id, COUNT(*) AS count").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows."+column+" IN ?", ids).
		Where("shows.start_time > ?", s.Now()).
		Group("shows." + column).
		Scan(&rows).Error
	if err != nil {
		return nil, &OperationError{Op: "count upcoming shows", Err: err}
	}

	for _, r := range rows {
		counts[r.ID] = r.Count
	}
	return counts, nil
}

// CreateShow inserts a show. Referenced venue and artist must exist when set.
func (s *Store) CreateShow(ctx context.Context, show *models.Show) error {
	if show.StartTime.IsZero() {
		return newValidationError("start_time", "is required")
	}
	show.StartTime = show.StartTime.UTC()
	show.ID = 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkExists[models.Venue](tx, show.VenueID, "venue_id", "venue"); err != nil {
			return err
		}
		if err := checkExists[models.Artist](tx, show.ArtistID, "artist_id", "artist"); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(show).Error
	})
	if err != nil {
		show.ID = 0
		if IsValidation(err) {
			return err
		}
		return &OperationError{Op: "create show", Err: err}
	}

	s.publish("show.created", show)
	return nil
}

func checkExists[T any](tx *gorm.DB, id *uint, field, label string) error {
	if id == nil {
		return nil
	}
	var count int64
	if err := tx.Model(new(T)).Where("id = ?", *id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return newValidationError(field, label+" does not exist")
	}
	return nil
}
