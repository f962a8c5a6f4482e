package store

import (
	"context"
	"strings"

	"github.com/mikepea/fyyur/pkg/fyyur/models"
)

// Summary is a venue or artist as listed on index and search pages
type Summary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues of one city
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// VenueAreas groups all venues by city and state, in order of first appearance
func (s *Store) VenueAreas(ctx context.Context) ([]Area, error) {
	venues, err := s.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	summaries, err := s.VenueSummaries(ctx, venues)
	if err != nil {
		return nil, err
	}

	areas := []Area{}
	index := map[string]int{}
	for i, v := range venues {
		key := strings.ToLower(strings.TrimSpace(v.City)) + "|" + strings.ToLower(strings.TrimSpace(v.State))
		n, ok := index[key]
		if !ok {
			n = len(areas)
			index[key] = n
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[n].Venues = append(areas[n].Venues, summaries[i])
	}
	return areas, nil
}

// VenueSummaries pairs each venue with its number of upcoming shows, keeping the input order
func (s *Store) VenueSummaries(ctx context.Context, venues []models.Venue) ([]Summary, error) {
	ids := make([]uint, len(venues))
	for i, v := range venues {
		ids[i] = v.ID
	}
	counts, err := s.UpcomingVenueShowCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, len(venues))
	for i, v := range venues {
		summaries[i] = Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]}
	}
	return summaries, nil
}

// ArtistSummaries pairs each artist with its number of upcoming shows, keeping the input order
func (s *Store) ArtistSummaries(ctx context.Context, artists []models.Artist) ([]Summary, error) {
	ids := make([]uint, len(artists))
	for i, a := range artists {
		ids[i] = a.ID
	}
	counts, err := s.UpcomingArtistShowCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, len(artists))
	for i, a := range artists {
		summaries[i] = Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]}
	}
	return summaries, nil
}
