package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/fyyur/pkg/fyyur/forms"
	"github.com/mikepea/fyyur/pkg/fyyur/models"
	"github.com/mikepea/fyyur/pkg/fyyur/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, r *Renderer, page string, data gin.H) string {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(page, data).Render(w), page)
	return w.Body.String()
}

func TestRendererPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	venueID, artistID := uint(1), uint(2)
	start := time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC)
	detail := store.ShowDetail{
		ID:              3,
		VenueID:         &venueID,
		VenueName:       "The Blue Note",
		ArtistID:        &artistID,
		ArtistName:      "Jane Doe",
		ArtistImageLink: "https://images.example.com/jane.jpg",
		StartTime:       start,
	}
	venue := &models.Venue{ID: 1, Name: "The Blue Note", Genres: []string{"Jazz"}, City: "Nashville", State: "TN", SeekingTalent: true, SeekingDescription: "Bring your horn"}
	artist := &models.Artist{ID: 2, Name: "Jane Doe", Genres: []string{"Folk"}, City: "Austin", State: "TX"}
	summaries := []store.Summary{{ID: 1, Name: "The Blue Note", NumUpcomingShows: 1}}
	flashes := []string{"Venue The Blue Note was successfully listed!"}

	tests := []struct {
		page string
		data gin.H
		want []string
	}{
		{"pages/home.html", gin.H{"RecentVenues": []models.Venue{*venue}, "RecentArtists": []models.Artist{*artist}, "Flashes": flashes}, []string{"The Blue Note", "Jane Doe", "successfully listed"}},
		{"pages/home.html", gin.H{}, []string{"No venues yet."}},
		{"pages/venues.html", gin.H{"Areas": []store.Area{{City: "Nashville", State: "TN", Venues: summaries}}}, []string{"Nashville, TN", `href="/venues/1"`, "1 upcoming"}},
		{"pages/artists.html", gin.H{"Artists": summaries}, []string{`href="/artists/1"`}},
		{"pages/shows.html", gin.H{"Shows": []store.ShowDetail{detail}}, []string{"Jane Doe", "The Blue Note", "Thursday May, 21, 2026 at 9:30PM"}},
		{"pages/search_venues.html", gin.H{"Results": store.SearchResult[store.Summary]{Count: 1, Data: summaries}, "SearchTerm": "blue"}, []string{`"blue": 1`, "The Blue Note"}},
		{"pages/search_artists.html", gin.H{"Results": store.SearchResult[store.Summary]{Count: 0, Data: []store.Summary{}}, "SearchTerm": "x"}, []string{`"x": 0`}},
		{"pages/show_venue.html", gin.H{"Venue": venue, "Shows": &store.ShowBuckets{Upcoming: []store.ShowDetail{detail}, Past: []store.ShowDetail{}}}, []string{"1 Upcoming Show", "0 Past Shows", "Jane Doe", "Bring your horn"}},
		{"pages/show_artist.html", gin.H{"Artist": artist, "Shows": &store.ShowBuckets{Upcoming: []store.ShowDetail{}, Past: []store.ShowDetail{detail, detail}}}, []string{"2 Past Shows", `href="/venues/1"`, "Not currently seeking"}},
		{"forms/new_venue.html", gin.H{"Form": &forms.VenueForm{}, "Errors": forms.Errors{}, "States": forms.States, "Genres": forms.Genres}, []string{`action="/venues/create"`, `<option value="TN">`}},
		{"forms/edit_venue.html", gin.H{"ID": uint(1), "Form": forms.NewVenueForm(venue), "Errors": forms.Errors{"name": "This field is required."}, "States": forms.States, "Genres": forms.Genres}, []string{`action="/venues/1/edit"`, `<option value="TN" selected>`, `<option value="Jazz" selected>`, "This field is required.", "checked"}},
		{"forms/new_artist.html", gin.H{"Form": &forms.ArtistForm{}, "Errors": forms.Errors{}, "States": forms.States, "Genres": forms.Genres}, []string{`action="/artists/create"`}},
		{"forms/edit_artist.html", gin.H{"ID": uint(2), "Form": forms.NewArtistForm(artist), "Errors": forms.Errors{}, "States": forms.States, "Genres": forms.Genres}, []string{`action="/artists/2/edit"`, `<option value="Folk" selected>`}},
		{"forms/new_show.html", gin.H{"Form": forms.NewShowForm(start), "Errors": forms.Errors{"venue_id": "This field is required."}}, []string{`value="2026-05-21 21:30:00"`, "This field is required."}},
		{"errors/404.html", gin.H{}, []string{"Not found"}},
		{"errors/500.html", gin.H{}, []string{"Internal server error"}},
	}

	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			body := renderPage(t, r, tt.page, tt.data)
			assert.True(t, strings.HasPrefix(strings.TrimSpace(body), "<!doctype html>"), "layout not applied")
			for _, want := range tt.want {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestRendererEscapesInput(t *testing.T) {
	r := MustNewRenderer()

	body := renderPage(t, r, "pages/search_venues.html", gin.H{
		"Results":    store.SearchResult[store.Summary]{Data: []store.Summary{}},
		"SearchTerm": "<script>alert(1)</script>",
	})
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRendererUnknownPagePanics(t *testing.T) {
	r := MustNewRenderer()
	assert.False(t, r.Has("pages/nope.html"))
	assert.True(t, r.Has("pages/home.html"))
	assert.Panics(t, func() { r.Instance("pages/nope.html", nil) })
}

func TestFormatDatetime(t *testing.T) {
	ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", FormatDatetime(ts, "full"))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDatetime(ts, "medium"))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDatetime(ts, ""))
}

func TestWantsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		accept      string
		contentType string
		want        bool
	}{
		{"browser", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8", "", false},
		{"json client", "application/json", "", true},
		{"no accept", "", "", false},
		{"no accept with json body", "", "application/json", true},
		{"wildcard with form body", "*/*", "application/x-www-form-urlencoded", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				c.Request.Header.Set("Accept", tt.accept)
			}
			if tt.contentType != "" {
				c.Request.Header.Set("Content-Type", tt.contentType)
			}
			assert.Equal(t, tt.want, WantsJSON(c))
		})
	}
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		param string
		want  uint
		ok    bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"99999999999", 0, false},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: tt.param}}
		got, ok := ParseID(c, "id")
		assert.Equal(t, tt.ok, ok, tt.param)
		assert.Equal(t, tt.want, got, tt.param)
	}
}
