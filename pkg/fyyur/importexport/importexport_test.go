package importexport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/fyyur/pkg/fyyur/models"
	"github.com/mikepea/fyyur/pkg/fyyur/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	s := store.New(db)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(s).RegisterRoutes(&r.RouterGroup)
	return r, s
}

func TestImport(t *testing.T) {
	router, s := setupTestRouter(t)

	// Ids only link entries within the document
	doc := `{
		"venues": [{"id": 10, "name": "The Musical Hop", "city": "San Francisco", "state": "CA"}],
		"artists": [
			{"id": 20, "name": "Guns N Petals", "genres": ["Rock n Roll"]},
			{"id": 21, "name": ""}
		],
		"shows": [
			{"venue_id": 10, "artist_id": 20, "start_time": "2019-05-21T21:30:00Z"},
			{"venue_id": 99, "artist_id": 20, "start_time": "2019-05-21T21:30:00Z"}
		]
	}`

	req, _ := http.NewRequest("POST", "/import", bytes.NewBufferString(doc))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result store.ImportResult
	json.Unmarshal(resp.Body.Bytes(), &result)
	if result.Venues != 1 || result.Artists != 1 || result.Shows != 1 {
		t.Errorf("Expected 1 venue, 1 artist and 1 show, got %+v", result)
	}
	if result.Skipped != 2 {
		t.Errorf("Expected 2 skipped entries, got %d", result.Skipped)
	}

	shows, _ := s.ListShows(context.Background())
	if len(shows) != 1 {
		t.Fatalf("Expected 1 show, got %d", len(shows))
	}
	if shows[0].VenueName != "The Musical Hop" || shows[0].ArtistName != "Guns N Petals" {
		t.Errorf("Expected show to be linked to the imported rows, got %+v", shows[0])
	}
	if !shows[0].StartTime.Equal(time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)) {
		t.Errorf("Unexpected start time %v", shows[0].StartTime)
	}
}

func TestImportInvalidJSON(t *testing.T) {
	router, _ := setupTestRouter(t)

	req, _ := http.NewRequest("POST", "/import", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.Code)
	}
}

func TestExport(t *testing.T) {
	router, s := setupTestRouter(t)
	venue := &models.Venue{Name: "The Blue Note"}
	s.CreateVenue(context.Background(), venue)
	artist := &models.Artist{Name: "Jane Doe"}
	s.CreateArtist(context.Background(), artist)
	s.CreateShow(context.Background(), &models.Show{VenueID: &venue.ID, ArtistID: &artist.ID, StartTime: time.Now()})

	req, _ := http.NewRequest("GET", "/export?download=true", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Disposition"); got != "attachment; filename=fyyur-export.json" {
		t.Errorf("Unexpected Content-Disposition %q", got)
	}

	var dir store.Directory
	json.Unmarshal(resp.Body.Bytes(), &dir)
	if len(dir.Venues) != 1 || len(dir.Artists) != 1 || len(dir.Shows) != 1 {
		t.Errorf("Expected one of each, got %d venues, %d artists, %d shows",
			len(dir.Venues), len(dir.Artists), len(dir.Shows))
	}

	// An export can be imported again
	body, _ := json.Marshal(dir)
	req, _ = http.NewRequest("POST", "/import", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var result store.ImportResult
	json.Unmarshal(resp.Body.Bytes(), &result)
	if result.Shows != 1 || result.Skipped != 0 {
		t.Errorf("Expected re-import to keep the show, got %+v", result)
	}
}
