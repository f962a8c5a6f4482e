package venues

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/fyyur/pkg/fyyur/flash"
	"github.com/mikepea/fyyur/pkg/fyyur/models"
	"github.com/mikepea/fyyur/pkg/fyyur/store"
	"github.com/mikepea/fyyur/pkg/fyyur/web"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var now = time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func setupTestStore(t *testing.T, db *gorm.DB) *store.Store {
	return store.New(db, store.WithClock(func() time.Time { return now }))
}

func setupTestRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HTMLRender = web.MustNewRenderer()

	view := web.NewView(flash.New(flash.NewCookieBackend(false)))
	handler := NewHandler(s, view)
	handler.RegisterRoutes(&r.RouterGroup)
	r.NoRoute(view.NotFound)

	return r
}

func createTestVenue(t *testing.T, s *store.Store, name string) *models.Venue {
	v := &models.Venue{
		Name:    name,
		Genres:  []string{"Jazz"},
		City:    "Nashville",
		State:   "TN",
		Address: "1 Music Row",
		Phone:   "615-555-0100",
	}
	if err := s.CreateVenue(context.Background(), v); err != nil {
		t.Fatalf("Failed to create test venue: %v", err)
	}
	return v
}

func venueValues(name string) url.Values {
	return url.Values{
		"name":           {name},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"address":        {"1015 Folsom Street"},
		"phone":          {"123-123-1234"},
		"genres":         {"Jazz", "Blues"},
		"website":        {"https://www.themusicalhop.com"},
		"seeking_talent": {"y"},
	}
}

func postForm(router *gin.Engine, path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func get(router *gin.Engine, path string, accept string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateVenueJSON(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)

	resp := postJSON(router, "/venues/create", map[string]any{
		"name":           "The Musical Hop",
		"city":           "San Francisco",
		"state":          "CA",
		"address":        "1015 Folsom Street",
		"genres":         []string{"Jazz", "Reggae"},
		"seeking_talent": true,
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var venue models.Venue
	json.Unmarshal(resp.Body.Bytes(), &venue)
	if venue.ID == 0 {
		t.Error("Expected venue ID to be set")
	}
	if venue.Name != "The Musical Hop" {
		t.Errorf("Expected name 'The Musical Hop', got %s", venue.Name)
	}
	if !venue.SeekingTalent {
		t.Error("Expected seeking_talent to be true")
	}

	stored, err := s.GetVenue(context.Background(), venue.ID)
	if err != nil {
		t.Fatalf("Expected venue to be stored: %v", err)
	}
	if len(stored.Genres) != 2 || stored.Genres[1] != "Reggae" {
		t.Errorf("Expected genres [Jazz Reggae], got %v", stored.Genres)
	}
}

func TestCreateVenueFormRedirectsWithFlash(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)

	resp := postForm(router, "/venues/create", venueValues("The Musical Hop"))
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("Expected status 303, got %d: %s", resp.Code, resp.Body.String())
	}
	location := resp.Header().Get("Location")
	if location != "/venues/1" {
		t.Errorf("Expected redirect to /venues/1, got %s", location)
	}

	// Follow the redirect with the flash cookie
	detail := get(router, location, "", resp.Result().Cookies()...)
	if detail.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", detail.Code)
	}
	body := detail.Body.String()
	if !strings.Contains(body, "Venue The Musical Hop was successfully listed!") {
		t.Error("Expected success flash on the detail page")
	}
	if !strings.Contains(body, "Currently seeking talent") {
		t.Error("Expected seeking_talent checkbox to be stored")
	}
}

func TestCreateVenueValidationForm(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)

	values := venueValues("")
	values.Set("website", "not-a-url")
	resp := postForm(router, "/venues/create", values)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "This field is required.") {
		t.Error("Expected required error for name")
	}
	if !strings.Contains(body, "Invalid URL.") {
		t.Error("Expected URL error for website")
	}
	if !strings.Contains(body, `value="San Francisco"`) {
		t.Error("Expected submitted city to be kept")
	}
	if !strings.Contains(body, "Please correct the errors below.") {
		t.Error("Expected validation flash")
	}

	venues, _ := s.ListVenues(context.Background())
	if len(venues) != 0 {
		t.Errorf("Expected no venue to be stored, got %d", len(venues))
	}
}

func TestCreateVenueValidationJSON(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)

	resp := postJSON(router, "/venues/create", map[string]any{
		"city":   "San Francisco",
		"state":  "XX",
		"genres": []string{"Jazz"},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", resp.Code)
	}

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)
	for _, field := range []string{"name", "address", "state"} {
		if _, ok := body.Fields[field]; !ok {
			t.Errorf("Expected error for field %s, got %v", field, body.Fields)
		}
	}
}

func TestCreateVenueStoreFailure(t *testing.T) {
	db := setupTestDB(t)
	s := setupTestStore(t, db)
	router := setupTestRouter(s)
	db.Migrator().DropTable(&models.Venue{})

	resp := postForm(router, "/venues/create", venueValues("The Musical Hop"))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "An error occurred. Venue The Musical Hop could not be listed.") {
		t.Error("Expected failure flash on the home page")
	}
}

func TestGetVenueWithShows(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)
	venue := createTestVenue(t, s, "The Blue Note")
	artist := &models.Artist{Name: "Jane Doe"}
	s.CreateArtist(context.Background(), artist)
	s.CreateShow(context.Background(), &models.Show{VenueID: &venue.ID, ArtistID: &artist.ID, StartTime: now.Add(24 * time.Hour)})
	s.CreateShow(context.Background(), &models.Show{VenueID: &venue.ID, ArtistID: &artist.ID, StartTime: now.Add(-24 * time.Hour)})

	resp := get(router, "/venues/1", "application/json")
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		ID                 uint               `json:"id"`
		Name               string             `json:"name"`
		UpcomingShows      []store.ShowDetail `json:"upcoming_shows"`
		PastShows          []store.ShowDetail `json:"past_shows"`
		UpcomingShowsCount int                `json:"upcoming_shows_count"`
		PastShowsCount     int                `json:"past_shows_count"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)

	if body.Name != "The Blue Note" {
		t.Errorf("Expected name 'The Blue Note', got %s", body.Name)
	}
	if body.UpcomingShowsCount != 1 || len(body.UpcomingShows) != 1 {
		t.Fatalf("Expected 1 upcoming show, got %d", len(body.UpcomingShows))
	}
	if body.PastShowsCount != 1 || len(body.PastShows) != 1 {
		t.Fatalf("Expected 1 past show, got %d", len(body.PastShows))
	}
	if body.UpcomingShows[0].ArtistName != "Jane Doe" {
		t.Errorf("Expected artist 'Jane Doe', got %s", body.UpcomingShows[0].ArtistName)
	}

	html := get(router, "/venues/1", "")
	if !strings.Contains(html.Body.String(), "1 Upcoming Show") {
		t.Error("Expected upcoming show section in HTML")
	}
}

func TestGetVenueNotFound(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)

	for _, path := range []string{"/venues/999", "/venues/abc", "/venues/999/edit"} {
		resp := get(router, path, "")
		if resp.Code != http.StatusNotFound {
			t.Errorf("%s: expected status 404, got %d", path, resp.Code)
		}
	}

	resp := get(router, "/venues/999", "application/json")
	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.Code)
	}
	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["error"] == "" {
		t.Error("Expected error message in JSON body")
	}
}

func TestListVenues(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)
	createTestVenue(t, s, "The Blue Note")
	createTestVenue(t, s, "Station Inn")

	resp := get(router, "/venues", "application/json")
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body struct {
		Areas []store.Area `json:"areas"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)
	if len(body.Areas) != 1 {
		t.Fatalf("Expected 1 area, got %d", len(body.Areas))
	}
	if len(body.Areas[0].Venues) != 2 {
		t.Errorf("Expected 2 venues in Nashville, got %d", len(body.Areas[0].Venues))
	}

	html := get(router, "/venues", "")
	if !strings.Contains(html.Body.String(), "Nashville, TN") {
		t.Error("Expected area heading in HTML")
	}
}

func TestSearchVenues(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)
	createTestVenue(t, s, "The Musical Hop")
	createTestVenue(t, s, "The Dueling Pianos Bar")
	createTestVenue(t, s, "Park Square Live Music & Coffee")

	resp := postJSON(router, "/venues/search", map[string]string{"search_term": "Music"})
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}
	var result store.SearchResult[store.Summary]
	json.Unmarshal(resp.Body.Bytes(), &result)
	if result.Count != 2 || len(result.Data) != 2 {
		t.Errorf("Expected 2 results, got count=%d len=%d", result.Count, len(result.Data))
	}

	html := postForm(router, "/venues/search", url.Values{"search_term": {"hop"}})
	if !strings.Contains(html.Body.String(), `Number of search results for "hop": 1`) {
		t.Errorf("Expected result count in HTML, got %s", html.Body.String())
	}

	all := postForm(router, "/venues/search", url.Values{})
	if !strings.Contains(all.Body.String(), `Number of search results for "": 3`) {
		t.Error("Expected empty term to match every venue")
	}
}

func TestEditVenue(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)
	venue := createTestVenue(t, s, "Old Name")

	form := get(router, "/venues/1/edit", "")
	if form.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", form.Code)
	}
	if !strings.Contains(form.Body.String(), `value="Old Name"`) {
		t.Error("Expected form to be pre-filled")
	}

	values := venueValues("New Name")
	values.Del("phone")
	values.Del("seeking_talent")
	resp := postForm(router, "/venues/1/edit", values)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("Expected status 303, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp.Header().Get("Location") != "/venues/1" {
		t.Errorf("Expected redirect to /venues/1, got %s", resp.Header().Get("Location"))
	}

	updated, _ := s.GetVenue(context.Background(), venue.ID)
	if updated.Name != "New Name" {
		t.Errorf("Expected name 'New Name', got %s", updated.Name)
	}
	if updated.Phone != "" {
		t.Errorf("Expected phone to be cleared, got %s", updated.Phone)
	}
	if updated.City != "San Francisco" {
		t.Errorf("Expected city 'San Francisco', got %s", updated.City)
	}
}

func TestEditVenueValidation(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)
	createTestVenue(t, s, "Keep Me")

	resp := postForm(router, "/venues/1/edit", venueValues(""))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `action="/venues/1/edit"`) {
		t.Error("Expected edit form to be re-rendered")
	}

	venue, _ := s.GetVenue(context.Background(), 1)
	if venue.Name != "Keep Me" {
		t.Errorf("Expected venue to be unchanged, got %s", venue.Name)
	}
}

func TestUpdateVenueNotFound(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)

	resp := postForm(router, "/venues/42/edit", venueValues("Ghost"))
	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.Code)
	}
}

func TestUpdateVenueStoreFailureRedirects(t *testing.T) {
	db := setupTestDB(t)
	s := setupTestStore(t, db)
	router := setupTestRouter(s)
	createTestVenue(t, s, "Doomed")
	db.Migrator().DropTable(&models.Venue{})

	resp := postForm(router, "/venues/1/edit", venueValues("Still Doomed"))
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("Expected status 303, got %d", resp.Code)
	}
	if resp.Header().Get("Location") != "/venues/1" {
		t.Errorf("Expected redirect to /venues/1, got %s", resp.Header().Get("Location"))
	}
}

func TestDeleteVenue(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)
	createTestVenue(t, s, "Short Lived")

	req, _ := http.NewRequest("DELETE", "/venues/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}
	var body map[string]bool
	json.Unmarshal(resp.Body.Bytes(), &body)
	if !body["success"] {
		t.Error("Expected success to be true")
	}
	if _, err := s.GetVenue(context.Background(), 1); err != store.ErrNotFound {
		t.Errorf("Expected venue to be deleted, got %v", err)
	}

	// Deleting again is a no-op
	req, _ = http.NewRequest("DELETE", "/venues/1", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200 on second delete, got %d", resp.Code)
	}
}

func TestDeleteVenueLinkRedirectsHome(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)
	createTestVenue(t, s, "Short Lived")

	resp := get(router, "/venues/delete/1", "")
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("Expected status 303, got %d", resp.Code)
	}
	if resp.Header().Get("Location") != "/" {
		t.Errorf("Expected redirect to /, got %s", resp.Header().Get("Location"))
	}

	missing := get(router, "/venues/delete/77", "")
	if missing.Code != http.StatusSeeOther {
		t.Errorf("Expected status 303 for missing venue, got %d", missing.Code)
	}

	for _, path := range []string{"/venues/delete/abc", "/venues/delete/0"} {
		resp := get(router, path, "")
		if resp.Code != http.StatusSeeOther || resp.Header().Get("Location") != "/" {
			t.Errorf("%s: expected 303 to /, got %d %s", path, resp.Code, resp.Header().Get("Location"))
		}
	}

	bad := get(router, "/venues/delete/abc", "")
	next := get(router, "/venues", "", bad.Result().Cookies()...)
	if !strings.Contains(next.Body.String(), "An error occurred. Venue could not be deleted.") {
		t.Error("Expected the delete error flash after an unreadable id")
	}
}

func TestNewVenueForm(t *testing.T) {
	s := setupTestStore(t, setupTestDB(t))
	router := setupTestRouter(s)

	resp := get(router, "/venues/create", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `action="/venues/create"`) {
		t.Error("Expected create form")
	}
}
