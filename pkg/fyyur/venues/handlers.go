package venues

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/fyyur/pkg/fyyur/forms"
	"github.com/mikepea/fyyur/pkg/fyyur/models"
	"github.com/mikepea/fyyur/pkg/fyyur/store"
	"github.com/mikepea/fyyur/pkg/fyyur/web"
)

// Handler handles venue-related requests
type Handler struct {
	store *store.Store
	view  *web.View
}

// NewHandler creates a new venues handler
func NewHandler(s *store.Store, v *web.View) *Handler {
	return &Handler{store: s, view: v}
}

// SearchRequest is the venue search submission
type SearchRequest struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}

// VenueResponse is a venue with its upcoming and past shows
type VenueResponse struct {
	*models.Venue
	*store.ShowBuckets
	UpcomingShowsCount int `json:"upcoming_shows_count"`
	PastShowsCount     int `json:"past_shows_count"`
}

// List returns all venues grouped by area
// @Summary List venues
// @Description Venues grouped by city and state, each with its number of upcoming shows
// @Tags venues
// @Produce json,html
// @Success 200 {object} map[string][]store.Area
// @Router /venues [get]
func (h *Handler) List(c *gin.Context) {
	areas, err := h.store.VenueAreas(c.Request.Context())
	if err != nil {
		h.view.Error(c, "list venues", err)
		return
	}
	h.view.Render(c, http.StatusOK, "pages/venues.html", gin.H{"Areas": areas}, gin.H{"areas": areas})
}

// Search finds venues whose name contains the search term
// @Summary Search venues
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param request body SearchRequest true "Search term"
// @Success 200 {object} store.SearchResult[store.Summary]
// @Router /venues/search [post]
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search request"})
		return
	}

	ctx := c.Request.Context()
	found, err := h.store.SearchVenues(ctx, req.SearchTerm)
	if err != nil {
		h.view.Error(c, "search venues", err)
		return
	}
	summaries, err := h.store.VenueSummaries(ctx, found.Data)
	if err != nil {
		h.view.Error(c, "search venues", err)
		return
	}

	results := store.SearchResult[store.Summary]{Count: found.Count, Data: summaries}
	h.view.Render(c, http.StatusOK, "pages/search_venues.html", gin.H{
		"Results":    results,
		"SearchTerm": req.SearchTerm,
	}, results)
}

// Get returns a venue with its shows split into upcoming and past
// @Summary Get a venue
// @Tags venues
// @Produce json,html
// @Param id path int true "Venue ID"
// @Success 200 {object} VenueResponse
// @Failure 404 {object} map[string]string "Venue not found"
// @Router /venues/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := web.ParseID(c, "id")
	if !ok {
		h.view.NotFound(c)
		return
	}

	ctx := c.Request.Context()
	venue, err := h.store.GetVenue(ctx, id)
	if err != nil {
		h.view.Error(c, "get venue", err)
		return
	}
	shows, err := h.store.VenueShows(ctx, id)
	if err != nil {
		h.view.Error(c, "get venue shows", err)
		return
	}

	h.view.Render(c, http.StatusOK, "pages/show_venue.html", gin.H{
		"Venue": venue,
		"Shows": shows,
	}, VenueResponse{
		Venue:              venue,
		ShowBuckets:        shows,
		UpcomingShowsCount: len(shows.Upcoming),
		PastShowsCount:     len(shows.Past),
	})
}

// NewForm renders an empty venue form
func (h *Handler) NewForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "forms/new_venue.html", 0, &forms.VenueForm{}, forms.Errors{})
}

// Create lists a new venue
// @Summary Create a venue
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param venue body forms.VenueForm true "Venue"
// @Success 201 {object} models.Venue
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]string "Venue could not be listed"
// @Router /venues/create [post]
func (h *Handler) Create(c *gin.Context) {
	form := &forms.VenueForm{}
	if errs := forms.Bind(c, form); !errs.Empty() {
		h.view.Invalid(c, "forms/new_venue.html", h.formData(0, form), errs)
		return
	}

	venue := form.Venue()
	if err := h.store.CreateVenue(c.Request.Context(), venue); err != nil {
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			h.view.Invalid(c, "forms/new_venue.html", h.formData(0, form), ve.Fields)
			return
		}
		log.Printf("Error: create venue %q: %v", form.Name, err)
		h.view.Fail(c, "An error occurred. Venue "+form.Name+" could not be listed.")
		return
	}

	if web.WantsJSON(c) {
		c.JSON(http.StatusCreated, venue)
		return
	}
	h.view.Flash(c, "Venue "+venue.Name+" was successfully listed!")
	h.view.Redirect(c, venuePath(venue.ID))
}

// EditForm renders the venue form pre-filled with the stored values
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := web.ParseID(c, "id")
	if !ok {
		h.view.NotFound(c)
		return
	}
	venue, err := h.store.GetVenue(c.Request.Context(), id)
	if err != nil {
		h.view.Error(c, "get venue", err)
		return
	}
	h.renderForm(c, http.StatusOK, "forms/edit_venue.html", id, forms.NewVenueForm(venue), forms.Errors{})
}

// Update replaces a venue with the submitted values
// @Summary Update a venue
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param id path int true "Venue ID"
// @Param venue body forms.VenueForm true "Venue"
// @Success 200 {object} models.Venue
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]string "Venue not found"
// @Router /venues/{id}/edit [post]
func (h *Handler) Update(c *gin.Context) {
	id, ok := web.ParseID(c, "id")
	if !ok {
		h.view.NotFound(c)
		return
	}

	form := &forms.VenueForm{}
	if errs := forms.Bind(c, form); !errs.Empty() {
		h.view.Invalid(c, "forms/edit_venue.html", h.formData(id, form), errs)
		return
	}

	venue, err := h.store.UpdateVenue(c.Request.Context(), id, form.Venue())
	if err != nil {
		var ve *store.ValidationError
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.view.NotFound(c)
		case errors.As(err, &ve):
			h.view.Invalid(c, "forms/edit_venue.html", h.formData(id, form), ve.Fields)
		case web.WantsJSON(c):
			log.Printf("Error: update venue %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Venue could not be updated"})
		default:
			log.Printf("Error: update venue %d: %v", id, err)
			h.view.Redirect(c, venuePath(id))
		}
		return
	}

	if web.WantsJSON(c) {
		c.JSON(http.StatusOK, venue)
		return
	}
	h.view.Flash(c, "Venue "+venue.Name+" was successfully updated!")
	h.view.Redirect(c, venuePath(id))
}

// DeleteAndRedirect removes a venue and always sends the browser home
func (h *Handler) DeleteAndRedirect(c *gin.Context) {
	id, ok := web.ParseID(c, "id")
	if !ok {
		h.view.Flash(c, "An error occurred. Venue could not be deleted.")
		h.view.Redirect(c, "/")
		return
	}
	if err := h.store.DeleteVenue(c.Request.Context(), id); err != nil {
		log.Printf("Error: delete venue %d: %v", id, err)
		h.view.Flash(c, "An error occurred. Venue could not be deleted.")
	} else {
		h.view.Flash(c, "Venue was successfully deleted.")
	}
	h.view.Redirect(c, "/")
}

// Delete removes a venue. Its shows are kept without a venue.
// @Summary Delete a venue
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]interface{} "Venue could not be deleted"
// @Router /venues/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := web.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}
	if err := h.store.DeleteVenue(c.Request.Context(), id); err != nil {
		log.Printf("Error: delete venue %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Venue could not be deleted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) formData(id uint, form *forms.VenueForm) gin.H {
	return gin.H{
		"ID":     id,
		"Form":   form,
		"States": forms.States,
		"Genres": forms.Genres,
	}
}

func (h *Handler) renderForm(c *gin.Context, code int, page string, id uint, form *forms.VenueForm, errs forms.Errors) {
	data := h.formData(id, form)
	data["Errors"] = errs
	h.view.Render(c, code, page, data, gin.H{
		"form":   form,
		"states": forms.States,
		"genres": forms.Genres,
	})
}

func venuePath(id uint) string {
	return "/venues/" + strconv.FormatUint(uint64(id), 10)
}

// RegisterRoutes registers venue routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/venues")
	g.GET("", h.List)
	g.POST("/search", h.Search)
	g.GET("/create", h.NewForm)
	g.POST("/create", h.Create)
	g.GET("/delete/:id", h.DeleteAndRedirect)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/edit", h.EditForm)
	g.POST("/:id/edit", h.Update)
}
