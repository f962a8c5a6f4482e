package artists

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

// Handler handles artist-related requests
type Handler struct {
	store *store.Store
	view  *web.View
}

// NewHandler creates a new artists handler
func NewHandler(s *store.Store, v *web.View) *Handler {
	return &Handler{store: s, view: v}
}

// SearchRequest is the artist search submission
type SearchRequest struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}

// ArtistResponse is an artist with its upcoming and past shows
type ArtistResponse struct {
	*models.Artist
	*store.ShowBuckets
	UpcomingShowsCount int `json:"upcoming_shows_count"`
	PastShowsCount     int `json:"past_shows_count"`
}

// List returns every artist
// @Summary List artists
// @Description All artists ordered by id, each with its number of upcoming shows
// @Tags artists
// @Produce json,html
// @Success 200 {object} map[string][]store.Summary
// @Router /artists [get]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	artists, err := h.store.ListArtists(ctx)
	if err != nil {
		h.view.Error(c, "list artists", err)
		return
	}
	summaries, err := h.store.ArtistSummaries(ctx, artists)
	if err != nil {
		h.view.Error(c, "list artists", err)
		return
	}
	h.view.Render(c, http.StatusOK, "pages/artists.html", gin.H{"Artists": summaries}, gin.H{"artists": summaries})
}

// Search finds artists whose name contains the search term
// @Summary Search artists
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param request body SearchRequest true "Search term"
// @Success 200 {object} store.SearchResult[store.Summary]
// @Router /artists/search [post]
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search request"})
		return
	}

	ctx := c.Request.Context()
	found, err := h.store.SearchArtists(ctx, req.SearchTerm)
	if err != nil {
		h.view.Error(c, "search artists", err)
		return
	}
	summaries, err := h.store.ArtistSummaries(ctx, found.Data)
	if err != nil {
		h.view.Error(c, "search artists", err)
		return
	}

	results := store.SearchResult[store.Summary]{Count: found.Count, Data: summaries}
	h.view.Render(c, http.StatusOK, "pages/search_artists.html", gin.H{
		"Results":    results,
		"SearchTerm": req.SearchTerm,
	}, results)
}

// Get returns an artist with its shows split into upcoming and past
// @Summary Get an artist
// @Tags artists
// @Produce json,html
// @Param id path int true "Artist ID"
// @Success 200 {object} ArtistResponse
// @Failure 404 {object} map[string]string "Artist not found"
// @Router /artists/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := web.ParseID(c, "id")
	if !ok {
		h.view.NotFound(c)
		return
	}

	ctx := c.Request.Context()
	artist, err := h.store.GetArtist(ctx, id)
	if err != nil {
		h.view.Error(c, "get artist", err)
		return
	}
	shows, err := h.store.ArtistShows(ctx, id)
	if err != nil {
		h.view.Error(c, "get artist shows", err)
		return
	}

	h.view.Render(c, http.StatusOK, "pages/show_artist.html", gin.H{
		"Artist": artist,
		"Shows":  shows,
	}, ArtistResponse{
		Artist:             artist,
		ShowBuckets:        shows,
		UpcomingShowsCount: len(shows.Upcoming),
		PastShowsCount:     len(shows.Past),
	})
}

// NewForm renders an empty artist form
func (h *Handler) NewForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "forms/new_artist.html", 0, &forms.ArtistForm{}, forms.Errors{})
}

// Create lists a new artist
// @Summary Create an artist
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param artist body forms.ArtistForm true "Artist"
// @Success 201 {object} models.Artist
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]string "Artist could not be listed"
// @Router /artists/create [post]
func (h *Handler) Create(c *gin.Context) {
	form := &forms.ArtistForm{}
	if errs := forms.Bind(c, form); !errs.Empty() {
		h.view.Invalid(c, "forms/new_artist.html", h.formData(0, form), errs)
		return
	}

	artist := form.Artist()
	if err := h.store.CreateArtist(c.Request.Context(), artist); err != nil {
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			h.view.Invalid(c, "forms/new_artist.html", h.formData(0, form), ve.Fields)
			return
		}
		log.Printf("Error: create artist %q: %v", form.Name, err)
		h.view.Fail(c, "An error occurred. Artist "+form.Name+" could not be listed.")
		return
	}

	if web.WantsJSON(c) {
		c.JSON(http.StatusCreated, artist)
		return
	}
	h.view.Flash(c, "Artist "+artist.Name+" was successfully listed!")
	h.view.Redirect(c, artistPath(artist.ID))
}

// EditForm renders the artist form pre-filled with the stored values
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := web.ParseID(c, "id")
	if !ok {
		h.view.NotFound(c)
		return
	}
	artist, err := h.store.GetArtist(c.Request.Context(), id)
	if err != nil {
		h.view.Error(c, "get artist", err)
		return
	}
	h.renderForm(c, http.StatusOK, "forms/edit_artist.html", id, forms.NewArtistForm(artist), forms.Errors{})
}

// Update replaces an artist with the submitted values
// @Summary Update an artist
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param id path int true "Artist ID"
// @Param artist body forms.ArtistForm true "Artist"
// @Success 200 {object} models.Artist
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]string "Artist not found"
// @Router /artists/{id}/edit [post]
func (h *Handler) Update(c *gin.Context) {
	id, ok := web.ParseID(c, "id")
	if !ok {
		h.view.NotFound(c)
		return
	}

	form := &forms.ArtistForm{}
	if errs := forms.Bind(c, form); !errs.Empty() {
		h.view.Invalid(c, "forms/edit_artist.html", h.formData(id, form), errs)
		return
	}

	artist, err := h.store.UpdateArtist(c.Request.Context(), id, form.Artist())
	if err != nil {
		var ve *store.ValidationError
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.view.NotFound(c)
		case errors.As(err, &ve):
			h.view.Invalid(c, "forms/edit_artist.html", h.formData(id, form), ve.Fields)
		case web.WantsJSON(c):
			log.Printf("Error: update artist %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Artist could not be updated"})
		default:
			log.Printf("Error: update artist %d: %v", id, err)
			h.view.Redirect(c, artistPath(id))
		}
		return
	}

	if web.WantsJSON(c) {
		c.JSON(http.StatusOK, artist)
		return
	}
	h.view.Flash(c, "Artist "+artist.Name+" was successfully updated!")
	h.view.Redirect(c, artistPath(id))
}

// DeleteAndRedirect removes an artist and always sends the browser home
func (h *Handler) DeleteAndRedirect(c *gin.Context) {
	id, ok := web.ParseID(c, "id")
	if !ok {
		h.view.Flash(c, "An error occurred. Artist could not be deleted.")
		h.view.Redirect(c, "/")
		return
	}
	if err := h.store.DeleteArtist(c.Request.Context(), id); err != nil {
		log.Printf("Error: delete artist %d: %v", id, err)
		h.view.Flash(c, "An error occurred. Artist could not be deleted.")
	} else {
		h.view.Flash(c, "Artist was successfully deleted.")
	}
	h.view.Redirect(c, "/")
}

// Delete removes an artist. Its shows are kept without an artist.
// @Summary Delete an artist
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]interface{} "Artist could not be deleted"
// @Router /artists/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := web.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err := h.store.DeleteArtist(c.Request.Context(), id); err != nil {
		log.Printf("Error: delete artist %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Artist could not be deleted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) formData(id uint, form *forms.ArtistForm) gin.H {
	return gin.H{
		"ID":     id,
		"Form":   form,
		"States": forms.States,
		"Genres": forms.Genres,
	}
}

func (h *Handler) renderForm(c *gin.Context, code int, page string, id uint, form *forms.ArtistForm, errs forms.Errors) {
	data := h.formData(id, form)
	data["Errors"] = errs
	h.view.Render(c, code, page, data, gin.H{
		"form":   form,
		"states": forms.States,
		"genres": forms.Genres,
	})
}

func artistPath(id uint) string {
	return "/artists/" + strconv.FormatUint(uint64(id), 10)
}

// RegisterRoutes registers artist routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/artists")
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
