package shows

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/fyyur/pkg/fyyur/forms"
	"github.com/mikepea/fyyur/pkg/fyyur/store"
	"github.com/mikepea/fyyur/pkg/fyyur/web"
)

// Handler handles show-related requests
type Handler struct {
	store *store.Store
	view  *web.View
}

// NewHandler creates a new shows handler
func NewHandler(s *store.Store, v *web.View) *Handler {
	return &Handler{store: s, view: v}
}

// List returns every show with its venue and artist names
// @Summary List shows
// @Tags shows
// @Produce json,html
// @Success 200 {object} map[string][]store.ShowDetail
// @Router /shows [get]
func (h *Handler) List(c *gin.Context) {
	shows, err := h.store.ListShows(c.Request.Context())
	if err != nil {
		h.view.Error(c, "list shows", err)
		return
	}
	h.view.Render(c, http.StatusOK, "pages/shows.html", gin.H{"Shows": shows}, gin.H{"shows": shows})
}

// NewForm renders the show form with the start time set to now
func (h *Handler) NewForm(c *gin.Context) {
	form := forms.NewShowForm(h.store.Now())
	h.view.Render(c, http.StatusOK, "forms/new_show.html", gin.H{
		"Form":   form,
		"Errors": forms.Errors{},
	}, gin.H{"form": form})
}

// Create lists a new show
// @Summary Create a show
// @Tags shows
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param show body forms.ShowForm true "Show"
// @Success 201 {object} models.Show
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]string "Show could not be listed"
// @Router /shows/create [post]
func (h *Handler) Create(c *gin.Context) {
	form := &forms.ShowForm{}
	if errs := forms.Bind(c, form); !errs.Empty() {
		h.view.Invalid(c, "forms/new_show.html", gin.H{"Form": form}, errs)
		return
	}

	show := form.Show()
	if err := h.store.CreateShow(c.Request.Context(), show); err != nil {
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			h.view.Invalid(c, "forms/new_show.html", gin.H{"Form": form}, ve.Fields)
			return
		}
		log.Printf("Error: create show: %v", err)
		h.view.Fail(c, "An error occurred. Show could not be listed.")
		return
	}

	if web.WantsJSON(c) {
		c.JSON(http.StatusCreated, show)
		return
	}
	h.view.Flash(c, "Show was successfully listed!")
	h.view.Redirect(c, "/")
}

// RegisterRoutes registers show routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/shows")
	g.GET("", h.List)
	g.GET("/create", h.NewForm)
	g.POST("/create", h.Create)
}
