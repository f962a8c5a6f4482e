// Package web holds the pieces shared by every page handler: HTML rendering,
// JSON negotiation, flash messages and the error pages.
package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/mikepea/fyyur/pkg/fyyur/flash"
	"github.com/mikepea/fyyur/pkg/fyyur/store"
)

// View renders pages and redirects for handlers
type View struct {
	flash *flash.Flasher
}

// NewView creates a view backed by f. A nil Flasher keeps flashes per request.
func NewView(f *flash.Flasher) *View {
	if f == nil {
		f = flash.New(nil)
	}
	return &View{flash: f}
}

// WantsJSON reports whether the client asked for JSON instead of HTML
func WantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	if accept == "" || accept == "*/*" {
		return c.ContentType() == binding.MIMEJSON
	}
	return c.NegotiateFormat(binding.MIMEHTML, binding.MIMEJSON) == binding.MIMEJSON
}

// Flash queues a message for the next rendered page
func (v *View) Flash(c *gin.Context, message string) {
	v.flash.Add(c, message)
}

// Messages returns and clears the flashes waiting for this request
func (v *View) Messages(c *gin.Context) []string {
	return v.flash.Messages(c)
}

// Render writes page as HTML, or jsonData as JSON when the client prefers it
func (v *View) Render(c *gin.Context, code int, page string, data gin.H, jsonData any) {
	if WantsJSON(c) {
		c.JSON(code, jsonData)
		return
	}
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = v.flash.Messages(c)
	c.HTML(code, page, data)
}

// Redirect keeps pending flashes for the next request and redirects with 303
func (v *View) Redirect(c *gin.Context, location string) {
	v.flash.Persist(c)
	c.Redirect(http.StatusSeeOther, location)
}

// Fail flashes message and renders the home page with a 500
func (v *View) Fail(c *gin.Context, message string) {
	if WantsJSON(c) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
		return
	}
	v.Flash(c, message)
	v.Render(c, http.StatusInternalServerError, "pages/home.html", nil, nil)
}

// Invalid re-renders a form with its submitted values and per-field errors
func (v *View) Invalid(c *gin.Context, page string, data gin.H, fields map[string]string) {
	if WantsJSON(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	v.Flash(c, "Please correct the errors below.")
	data["Errors"] = fields
	v.Render(c, http.StatusBadRequest, page, data, nil)
}

// Error renders the page matching a store error. Anything other than
// ErrNotFound is logged under op and shown as a 500.
func (v *View) Error(c *gin.Context, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		v.NotFound(c)
		return
	}
	log.Printf("Error: %s: %v", op, err)
	v.ServerError(c)
}

// NotFound renders the 404 page
func (v *View) NotFound(c *gin.Context) {
	v.Render(c, http.StatusNotFound, "errors/404.html", nil, gin.H{"error": "Not found"})
}

// ServerError renders the 500 page
func (v *View) ServerError(c *gin.Context) {
	v.Render(c, http.StatusInternalServerError, "errors/500.html", nil, gin.H{"error": "Internal server error"})
}

// Recovery turns panics into the 500 page
func (v *View) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ any) {
		v.ServerError(c)
		c.Abort()
	})
}

// ParseID reads a positive integer path parameter
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
