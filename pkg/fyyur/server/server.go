// Package server wires the handlers of every directory section into one gin engine.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/fyyur/pkg/fyyur/artists"
	"github.com/mikepea/fyyur/pkg/fyyur/flash"
	"github.com/mikepea/fyyur/pkg/fyyur/importexport"
	"github.com/mikepea/fyyur/pkg/fyyur/shows"
	"github.com/mikepea/fyyur/pkg/fyyur/store"
	"github.com/mikepea/fyyur/pkg/fyyur/venues"
	"github.com/mikepea/fyyur/pkg/fyyur/web"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mikepea/fyyur/api/swagger"
)

// RecentLimit is the number of venues and artists shown on the home page
const RecentLimit = 10

// Options configures the router
type Options struct {
	// Flasher carries flash messages across redirects. Nil keeps them per request.
	Flasher *flash.Flasher
	// RequestLog enables gin's request logger
	RequestLog bool
}

// NewRouter builds the gin engine serving the directory
func NewRouter(s *store.Store, opts Options) (*gin.Engine, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	view := web.NewView(opts.Flasher)

	r := gin.New()
	r.HTMLRender = renderer
	if opts.RequestLog {
		r.Use(gin.Logger())
	}
	r.Use(view.Recovery())

	r.GET("/health", health(s))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := r.Group("")
	root.GET("/", home(s, view))

	venues.NewHandler(s, view).RegisterRoutes(root)
	artists.NewHandler(s, view).RegisterRoutes(root)
	shows.NewHandler(s, view).RegisterRoutes(root)
	importexport.NewHandler(s).RegisterRoutes(root)

	r.NoRoute(view.NotFound)
	return r, nil
}

func home(s *store.Store, view *web.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		recentVenues, err := s.RecentVenues(ctx, RecentLimit)
		if err != nil {
			log.Printf("Warning: failed to load recent venues: %v", err)
		}
		recentArtists, err := s.RecentArtists(ctx, RecentLimit)
		if err != nil {
			log.Printf("Warning: failed to load recent artists: %v", err)
		}

		if web.WantsJSON(c) {
			c.JSON(http.StatusOK, gin.H{
				"recent_venues":  recentVenues,
				"recent_artists": recentArtists,
				"messages":       view.Messages(c),
			})
			return
		}
		view.Render(c, http.StatusOK, "pages/home.html", gin.H{
			"RecentVenues":  recentVenues,
			"RecentArtists": recentArtists,
		}, nil)
	}
}

func health(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.Ping(ctx); err != nil {
			log.Printf("Warning: health check failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unavailable",
				"service": "fyyur",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "fyyur",
		})
	}
}
