package importexport

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/fyyur/pkg/fyyur/store"
)

// Handler handles import/export requests
type Handler struct {
	store *store.Store
}

// NewHandler creates a new import/export handler
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// Import loads venues, artists and shows from a directory document
// @Summary Import a directory
// @Description Ids in the document are remapped; shows pointing at unknown entries are skipped
// @Tags importexport
// @Accept json
// @Produce json
// @Param directory body store.Directory true "Directory"
// @Success 200 {object} store.ImportResult
// @Failure 400 {object} map[string]string "Invalid document"
// @Router /import [post]
func (h *Handler) Import(c *gin.Context) {
	var dir store.Directory
	if err := c.ShouldBindJSON(&dir); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.store.Import(c.Request.Context(), &dir)
	if err != nil {
		log.Printf("Error: import directory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import directory"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Export dumps every venue, artist and show
// @Summary Export the directory
// @Tags importexport
// @Produce json
// @Param download query bool false "Send as an attachment"
// @Success 200 {object} store.Directory
// @Router /export [get]
func (h *Handler) Export(c *gin.Context) {
	dir, err := h.store.Export(c.Request.Context())
	if err != nil {
		log.Printf("Error: export directory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export directory"})
		return
	}

	// Set content disposition for download
	if c.Query("download") == "true" {
		c.Header("Content-Disposition", "attachment; filename=fyyur-export.json")
	}

	c.JSON(http.StatusOK, dir)
}

// RegisterRoutes registers import/export routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/import", h.Import)
	rg.GET("/export", h.Export)
}
