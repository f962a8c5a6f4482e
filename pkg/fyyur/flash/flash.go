// Package flash carries one-shot user messages across a redirect.
//
// Messages added while handling a request are kept on the gin context. If the
// handler renders a page they are shown right away; if it redirects, Persist
// hands them to a Backend so the next page can show them.
package flash

import (
	"log"

	"github.com/gin-gonic/gin"
)

const (
	pendingKey = "fyyur.flash.pending"
	loadedKey  = "fyyur.flash.loaded"
)

// Backend stores messages between two requests
type Backend interface {
	// Load returns the stored messages and clears them
	Load(c *gin.Context) ([]string, error)
	// Save replaces the stored messages
	Save(c *gin.Context, messages []string) error
}

// Flasher manages flash messages on top of a Backend
type Flasher struct {
	backend Backend
}

// New creates a Flasher. A nil backend keeps messages for the current request only.
func New(backend Backend) *Flasher {
	return &Flasher{backend: backend}
}

// Add queues a message for display
func (f *Flasher) Add(c *gin.Context, message string) {
	pending := c.GetStringSlice(pendingKey)
	c.Set(pendingKey, append(pending, message))
}

// Messages returns stored messages followed by the ones added during this request,
// and clears both.
func (f *Flasher) Messages(c *gin.Context) []string {
	messages := f.load(c)
	messages = append(messages, c.GetStringSlice(pendingKey)...)
	c.Set(pendingKey, []string(nil))
	return messages
}

// Persist saves unread and pending messages so they survive a redirect
func (f *Flasher) Persist(c *gin.Context) {
	messages := f.Messages(c)
	if f.backend == nil || len(messages) == 0 {
		return
	}
	if err := f.backend.Save(c, messages); err != nil {
		log.Printf("Warning: failed to save flash messages: %v", err)
	}
}

func (f *Flasher) load(c *gin.Context) []string {
	if f.backend == nil || c.GetBool(loadedKey) {
		return nil
	}
	c.Set(loadedKey, true)

	messages, err := f.backend.Load(c)
	if err != nil {
		log.Printf("Warning: failed to load flash messages: %v", err)
		return nil
	}
	return messages
}
