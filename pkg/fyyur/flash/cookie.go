package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultCookieName is the cookie used by CookieBackend
const DefaultCookieName = "fyyur_flash"

// CookieBackend keeps messages in a client-side cookie
type CookieBackend struct {
	Name   string
	Secure bool
}

// NewCookieBackend creates a cookie backend with the default cookie name
func NewCookieBackend(secure bool) *CookieBackend {
	return &CookieBackend{Name: DefaultCookieName, Secure: secure}
}

// Load decodes and clears the cookie
func (b *CookieBackend) Load(c *gin.Context) ([]string, error) {
	raw, err := c.Cookie(b.Name)
	if err != nil {
		if err == http.ErrNoCookie {
			return nil, nil
		}
		return nil, err
	}
	c.SetCookie(b.Name, "", -1, "/", "", b.Secure, true)

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, err
	}
	var messages []string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// Save encodes messages into a session cookie
func (b *CookieBackend) Save(c *gin.Context, messages []string) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(b.Name, base64.RawURLEncoding.EncodeToString(data), 0, "/", "", b.Secure, true)
	return nil
}
