package flash

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionCookieName holds the id of the Redis-backed flash session
const SessionCookieName = "fyyur_session"

// RedisBackend keeps messages in a Redis list keyed by a session cookie
type RedisBackend struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	secure bool
}

// NewRedisBackend creates a Redis backend. Entries expire after ttl.
func NewRedisBackend(client *redis.Client, ttl time.Duration, secure bool) *RedisBackend {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisBackend{client: client, ttl: ttl, prefix: "flash", secure: secure}
}

// Key returns the Redis key for a session id
func (b *RedisBackend) Key(sessionID string) string {
	return b.prefix + ":" + sessionID
}

// Load reads and deletes the session's messages
func (b *RedisBackend) Load(c *gin.Context) ([]string, error) {
	id, ok := sessionID(c)
	if !ok {
		return nil, nil
	}

	ctx := c.Request.Context()
	key := b.Key(id)

	var lrange *redis.StringSliceCmd
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lrange.Val(), nil
}

// Save replaces the session's messages, starting a session if needed
func (b *RedisBackend) Save(c *gin.Context, messages []string) error {
	id, ok := sessionID(c)
	if !ok {
		id = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, id, 0, "/", "", b.secure, true)
	}

	ctx := c.Request.Context()
	key := b.Key(id)

	values := make([]interface{}, len(messages))
	for i, m := range messages {
		values[i] = m
	}

	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.RPush(ctx, key, values...)
			pipe.Expire(ctx, key, b.ttl)
		}
		return nil
	})
	return err
}

// sessionID returns the session cookie if it holds a well-formed id
func sessionID(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
