// Package store is the query/command layer over the directory tables.
//
// Every mutation runs inside a single gorm transaction: on any error the
// transaction is rolled back and the connection is handed back to the pool,
// whether the call succeeded, failed or was rejected by validation.
package store

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/mikepea/fyyur/pkg/fyyur/models"
	"gorm.io/gorm"
)

// Publisher receives domain events after a mutation has been committed
type Publisher interface {
	Publish(routingKey string, payload any) error
}

// Store wraps a database handle. It is safe for concurrent use.
type Store struct {
	db        *gorm.DB
	now       func() time.Time
	publisher Publisher
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the clock used to split upcoming and past shows
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithPublisher sends committed changes to p. A nil publisher disables events.
func WithPublisher(p Publisher) Option {
	return func(s *Store) {
		s.publisher = p
	}
}

// New creates a store on top of db
func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the store's current time in UTC
func (s *Store) Now() time.Time {
	return s.now().UTC()
}

// Ping checks that the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) publish(routingKey string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s: %v", routingKey, err)
	}
}

// SearchResult is the outcome of a name search
type SearchResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

func listAll[T any](ctx context.Context, db *gorm.DB, op string) ([]T, error) {
	rows := []T{}
	if err := db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, &OperationError{Op: op, Err: err}
	}
	return rows, nil
}

func findByID[T any](ctx context.Context, db *gorm.DB, id uint, op string) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &OperationError{Op: op, Err: err}
	}
	return &row, nil
}

// searchByName matches term as a case-insensitive substring of name. The
// term is used as given, surrounding spaces included.
func searchByName[T any](ctx context.Context, db *gorm.DB, term, op string) (*SearchResult[T], error) {
	rows := []T{}
	pattern := "%" + escapeLike(models.NameKey(term)) + "%"
	if err := db.WithContext(ctx).
		Where("name_key LIKE ? ESCAPE '!'", pattern).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, &OperationError{Op: op, Err: err}
	}
	return &SearchResult[T]{Count: len(rows), Data: rows}, nil
}

func recent[T any](ctx context.Context, db *gorm.DB, limit int, op string) ([]T, error) {
	rows := []T{}
	if err := db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, &OperationError{Op: op, Err: err}
	}
	return rows, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike makes LIKE wildcards in user input match literally
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func normalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
