package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/tabula-historica/snapshot/pkg/domain"
)

// DefaultKey is the key snapshots are stored under when none is configured.
const DefaultKey = "tabula:snapshot:static-project.json"

// Store implements ports.SnapshotStore on a single Redis string key.
type Store struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

// Option configures the Store.
type Option func(*Store)

// WithTTL sets the expiration of the snapshot key. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithKey sets the key the snapshot is stored under.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		key:    DefaultKey,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Describe returns the address and key of the store.
func (s *Store) Describe() string {
	return fmt.Sprintf("redis://%s/%s", s.client.Options().Addr, s.key)
}

// Save stores the snapshot. SET replaces the value in a single command, so readers never see a partial snapshot.
func (s *Store) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: failed to save to redis: %w", domain.ErrWrite, err)
	}
	return nil
}

// Load retrieves the snapshot.
func (s *Store) Load(ctx context.Context) ([]byte, error) {
	val, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, s.Describe())
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
