package reconcile

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// LoadFunc produces a freshly built Registry.
type LoadFunc func(ctx context.Context) (*Registry, error)

// Store holds the current Registry and replaces it wholesale on rebuild.
// Concurrent rebuild requests share one build; a failed rebuild keeps the
// previous Registry in place.
type Store struct {
	load   LoadFunc
	ttl    time.Duration
	logger *zap.Logger

	mu      sync.RWMutex
	current *Registry
	built   time.Time

	sf singleflight.Group
}

// ErrNotLoaded is returned by Current before the first successful build.
var ErrNotLoaded = errors.New("registry not loaded")

// NewStore creates a Store. A ttl of zero means a loaded Registry never expires.
func NewStore(load LoadFunc, ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{load: load, ttl: ttl, logger: logger}
}

// NewStaticStore wraps an already built Registry.
func NewStaticStore(reg *Registry) *Store {
	s := NewStore(func(context.Context) (*Registry, error) { return reg, nil }, 0, nil)
	s.current = reg
	s.built = time.Now()
	return s
}

// Current returns the loaded Registry without triggering a build.
func (s *Store) Current() (*Registry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNotLoaded
	}
	return s.current, nil
}

// BuiltAt returns when the current Registry was built.
func (s *Store) BuiltAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.built
}

// Get returns the current Registry, building it first when none is loaded
// or the loaded one has expired. An expired Registry keeps being served
// when the rebuild fails.
func (s *Store) Get(ctx context.Context) (*Registry, error) {
	s.mu.RLock()
	reg, built := s.current, s.built
	s.mu.RUnlock()

	if reg != nil && !s.expired(built) {
		return reg, nil
	}
	fresh, err := s.Reload(ctx)
	if err != nil {
		if reg == nil {
			return nil, err
		}
		s.logger.Warn("Serving expired registry", zap.Time("built_at", built), zap.Error(err))
		return reg, nil
	}
	return fresh, nil
}

// Reload builds a new Registry and swaps it in.
func (s *Store) Reload(ctx context.Context) (*Registry, error) {
	result, err, shared := s.sf.Do("registry", func() (interface{}, error) {
		start := time.Now()
		reg, err := s.load(ctx)
		if err != nil {
			s.logger.Error("Registry rebuild failed, keeping previous registry", zap.Error(err))
			return nil, err
		}

		s.mu.Lock()
		s.current = reg
		s.built = time.Now()
		s.mu.Unlock()

		s.logger.Info("Registry swapped",
			zap.Int("records", reg.Len()),
			zap.Duration("took", time.Since(start)),
		)
		return reg, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Registry rebuild shared with concurrent caller")
	}
	return result.(*Registry), nil
}

func (s *Store) expired(built time.Time) bool {
	if s.ttl == 0 {
		return false
	}
	return time.Since(built) > s.ttl
}
