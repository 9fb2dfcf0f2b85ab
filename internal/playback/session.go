package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrorKind classifies fatal errors reported by an HLS engine
type ErrorKind string

const (
	ErrorNetwork ErrorKind = "network"
	ErrorMedia   ErrorKind = "media"
	ErrorOther   ErrorKind = "other"
)

// FatalError is a fatal engine error with its recovery classification
type FatalError struct {
	Kind ErrorKind
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("hls %s error: %v", e.Kind, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// State is the lifecycle state of a playback session
type State string

const (
	StateIdle    State = "idle"
	StatePlaying State = "playing"
	StateFailed  State = "failed"
)

// Engine is the seam to the HLS client. One instance handles one attach;
// Destroy must release network connections and buffers.
type Engine interface {
	Load(ctx context.Context, manifest string) error
	RecoverMedia() error
	Destroy()
}

// EngineFactory builds a fresh engine per attach
type EngineFactory func() Engine

// Session manages the attach/detach lifecycle of HLS engines across
// episode switches. Any previously attached engine is torn down before a
// new one is created. Per attach: a network-fatal load gets exactly one
// reload retry, a media-fatal load gets exactly one recovery call, and
// anything else is terminal for that attach.
type Session struct {
	mu      sync.Mutex
	factory EngineFactory
	logger  *logrus.Logger

	engine   Engine
	manifest string
	state    State
}

// NewSession creates a playback session manager
func NewSession(factory EngineFactory, logger *logrus.Logger) *Session {
	return &Session{
		factory: factory,
		logger:  logger,
		state:   StateIdle,
	}
}

// Attach tears down any current engine, then attaches a new one to the
// given manifest. Teardown is ordered before the new attach even when the
// previous load never completed.
func (s *Session) Attach(ctx context.Context, manifest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teardownLocked()
	s.manifest = manifest

	engine := s.factory()
	s.engine = engine

	err := engine.Load(ctx, manifest)
	if err == nil {
		s.state = StatePlaying
		return nil
	}

	var fatal *FatalError
	if !errors.As(err, &fatal) {
		s.state = StateFailed
		return fmt.Errorf("hls attach failed: %w", err)
	}

	switch fatal.Kind {
	case ErrorNetwork:
		s.logger.WithError(fatal.Err).WithField("manifest", manifest).Warn("HLS network error, reloading source once")
		if rerr := engine.Load(ctx, manifest); rerr == nil {
			s.state = StatePlaying
			return nil
		}
	case ErrorMedia:
		s.logger.WithError(fatal.Err).WithField("manifest", manifest).Warn("HLS media error, attempting recovery once")
		if rerr := engine.RecoverMedia(); rerr == nil {
			s.state = StatePlaying
			return nil
		}
	}

	s.state = StateFailed
	return fmt.Errorf("hls attach failed: %w", err)
}

// Detach destroys the current engine, if any
func (s *Session) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked()
	s.state = StateIdle
	s.manifest = ""
}

// State reports the current session state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Manifest reports the currently attached manifest URL
func (s *Session) Manifest() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manifest
}

func (s *Session) teardownLocked() {
	if s.engine != nil {
		s.engine.Destroy()
		s.engine = nil
	}
}
