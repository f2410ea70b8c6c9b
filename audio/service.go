package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-towers/asset"
)

// Service wraps Engine as a service.Service
// Handles graceful degradation when no output device is available
type Service struct {
	engine   *Engine
	assets   *asset.Service
	disabled atomic.Bool
}

// NewService creates the audio service, assets may be nil for procedural sound only
func NewService(assets *asset.Service) *Service {
	return &Service{assets: assets}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	if s.assets == nil {
		return nil
	}
	return []string{"assets"}
}

// Init implements service.Service
// args[0]: Config - engine settings, defaults to LoadConfig
func (s *Service) Init(args ...any) error {
	cfg := LoadConfig()
	if len(args) > 0 {
		if c, ok := args[0].(Config); ok {
			cfg = c
		}
	}
	s.engine = NewEngine(cfg)
	if s.assets != nil {
		s.engine.Register(s.assets.Library())
	}
	return nil
}

// Start implements service.Service
// Device failure leaves the engine silent and is not returned
func (s *Service) Start() error {
	if s.engine == nil {
		return nil
	}
	if err := s.engine.Start(); err != nil {
		log.Printf("[audio] output unavailable, continuing silent: %v", err)
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.engine != nil {
		s.engine.Stop()
	}
	return nil
}

// Disabled reports whether the output device failed to open
func (s *Service) Disabled() bool {
	return s.disabled.Load()
}

// Engine returns the engine, usable but silent when disabled
func (s *Service) Engine() *Engine {
	return s.engine
}
