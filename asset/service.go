package asset

import (
	"context"
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/lixenwraith/vi-towers/core"
)

// Service loads the library in the background
// Handles stay unresolved until their file arrives, consumers draw fallbacks meanwhile
type Service struct {
	lib     *Library
	workers int

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewService wraps an existing library, the filesystem is bound in Init
func NewService(lib *Library) *Service {
	return &Service{lib: lib, workers: 4}
}

// Name implements service.Service
func (s *Service) Name() string { return "assets" }

// Dependencies implements service.Service
func (s *Service) Dependencies() []string { return nil }

// Init implements service.Service
// args[0]: string - asset directory, empty keeps all handles on fallback
// args[0] may also be an fs.FS for embedded or test filesystems
func (s *Service) Init(args ...any) error {
	if len(args) == 0 || s.lib == nil {
		return nil
	}
	switch v := args[0].(type) {
	case string:
		if v == "" {
			return nil
		}
		if _, err := os.Stat(v); err != nil {
			log.Printf("[asset] directory %q unavailable: %v", v, err)
			return nil
		}
		s.lib.fsys = os.DirFS(v)
	case fs.FS:
		s.lib.fsys = v
	}
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.lib == nil || s.lib.fsys == nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	core.Go(func() {
		defer close(s.done)
		if err := s.lib.Load(ctx, s.workers); err != nil {
			log.Printf("[asset] load finished with errors")
		}
		loaded, failed, total := s.lib.Progress()
		log.Printf("[asset] resolved %d/%d (%d failed)", loaded, total, failed)
	})
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
			<-s.done
		}
	})
	return nil
}

// Library returns the wrapped library
func (s *Service) Library() *Library {
	return s.lib
}
