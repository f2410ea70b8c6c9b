package terminal

import (
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-towers/core"
)

// Service manages the tcell screen lifecycle and input polling
type Service struct {
	screen  tcell.Screen
	mode    ColorMode
	canvas  *Canvas
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
	closed  bool
}

// NewService creates a new terminal service
func NewService() *Service {
	return &Service{
		eventCh: make(chan tcell.Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "terminal"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: ColorMode (optional, defaults to DetectColorMode())
// args[1]: tcell.Screen (optional, tests pass a simulation screen)
func (s *Service) Init(args ...any) error {
	s.mode = DetectColorMode()
	if len(args) > 0 {
		if cm, ok := args[0].(ColorMode); ok {
			s.mode = cm
		}
	}
	if len(args) > 1 {
		if scr, ok := args[1].(tcell.Screen); ok {
			s.screen = scr
		}
	}

	if s.screen == nil {
		scr, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal screen: %w", err)
		}
		s.screen = scr
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	s.screen.EnableMouse(tcell.MouseMotionEvents)
	s.screen.EnableFocus()
	s.screen.HideCursor()
	core.SetCrashReset(s.screen.Fini)

	cols, rows := s.screen.Size()
	s.canvas = NewCanvas(cols, rows, s.mode)
	log.Printf("[terminal] %dx%d cells, %s color", cols, rows, s.mode)
	return nil
}

// Start implements service.Service, launches the input polling goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	if s.running || s.screen == nil {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	core.Go(s.pollLoop)
	return nil
}

// pollLoop reads input events until the screen is finalized
func (s *Service) pollLoop() {
	defer close(s.doneCh)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop implements service.Service, finalizing the screen unblocks PollEvent
func (s *Service) Stop() error {
	s.mu.Lock()
	if s.closed || s.screen == nil {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	wasRunning := s.running
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.screen.Fini()
	if wasRunning {
		<-s.doneCh
	}
	core.SetCrashReset(nil)
	return nil
}

// Screen returns the wrapped screen
func (s *Service) Screen() tcell.Screen {
	return s.screen
}

// Canvas returns the raster sized to the screen
func (s *Service) Canvas() *Canvas {
	return s.canvas
}

// Events returns the input event channel
func (s *Service) Events() <-chan tcell.Event {
	return s.eventCh
}

// Resize follows a terminal resize
func (s *Service) Resize(cols, rows int) {
	s.canvas.Resize(cols, rows)
	s.screen.Sync()
}

// Present flushes the canvas to the screen
func (s *Service) Present() {
	s.canvas.Flush(s.screen)
}
