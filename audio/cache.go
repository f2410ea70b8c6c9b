package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-towers/core"
)

// cueCache stores rendered procedural cues
type cueCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [core.SoundTypeCount]*beep.Buffer
}

func newCueCache(rate beep.SampleRate) *cueCache {
	return &cueCache{format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}}
}

// get returns the cached buffer or renders it on demand
func (c *cueCache) get(st core.SoundType) *beep.Buffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[st] != nil {
		return c.store[st]
	}

	src := synthesize(st, c.format.SampleRate)
	if src == nil {
		return nil
	}
	buf = beep.NewBuffer(c.format)
	buf.Append(src)
	c.store[st] = buf
	return buf
}

// preload renders the cues heard during the first seconds of play
func (c *cueCache) preload() {
	c.get(core.SoundMenu)
	c.get(core.SoundPlace)
	c.get(core.SoundShoot)
}
