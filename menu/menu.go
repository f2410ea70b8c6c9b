package menu

import (
	"fmt"

	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/event"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Controls is the audio surface the menu adjusts
type Controls interface {
	Enabled() bool
	SetEnabled(on bool)
	MusicVolume() float64
	SetMusicVolume(v float64)
	EffectsVolume() float64
	SetEffectsVolume(v float64)
}

// Menu is the pause overlay, topmost in poll order
// While visible it holds capture so nothing below sees input
type Menu struct {
	visible bool
	quit    bool
	audio   Controls
	sound   core.Sound

	pointer vmath.Vec2
	items   []item
	hover   int
}

type item struct {
	key    string
	label  func() string
	action func()
}

// New creates a visible menu, audio may be nil
func New(audio Controls, sound core.Sound) *Menu {
	if sound == nil {
		sound = core.Silent
	}
	m := &Menu{visible: true, audio: audio, sound: sound, hover: -1}

	m.items = []item{
		{"enter", func() string { return "resume" }, m.Hide},
		{"m", func() string { return "sound " + m.onOff() }, m.toggleSound},
		{"[ ]", func() string { return fmt.Sprintf("music %s", m.percent(Controls.MusicVolume)) }, nil},
		{"- =", func() string { return fmt.Sprintf("effects %s", m.percent(Controls.EffectsVolume)) }, nil},
		{"q", func() string { return "quit" }, m.requestQuit},
	}
	return m
}

// Visible reports whether the menu is shown and the game paused
func (m *Menu) Visible() bool { return m.visible }

// QuitRequested reports whether the player chose quit
func (m *Menu) QuitRequested() bool { return m.quit }

// Show opens the menu
func (m *Menu) Show() {
	if !m.visible {
		m.visible = true
		m.sound.Play(core.SoundMenu, 0.5, 0)
	}
}

// Hide closes the menu
func (m *Menu) Hide() {
	if m.visible {
		m.visible = false
		m.sound.Play(core.SoundMenu, 0.5, 0)
	}
}

// Update handles toggles and, while visible, consumes every event
func (m *Menu) Update(f *event.Frame) {
	for _, ev := range f.Events.Pending() {
		if ev.Kind == event.FocusLost {
			m.Show()
			break
		}
	}
	if m.visible {
		f.Events.Capture(m)
	}

	m.pointer = f.Pointer
	f.Events.Poll(m, func(ev event.Event) event.Result {
		if ev.Kind == event.KeyDown && ev.Key == event.KeyEscape {
			if m.visible {
				m.Hide()
			} else {
				m.Show()
			}
			return event.Consume()
		}
		if !m.visible {
			return event.Keep
		}
		m.handle(ev)
		return event.Consume()
	})

	if m.visible {
		f.Events.Capture(m)
		m.hover = m.itemAt(m.pointer)
		if m.hover >= 0 && m.items[m.hover].action != nil {
			f.Cursor = core.CursorPointer
		}
	} else if f.Events.IsCaptured(m) {
		f.Events.ReleaseCapture()
	}
}

func (m *Menu) handle(ev event.Event) {
	switch ev.Kind {
	case event.PointerMove:
		m.pointer = ev.Position
	case event.PointerDown:
		if i := m.itemAt(m.pointer); i >= 0 && m.items[i].action != nil {
			m.items[i].action()
		}
	case event.KeyDown:
		switch ev.Key {
		case event.KeyEnter, event.KeySpace:
			m.Hide()
		case "m":
			m.toggleSound()
		case "[":
			m.adjust(Controls.MusicVolume, Controls.SetMusicVolume, -parameter.VolumeStep)
		case "]":
			m.adjust(Controls.MusicVolume, Controls.SetMusicVolume, parameter.VolumeStep)
		case "-":
			m.adjust(Controls.EffectsVolume, Controls.SetEffectsVolume, -parameter.VolumeStep)
		case "=":
			m.adjust(Controls.EffectsVolume, Controls.SetEffectsVolume, parameter.VolumeStep)
		case "q":
			m.requestQuit()
		}
	}
}

func (m *Menu) toggleSound() {
	if m.audio == nil {
		return
	}
	m.audio.SetEnabled(!m.audio.Enabled())
}

func (m *Menu) adjust(get func(Controls) float64, set func(Controls, float64), by float64) {
	if m.audio == nil {
		return
	}
	set(m.audio, vmath.Clamp(get(m.audio)+by, 0, 1))
	m.sound.Play(core.SoundRotate, 0.4, 0)
}

func (m *Menu) requestQuit() {
	m.quit = true
}

func (m *Menu) onOff() string {
	if m.audio == nil {
		return "n/a"
	}
	if m.audio.Enabled() {
		return "on"
	}
	return "off"
}

func (m *Menu) percent(get func(Controls) float64) string {
	if m.audio == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d%%", int(get(m.audio)*100+0.5))
}
