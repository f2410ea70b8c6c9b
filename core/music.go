package core

// MusicTrack identifies a looped background track
type MusicTrack int

const (
	MusicNone MusicTrack = iota
	MusicMenu
	MusicCalm
	MusicTense
	MusicIntense
	MusicTrackCount
)

func (m MusicTrack) String() string {
	names := [...]string{"none", "menu", "calm", "tense", "intense"}
	if m >= 0 && int(m) < len(names) {
		return names[m]
	}
	return "unknown"
}

// Music is the background music capability
type Music interface {
	// PlayMusic switches the looped track, fading out the previous one
	PlayMusic(track MusicTrack)
}
