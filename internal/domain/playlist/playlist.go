package playlist

import (
	"fmt"

	"github.com/kailas-cloud/folio/internal/domain"
)

// Track is one entry of the music player.
type Track struct {
	Title    string `yaml:"title" json:"title"`
	Artist   string `yaml:"artist" json:"artist"`
	Featured string `yaml:"featured" json:"featured,omitempty"`
}

// Playlist is an immutable ordered list of tracks with wrap-around navigation.
type Playlist struct {
	tracks []Track
}

// New creates a Playlist from tracks.
func New(tracks []Track) Playlist {
	c := make([]Track, len(tracks))
	copy(c, tracks)
	return Playlist{tracks: c}
}

// Default returns the player's built-in tracks.
func Default() Playlist {
	return New([]Track{
		{Title: "Butterfly Waltz", Artist: "BRIAN CRAIN", Featured: "DANIELE LEONI"},
		{Title: "River Flows in You", Artist: "YIRUMA"},
		{Title: "Fur Elise", Artist: "BEETHOVEN"},
		{Title: "Forest au lait", Artist: "ZMI"},
	})
}

// Len returns the number of tracks.
func (p Playlist) Len() int { return len(p.tracks) }

// Tracks returns a copy of the track list.
func (p Playlist) Tracks() []Track {
	c := make([]Track, len(p.tracks))
	copy(c, p.tracks)
	return c
}

// Select validates index and returns the track at it.
func (p Playlist) Select(index int) (Track, error) {
	if len(p.tracks) == 0 {
		return Track{}, domain.ErrEmptyPlaylist
	}
	if index < 0 || index >= len(p.tracks) {
		return Track{}, fmt.Errorf("%w: %d not in [0,%d)", domain.ErrTrackOutOfRange, index, len(p.tracks))
	}
	return p.tracks[index], nil
}

// Next returns the index after current, wrapping to the first track.
func (p Playlist) Next(current int) (int, error) {
	return p.step(current, 1)
}

// Prev returns the index before current, wrapping to the last track.
func (p Playlist) Prev(current int) (int, error) {
	return p.step(current, -1)
}

func (p Playlist) step(current, delta int) (int, error) {
	n := len(p.tracks)
	if n == 0 {
		return 0, domain.ErrEmptyPlaylist
	}
	if current < 0 || current >= n {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", domain.ErrTrackOutOfRange, current, n)
	}
	return (current + delta + n) % n, nil
}
