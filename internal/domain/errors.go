package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordNotFound signals a missing content record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnknownSetting signals a preference name with no registered setting.
	ErrUnknownSetting = errors.New("unknown setting")
	// ErrInvalidPreference signals a value outside a setting's domain.
	ErrInvalidPreference = errors.New("invalid preference value")
	// ErrEmptyPlaylist signals a player with no tracks.
	ErrEmptyPlaylist = errors.New("playlist is empty")
	// ErrTrackOutOfRange signals a track index outside the playlist.
	ErrTrackOutOfRange = errors.New("track out of range")
	// ErrInvalidRecord signals a catalog entry that cannot become a record.
	ErrInvalidRecord = errors.New("invalid record")
)

// InvalidPreferenceError wraps ErrInvalidPreference with the offending setting and value.
type InvalidPreferenceError struct {
	Setting string
	Value   string
}

func (e *InvalidPreferenceError) Error() string {
	return fmt.Sprintf("%s: %q is not valid for %s", ErrInvalidPreference.Error(), e.Value, e.Setting)
}

func (e *InvalidPreferenceError) Unwrap() error { return ErrInvalidPreference }

// NewInvalidPreference creates an invalid preference error.
func NewInvalidPreference(setting, value string) error {
	return &InvalidPreferenceError{Setting: setting, Value: value}
}
