package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Setting keys.
const (
	SettingSound       = "sound"
	SettingMusic       = "music"
	SettingSoundVolume = "sound_volume" // Percent, 0 to 100
	SettingMusicVolume = "music_volume" // Percent, 0 to 100
)

// Setting returns the stored value for key and whether it exists.
func (s *Store) Setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores value under key, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// BoolSetting returns the boolean stored under key, or def when it is
// missing or unreadable.
func (s *Store) BoolSetting(key string, def bool) bool {
	v, ok, err := s.Setting(key)
	if err != nil || !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// SetBoolSetting stores a boolean under key.
func (s *Store) SetBoolSetting(key string, v bool) error {
	return s.SetSetting(key, strconv.FormatBool(v))
}

// IntSetting returns the integer stored under key, or def when it is
// missing or unreadable.
func (s *Store) IntSetting(key string, def int) int {
	v, ok, err := s.Setting(key)
	if err != nil || !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// SetIntSetting stores an integer under key.
func (s *Store) SetIntSetting(key string, v int) error {
	return s.SetSetting(key, strconv.Itoa(v))
}
