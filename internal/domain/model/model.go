// Package model contains the persisted domain records passed between layers.
//
// JSON field names match the wire format of the persisted records, so a
// save file written by an earlier build round-trips unchanged.
package model

import (
	"time"
)

// Star score bounds for a single level.
const (
	MinStars     = 0
	MaxStars     = 3
	PerfectStars = 3
)

// LevelProgress tracks a player's best results for a single level.
type LevelProgress struct {
	Stars     int  `json:"stars"`
	Completed bool `json:"completed"`
	Attempts  int  `json:"attempts"`
	// BestTime is the fastest completion in seconds, nil until first completion.
	BestTime   *float64   `json:"bestTime"`
	LastPlayed *time.Time `json:"lastPlayed"`
}

// Validate checks the record invariants.
func (p LevelProgress) Validate() error {
	if p.Stars < MinStars || p.Stars > MaxStars {
		return ErrInvalidStars
	}
	if p.Completed && p.Stars < 1 {
		return ErrCompletedWithoutStars
	}
	if p.Attempts < 0 {
		return ErrNegativeCounter
	}
	if p.BestTime != nil && *p.BestTime < 0 {
		return ErrNegativeDuration
	}
	return nil
}

// GlobalStats is the singleton cross-session aggregate record.
type GlobalStats struct {
	TotalStars           int       `json:"totalStars"`
	TotalLevelsCompleted int       `json:"totalLevelsCompleted"`
	TotalGamesPlayed     int       `json:"totalGamesPlayed"`
	TotalTimePlayed      float64   `json:"totalTimePlayed"` // seconds
	PerfectGames         int       `json:"perfectGames"`
	TotalMistakes        int       `json:"totalMistakes"`
	HighestCombo         int       `json:"highestCombo"`
	FirstPlayedDate      time.Time `json:"firstPlayedDate"`
	LastPlayedDate       time.Time `json:"lastPlayedDate"`
	CurrentStreak        int       `json:"currentStreak"`
	LongestStreak        int       `json:"longestStreak"`
	AchievementsUnlocked int       `json:"achievementsUnlocked"`
}

// DefaultStats returns the first-run stats record stamped at now.
func DefaultStats(now time.Time) GlobalStats {
	return GlobalStats{
		FirstPlayedDate: now,
		LastPlayedDate:  now,
	}
}

// Validate checks the record invariants.
func (s GlobalStats) Validate() error {
	counters := []int{
		s.TotalStars,
		s.TotalLevelsCompleted,
		s.TotalGamesPlayed,
		s.PerfectGames,
		s.TotalMistakes,
		s.HighestCombo,
		s.CurrentStreak,
		s.LongestStreak,
		s.AchievementsUnlocked,
	}
	for _, c := range counters {
		if c < 0 {
			return ErrNegativeCounter
		}
	}
	if s.TotalTimePlayed < 0 {
		return ErrNegativeDuration
	}
	if s.LongestStreak < s.CurrentStreak {
		return ErrStreakInversion
	}
	return nil
}

// AchievementState is the per-achievement unlock record.
// Unlocked is monotonic: once true it never becomes false again.
type AchievementState struct {
	Unlocked     bool       `json:"unlocked"`
	UnlockedDate *time.Time `json:"unlockedDate"`
	Progress     int        `json:"progress"`
}

// SessionStats holds the in-session counters of a single run.
type SessionStats struct {
	GamesPlayed  int `json:"gamesPlayed"`
	StarsEarned  int `json:"starsEarned"`
	MistakesMade int `json:"mistakesMade"`
}

// SessionRecord is the diagnostic log of a single app run, replaced each launch.
type SessionRecord struct {
	SessionID    string       `json:"sessionId"`
	StartTime    time.Time    `json:"startTime"`
	EndTime      *time.Time   `json:"endTime"`
	LevelsPlayed []string     `json:"levelsPlayed"`
	SessionStats SessionStats `json:"sessionStats"`
}

// UserSettings holds audio/haptic/gameplay toggles and volumes. The engine
// reads it only to gate sound-effect side effects.
type UserSettings struct {
	SoundEnabled         bool    `json:"soundEnabled"`
	MusicEnabled         bool    `json:"musicEnabled"`
	MusicVolume          float64 `json:"musicVolume"`
	SfxVolume            float64 `json:"sfxVolume"`
	HapticEnabled        bool    `json:"hapticEnabled"`
	Difficulty           string  `json:"difficulty"` // easy, normal, hard
	Theme                string  `json:"theme"`
	NotificationsEnabled bool    `json:"notificationsEnabled"`
	ShowHints            bool    `json:"showHints"`
	AutoPlayMusic        bool    `json:"autoPlayMusic"`
}

// DefaultSettings returns the first-run settings record.
func DefaultSettings() UserSettings {
	return UserSettings{
		SoundEnabled:         true,
		MusicEnabled:         true,
		MusicVolume:          0.5,
		SfxVolume:            1.0,
		HapticEnabled:        true,
		Difficulty:           "normal",
		Theme:                "default",
		NotificationsEnabled: true,
		ShowHints:            true,
		AutoPlayMusic:        true,
	}
}

// ExportBundle packages the five persisted records plus an export timestamp.
// Nil sections are absent from the bundle; Import leaves them untouched.
type ExportBundle struct {
	Progress     map[string]LevelProgress    `json:"progress,omitempty"`
	Stats        *GlobalStats                `json:"stats,omitempty"`
	Achievements map[string]AchievementState `json:"achievements,omitempty"`
	Session      *SessionRecord              `json:"session,omitempty"`
	Settings     *UserSettings               `json:"settings,omitempty"`
	ExportDate   time.Time                   `json:"exportDate"`
}
