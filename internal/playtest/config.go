package playtest

import "time"

// Config holds configuration for a playtest run.
type Config struct {
	BaseURL    string        // Base URL of the engine
	NumResults int           // Number of level results to generate
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	LogFile    string        // Log file for run output
	Verbose    bool          // Enable verbose logging
}

// Result mirrors the level result wire shape accepted by the engine.
type Result struct {
	ResultID  string  `json:"resultId"`
	LevelID   string  `json:"levelId"`
	Completed bool    `json:"completed"`
	Mistakes  int     `json:"mistakes"`
	Duration  float64 `json:"duration"`
	MaxCombo  int     `json:"maxCombo"`
}

// AckResponse mirrors the engine's result acknowledgement.
type AckResponse struct {
	Status        string   `json:"status"`
	Duplicate     bool     `json:"duplicate"`
	Stars         int      `json:"stars"`
	NewlyUnlocked []string `json:"newlyUnlocked"`
}

// StatsResponse mirrors the global stats record.
type StatsResponse struct {
	TotalStars           int `json:"totalStars"`
	TotalLevelsCompleted int `json:"totalLevelsCompleted"`
	TotalGamesPlayed     int `json:"totalGamesPlayed"`
	PerfectGames         int `json:"perfectGames"`
	AchievementsUnlocked int `json:"achievementsUnlocked"`
}

// Stats holds playtest run statistics.
type Stats struct {
	ResultsGenerated   int
	ResultsSubmitted   int
	ResultsApplied     int
	ResultsDuplicate   int
	ResultsFailed      int
	CompletionsApplied int
	StarsEarned        int
	AchievementsSeen   int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
