// Package playtest drives a running engine over HTTP: it simulates a
// population of play sessions, submits the generated level results, and
// cross-checks the aggregated state the engine reports afterwards.
package playtest

import (
	"context"
	"fmt"
	"time"

	"github.com/Sameer447/ChefsQuest/pkg/logger"
)

// Run executes a complete playtest against a running engine.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting playtest",
		logger.String("baseURL", config.BaseURL),
		logger.Int("results", config.NumResults),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
	)

	if err := checkEngineHealth(ctx, config); err != nil {
		return fmt.Errorf("engine health check failed: %w", err)
	}

	results := generateResults(ctx, config, stats)

	if err := submitResults(ctx, config, results, stats); err != nil {
		return fmt.Errorf("result submission failed: %w", err)
	}

	if err := verifyEngineState(ctx, config, stats); err != nil {
		return fmt.Errorf("state verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "playtest completed successfully")
	return nil
}

// checkEngineHealth verifies the engine is reachable.
func checkEngineHealth(ctx context.Context, config *Config) error {
	client := newHTTPClient(config.Timeout)

	var health struct {
		Status string `json:"status"`
	}
	if err := client.getJSON(ctx, config.BaseURL+"/healthz", &health); err != nil {
		return fmt.Errorf("failed to connect to engine: %w", err)
	}
	if health.Status != "ok" {
		return fmt.Errorf("engine reported status %q", health.Status)
	}

	logger.Get().Info(ctx, "engine is healthy")
	return nil
}

// verifyEngineState cross-checks the engine's aggregates against what the
// driver submitted. Games played must match accepted completions; total
// stars can run lower because replays overwrite a level's star score.
func verifyEngineState(ctx context.Context, config *Config, stats *Stats) error {
	client := newHTTPClient(config.Timeout)

	var engine StatsResponse
	if err := client.getJSON(ctx, config.BaseURL+"/v1/stats", &engine); err != nil {
		return err
	}

	if engine.TotalGamesPlayed < stats.CompletionsApplied {
		return fmt.Errorf("games played %d below applied completions %d",
			engine.TotalGamesPlayed, stats.CompletionsApplied)
	}
	if engine.TotalStars > stats.StarsEarned {
		return fmt.Errorf("total stars %d exceed stars awarded %d",
			engine.TotalStars, stats.StarsEarned)
	}
	if engine.AchievementsUnlocked < stats.AchievementsSeen {
		return fmt.Errorf("achievement counter %d below unlocks observed %d",
			engine.AchievementsUnlocked, stats.AchievementsSeen)
	}

	logger.Get().Info(ctx, "engine state verified",
		logger.Int("totalGamesPlayed", engine.TotalGamesPlayed),
		logger.Int("totalStars", engine.TotalStars),
		logger.Int("perfectGames", engine.PerfectGames),
		logger.Int("achievementsUnlocked", engine.AchievementsUnlocked),
	)
	return nil
}

// displayFinalStats logs the final playtest statistics.
func displayFinalStats(stats *Stats) {
	var resultsPerSecond float64
	if stats.Duration > 0 {
		resultsPerSecond = float64(stats.ResultsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("resultsGenerated", stats.ResultsGenerated),
		logger.Int("resultsSubmitted", stats.ResultsSubmitted),
		logger.Int("resultsApplied", stats.ResultsApplied),
		logger.Int("resultsDuplicate", stats.ResultsDuplicate),
		logger.Int("resultsFailed", stats.ResultsFailed),
		logger.Int("completionsApplied", stats.CompletionsApplied),
		logger.Int("starsEarned", stats.StarsEarned),
		logger.Int("achievementsSeen", stats.AchievementsSeen),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("resultsPerSecond", resultsPerSecond),
	)
}
