package playtest

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Sameer447/ChefsQuest/internal/domain/catalog"
	"github.com/Sameer447/ChefsQuest/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	playStyleDivisor   = 6
)

// Constants for play style cases.
const (
	casePerfectRun = 0
	caseSpeedRun   = 1
	caseGoodRun    = 2
	caseSloppyRun  = 3
	caseFailedRun  = 4
	caseComboRun   = 5
)

// Duration ranges per play style, in seconds.
const (
	speedRunMin    = 12.0
	speedRunRange  = 15.0
	normalRunMin   = 35.0
	normalRunRange = 90.0
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// getRandomInt returns a random int in [0, n).
func getRandomInt(n int64) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(n))
	return int(v.Int64())
}

// generateResults creates level results spread across the recipe catalog
// with a varied mix of play styles.
func generateResults(ctx context.Context, config *Config, stats *Stats) []Result {
	logger.Get().Info(ctx, "generating level results",
		logger.Int("numResults", config.NumResults))

	levelIDs := catalog.RecipeIDs()
	results := make([]Result, config.NumResults)
	for i := range results {
		levelID := levelIDs[getRandomInt(int64(len(levelIDs)))]
		results[i] = generateSingleResult(i, levelID)
	}

	stats.ResultsGenerated = len(results)
	logger.Get().Info(ctx, "generated results", logger.Int("count", len(results)))
	return results
}

// generateSingleResult creates one result with the given index and level.
func generateSingleResult(index int, levelID string) Result {
	resultID := "playtest_" + strconv.Itoa(index) + "_" +
		strconv.FormatInt(time.Now().UnixNano(), 10) + "_" + uuid.New().String()

	res := Result{
		ResultID: resultID,
		LevelID:  levelID,
	}

	switch getRandomInt(playStyleDivisor) {
	case casePerfectRun:
		res.Completed = true
		res.Mistakes = 0
		res.Duration = normalRunMin + getRandomFloat()*normalRunRange
		res.MaxCombo = 4 + getRandomInt(6)
	case caseSpeedRun:
		res.Completed = true
		res.Mistakes = 0
		res.Duration = speedRunMin + getRandomFloat()*speedRunRange
		res.MaxCombo = 3 + getRandomInt(5)
	case caseGoodRun:
		res.Completed = true
		res.Mistakes = 1
		res.Duration = normalRunMin + getRandomFloat()*normalRunRange
		res.MaxCombo = 2 + getRandomInt(4)
	case caseSloppyRun:
		res.Completed = true
		res.Mistakes = 2
		res.Duration = normalRunMin + getRandomFloat()*normalRunRange
		res.MaxCombo = 1 + getRandomInt(3)
	case caseFailedRun:
		res.Completed = false
		res.Mistakes = 3
		res.Duration = normalRunMin + getRandomFloat()*normalRunRange
	case caseComboRun:
		res.Completed = true
		res.Mistakes = getRandomInt(2)
		res.Duration = normalRunMin + getRandomFloat()*normalRunRange
		res.MaxCombo = 10 + getRandomInt(10)
	}
	return res
}
