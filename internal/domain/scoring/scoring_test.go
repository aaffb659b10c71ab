package scoring_test

import (
	"testing"
	"time"

	"github.com/Sameer447/ChefsQuest/internal/domain/model"
	"github.com/Sameer447/ChefsQuest/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStars(t *testing.T) {
	Convey("Given the star policy", t, func() {
		Convey("Then a flawless run earns three stars", func() {
			So(scoring.Stars(0), ShouldEqual, 3)
		})
		Convey("Then each mistake costs a star", func() {
			So(scoring.Stars(1), ShouldEqual, 2)
			So(scoring.Stars(2), ShouldEqual, 1)
		})
		Convey("Then a completed run never drops below one star", func() {
			So(scoring.Stars(3), ShouldEqual, 1)
			So(scoring.Stars(7), ShouldEqual, 1)
		})
	})
}

func TestForResult(t *testing.T) {
	Convey("Given a fresh level", t, func() {
		prev := model.LevelProgress{}

		Convey("When it is completed with no mistakes", func() {
			d := scoring.ForResult(prev, model.LevelResult{
				LevelID: "pancakes", Completed: true, Mistakes: 0, Duration: 25, MaxCombo: 4,
			})

			Convey("Then the delta counts a first-time perfect completion", func() {
				So(d.GamesPlayed, ShouldEqual, 1)
				So(d.LevelsCompleted, ShouldEqual, 1)
				So(d.StarsDelta, ShouldEqual, 3)
				So(d.PerfectGames, ShouldEqual, 1)
				So(d.TimePlayed, ShouldEqual, 25.0)
				So(d.Combo, ShouldEqual, 4)
			})
		})
	})

	Convey("Given a level already completed with three stars", t, func() {
		prev := model.LevelProgress{Stars: 3, Completed: true, Attempts: 1}

		Convey("When it is replayed with two mistakes", func() {
			d := scoring.ForResult(prev, model.LevelResult{
				LevelID: "pancakes", Completed: true, Mistakes: 2,
			})

			Convey("Then the star delta is negative and completion does not recount", func() {
				So(d.GamesPlayed, ShouldEqual, 1)
				So(d.LevelsCompleted, ShouldEqual, 0)
				So(d.StarsDelta, ShouldEqual, 1-3)
			})

			// Downgrading from three stars never decrements perfectGames.
			// High-water behavior, kept on purpose.
			Convey("Then perfect games do not decrement on downgrade", func() {
				So(d.PerfectGames, ShouldEqual, 0)
			})
		})
	})
}

func TestUpdateVariants(t *testing.T) {
	Convey("Given a stats record", t, func() {
		s := model.DefaultStats(time.Now())
		s.HighestCombo = 8

		Convey("When applying a level delta", func() {
			scoring.LevelDelta{
				GamesPlayed: 1, LevelsCompleted: 1, StarsDelta: 3,
				PerfectGames: 1, Mistakes: 0, TimePlayed: 12.5, Combo: 5,
			}.Apply(&s)

			So(s.TotalGamesPlayed, ShouldEqual, 1)
			So(s.TotalLevelsCompleted, ShouldEqual, 1)
			So(s.TotalStars, ShouldEqual, 3)
			So(s.PerfectGames, ShouldEqual, 1)
			So(s.TotalTimePlayed, ShouldEqual, 12.5)

			Convey("Then a weaker combo does not lower the high-water mark", func() {
				So(s.HighestCombo, ShouldEqual, 8)
			})
		})

		Convey("When applying a streak update", func() {
			scoring.StreakUpdate{Current: 4, Longest: 9}.Apply(&s)
			So(s.CurrentStreak, ShouldEqual, 4)
			So(s.LongestStreak, ShouldEqual, 9)
		})

		Convey("When applying an unlock delta", func() {
			scoring.UnlockDelta{Count: 2}.Apply(&s)
			So(s.AchievementsUnlocked, ShouldEqual, 2)
		})
	})
}

func TestApplyResult(t *testing.T) {
	Convey("Given previously recorded progress", t, func() {
		now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

		Convey("When a failed attempt is applied", func() {
			prev := model.LevelProgress{Stars: 2, Completed: true, Attempts: 3}
			next := scoring.ApplyResult(prev, model.LevelResult{LevelID: "paella", Mistakes: 3}, now)

			Convey("Then only attempts and lastPlayed change", func() {
				So(next.Attempts, ShouldEqual, 4)
				So(*next.LastPlayed, ShouldEqual, now)
				So(next.Stars, ShouldEqual, 2)
				So(next.Completed, ShouldBeTrue)
			})
		})

		Convey("When a completion is applied", func() {
			prev := model.LevelProgress{}
			next := scoring.ApplyResult(prev, model.LevelResult{
				LevelID: "paella", Completed: true, Mistakes: 1, Duration: 50,
			}, now)

			So(next.Completed, ShouldBeTrue)
			So(next.Stars, ShouldEqual, 2)
			So(next.Attempts, ShouldEqual, 1)
			So(*next.BestTime, ShouldEqual, 50.0)

			Convey("And a slower replay keeps the best time", func() {
				again := scoring.ApplyResult(next, model.LevelResult{
					LevelID: "paella", Completed: true, Mistakes: 0, Duration: 80,
				}, now)
				So(*again.BestTime, ShouldEqual, 50.0)
				So(again.Stars, ShouldEqual, 3)
			})

			Convey("And a faster replay improves the best time", func() {
				again := scoring.ApplyResult(next, model.LevelResult{
					LevelID: "paella", Completed: true, Mistakes: 0, Duration: 30,
				}, now)
				So(*again.BestTime, ShouldEqual, 30.0)
			})

			Convey("And a weaker replay replaces the star score", func() {
				again := scoring.ApplyResult(next, model.LevelResult{
					LevelID: "paella", Completed: true, Mistakes: 2, Duration: 60,
				}, now)
				So(again.Stars, ShouldEqual, 1)
			})
		})
	})
}
