package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Sameer447/ChefsQuest/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLevelProgressValidate(t *testing.T) {
	Convey("Given a level progress record", t, func() {
		Convey("When the record is a zero default", func() {
			So(model.LevelProgress{}.Validate(), ShouldBeNil)
		})

		Convey("When stars are out of range", func() {
			p := model.LevelProgress{Stars: 4, Completed: true}
			So(p.Validate(), ShouldEqual, model.ErrInvalidStars)
		})

		Convey("When a level is completed without stars", func() {
			p := model.LevelProgress{Stars: 0, Completed: true}
			So(p.Validate(), ShouldEqual, model.ErrCompletedWithoutStars)
		})

		Convey("When attempts go negative", func() {
			p := model.LevelProgress{Attempts: -1}
			So(p.Validate(), ShouldEqual, model.ErrNegativeCounter)
		})
	})
}

func TestGlobalStatsValidate(t *testing.T) {
	Convey("Given a stats record", t, func() {
		now := time.Now()

		Convey("When it is the first-run default", func() {
			s := model.DefaultStats(now)
			So(s.Validate(), ShouldBeNil)
			So(s.FirstPlayedDate, ShouldEqual, now)
			So(s.LastPlayedDate, ShouldEqual, now)
			So(s.TotalStars, ShouldEqual, 0)
		})

		Convey("When the longest streak falls below the current streak", func() {
			s := model.DefaultStats(now)
			s.CurrentStreak = 5
			s.LongestStreak = 3
			So(s.Validate(), ShouldEqual, model.ErrStreakInversion)
		})

		Convey("When a counter is negative", func() {
			s := model.DefaultStats(now)
			s.PerfectGames = -1
			So(s.Validate(), ShouldEqual, model.ErrNegativeCounter)
		})
	})
}

func TestLevelResultValidate(t *testing.T) {
	Convey("Given a level result", t, func() {
		Convey("When the payload is well formed", func() {
			r := model.LevelResult{LevelID: "pancakes", Completed: true, Mistakes: 0, Duration: 42.5, MaxCombo: 6}
			So(r.Validate(), ShouldBeNil)
		})

		Convey("When the level id is missing", func() {
			r := model.LevelResult{Mistakes: 1}
			So(r.Validate(), ShouldEqual, model.ErrUnknownLevel)
		})

		Convey("When mistakes are negative", func() {
			r := model.LevelResult{LevelID: "pancakes", Mistakes: -1}
			So(r.Validate(), ShouldEqual, model.ErrNegativeCounter)
		})
	})
}

func TestWireFormat(t *testing.T) {
	Convey("Given persisted records", t, func() {
		Convey("When marshalling level progress", func() {
			raw, err := json.Marshal(model.LevelProgress{Stars: 3, Completed: true, Attempts: 2})
			So(err, ShouldBeNil)

			Convey("Then the wire keys match the save-file format", func() {
				So(string(raw), ShouldContainSubstring, `"stars":3`)
				So(string(raw), ShouldContainSubstring, `"completed":true`)
				So(string(raw), ShouldContainSubstring, `"attempts":2`)
				So(string(raw), ShouldContainSubstring, `"bestTime":null`)
				So(string(raw), ShouldContainSubstring, `"lastPlayed":null`)
			})
		})

		Convey("When marshalling default settings", func() {
			raw, err := json.Marshal(model.DefaultSettings())
			So(err, ShouldBeNil)
			So(string(raw), ShouldContainSubstring, `"soundEnabled":true`)
			So(string(raw), ShouldContainSubstring, `"musicVolume":0.5`)
			So(string(raw), ShouldContainSubstring, `"difficulty":"normal"`)
		})

		Convey("When round-tripping a session record", func() {
			end := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
			in := model.SessionRecord{
				SessionID:    "s-1",
				StartTime:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
				EndTime:      &end,
				LevelsPlayed: []string{"pancakes"},
				SessionStats: model.SessionStats{GamesPlayed: 1, StarsEarned: 3},
			}
			raw, err := json.Marshal(in)
			So(err, ShouldBeNil)

			var out model.SessionRecord
			So(json.Unmarshal(raw, &out), ShouldBeNil)
			So(out, ShouldResemble, in)
		})
	})
}
