package streak_test

import (
	"testing"
	"time"

	"github.com/Sameer447/ChefsQuest/internal/domain/streak"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAdvance(t *testing.T) {
	Convey("Given a stored streak", t, func() {
		now := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

		Convey("When the player already played today", func() {
			last := time.Date(2025, 6, 10, 1, 0, 0, 0, time.UTC)
			r := streak.Advance(4, 6, last, now)

			Convey("Then nothing changes", func() {
				So(r.Changed, ShouldBeFalse)
				So(r.Current, ShouldEqual, 4)
				So(r.Longest, ShouldEqual, 6)
			})
		})

		Convey("When the player last played yesterday", func() {
			last := time.Date(2025, 6, 9, 23, 50, 0, 0, time.UTC)
			r := streak.Advance(4, 6, last, now)

			Convey("Then the streak extends by exactly one", func() {
				So(r.Changed, ShouldBeTrue)
				So(r.Current, ShouldEqual, 5)
				So(r.Longest, ShouldEqual, 6)
			})
		})

		Convey("When extending past the longest streak", func() {
			last := now.AddDate(0, 0, -1)
			r := streak.Advance(6, 6, last, now)

			So(r.Current, ShouldEqual, 7)
			So(r.Longest, ShouldEqual, 7)
		})

		Convey("When the player last played three days ago", func() {
			last := now.AddDate(0, 0, -3)
			r := streak.Advance(4, 6, last, now)

			Convey("Then the streak resets to one and the longest is kept", func() {
				So(r.Changed, ShouldBeTrue)
				So(r.Current, ShouldEqual, 1)
				So(r.Longest, ShouldEqual, 6)
			})
		})

		Convey("When the clock moved backwards", func() {
			last := now.AddDate(0, 0, 2)
			r := streak.Advance(4, 6, last, now)

			Convey("Then it is treated like a broken streak", func() {
				So(r.Changed, ShouldBeTrue)
				So(r.Current, ShouldEqual, 1)
				So(r.Longest, ShouldEqual, 6)
			})
		})

		Convey("When the streak resets on a fresh record", func() {
			last := now.AddDate(0, 0, -5)
			r := streak.Advance(0, 0, last, now)

			Convey("Then the longest streak is lifted to one", func() {
				So(r.Current, ShouldEqual, 1)
				So(r.Longest, ShouldEqual, 1)
			})
		})

		Convey("When midnight separates two close timestamps", func() {
			last := time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC)
			soonAfter := time.Date(2025, 6, 10, 0, 1, 0, 0, time.UTC)
			r := streak.Advance(2, 2, last, soonAfter)

			Convey("Then two minutes apart still counts as consecutive days", func() {
				So(r.Changed, ShouldBeTrue)
				So(r.Current, ShouldEqual, 3)
				So(r.Longest, ShouldEqual, 3)
			})
		})
	})
}
