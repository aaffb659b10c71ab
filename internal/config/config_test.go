package config_test

import (
	"context"
	"testing"

	"github.com/Sameer447/ChefsQuest/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestNewDefaults(t *testing.T) {
	convey.Convey("Given a fresh Config", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then defaults should be populated", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldNotBeEmpty)
			convey.So(cfg.DataPath, convey.ShouldNotBeEmpty)
			convey.So(cfg.WriteQueueSize, convey.ShouldBeGreaterThan, 0)
			convey.So(cfg.DedupeSize, convey.ShouldBeGreaterThan, 0)
		})
	})
}
