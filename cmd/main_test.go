package main

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/Sameer447/ChefsQuest/internal/adapters/http/api"
	"github.com/Sameer447/ChefsQuest/internal/adapters/storage"
	"github.com/Sameer447/ChefsQuest/internal/app"
	"github.com/Sameer447/ChefsQuest/internal/config"
	"github.com/Sameer447/ChefsQuest/pkg/logger"
)

func init() {
	_ = logger.Init()
	_ = logger.SetLevelString("error")
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("CHEFSQUEST_ADDR", ":8080")
			_ = os.Setenv("CHEFSQUEST_WRITE_QUEUE_SIZE", "512")
			_ = os.Setenv("CHEFSQUEST_DEDUPE_SIZE", "5000")
			defer func() {
				_ = os.Unsetenv("CHEFSQUEST_ADDR")
				_ = os.Unsetenv("CHEFSQUEST_WRITE_QUEUE_SIZE")
				_ = os.Unsetenv("CHEFSQUEST_DEDUPE_SIZE")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.WriteQueueSize, convey.ShouldEqual, 512)
				convey.So(cfg.DedupeSize, convey.ShouldEqual, 5000)
			})
		})

		convey.Convey("When wiring the engine the way main does", func() {
			ctx := context.Background()
			kv := storage.NewMemory()
			defer kv.Close()

			svc, err := app.New(
				app.WithKV(kv),
				app.WithQueueSize(64),
				app.WithDedupeSize(100),
			)
			convey.So(err, convey.ShouldBeNil)

			state, err := svc.Start(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(state.Session.SessionID, convey.ShouldNotBeEmpty)
			defer func() {
				_ = svc.Stop(ctx)
			}()

			convey.Convey("Then the API routes register on a mux", func() {
				mux := http.NewServeMux()
				apiServer := api.NewServer(svc, 1<<20)
				convey.So(func() { apiServer.Register(ctx, mux) }, convey.ShouldNotPanic)
			})
		})
	})
}
