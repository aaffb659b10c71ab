package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/Sameer447/ChefsQuest/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DataPath, convey.ShouldEqual, "chefsquest.db")
				convey.So(cfg.WriteQueueSize, convey.ShouldEqual, 256)
				convey.So(cfg.DedupeSize, convey.ShouldEqual, 10_000)
				convey.So(cfg.ImportMaxBytes, convey.ShouldEqual, 1<<20)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CHEFSQUEST_ADDR", ":8080")
			_ = os.Setenv("CHEFSQUEST_DATA_PATH", "/tmp/cq.db")
			_ = os.Setenv("CHEFSQUEST_WRITE_QUEUE_SIZE", "64")
			_ = os.Setenv("CHEFSQUEST_DEDUPE_SIZE", "5000")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DataPath, convey.ShouldEqual, "/tmp/cq.db")
				convey.So(cfg.WriteQueueSize, convey.ShouldEqual, 64)
				convey.So(cfg.DedupeSize, convey.ShouldEqual, 5000)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":7070"
data_path: "/var/lib/chefsquest/data.db"
write_queue_size: 128
log_level: debug
`
			tmpFile := createTempConfigFile(t, yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CHEFSQUEST_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.DataPath, convey.ShouldEqual, "/var/lib/chefsquest/data.db")
				convey.So(cfg.WriteQueueSize, convey.ShouldEqual, 128)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When env vars override the YAML file", func() {
			yamlContent := `
addr: ":7070"
write_queue_size: 128
`
			tmpFile := createTempConfigFile(t, yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CHEFSQUEST_CONFIG", tmpFile)
			_ = os.Setenv("CHEFSQUEST_ADDR", ":6060")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env should win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
				convey.So(cfg.WriteQueueSize, convey.ShouldEqual, 128)
			})
		})

		convey.Convey("When validation fails", func() {
			clearConfigEnvVars()
			_ = os.Setenv("CHEFSQUEST_WRITE_QUEUE_SIZE", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then a non-positive write queue size is rejected", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"CHEFSQUEST_CONFIG",
		"CHEFSQUEST_ADDR",
		"CHEFSQUEST_DATA_PATH",
		"CHEFSQUEST_LOG_LEVEL",
		"CHEFSQUEST_WRITE_QUEUE_SIZE",
		"CHEFSQUEST_DEDUPE_SIZE",
		"CHEFSQUEST_IMPORT_MAX_BYTES",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "chefsquest-config-*.yaml")
	if err != nil {
		t.Fatalf("create temp config: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp config: %v", err)
	}
	return f.Name()
}
