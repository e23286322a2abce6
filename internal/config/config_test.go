package config_test

import (
	"runtime"
	"testing"

	"github.com/seahub/audithub/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.DataDir, convey.ShouldEqual, "data")
			convey.So(cfg.Workspace, convey.ShouldEqual, "local")
			convey.So(cfg.GenAIModel, convey.ShouldEqual, "gemini-3-flash-preview")
			convey.So(cfg.PushQueueSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU()*2)
			convey.So(cfg.GapTopN, convey.ShouldEqual, 5)
			convey.So(cfg.CloudLatencyMinMS, convey.ShouldEqual, 40)
			convey.So(cfg.CloudLatencyMaxMS, convey.ShouldEqual, 120)
		})

		convey.Convey("Then the API key is empty until configured", func() {
			convey.So(cfg.GenAIAPIKey, convey.ShouldBeEmpty)
		})
	})
}
