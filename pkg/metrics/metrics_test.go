package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			registryOpt := WithPrometheusRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording import metrics", func() {
			Convey("Then recording should not panic", func() {
				So(func() {
					RecordImportBatch()
					RecordRowsImported(3)
					RecordRowsSkipped(1)
					RecordRowsInvalidDate(1)
					RecordMergeDuplicates(2)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording sanitize metrics", func() {
			Convey("Then recording should not panic", func() {
				So(func() {
					RecordSanitizeRun()
					RecordRecordsSanitized(5)
				}, ShouldNotPanic)
			})
		})

		Convey("When updating gauges", func() {
			Convey("Then updates should not panic", func() {
				So(func() {
					UpdateSessionsTotal(10)
					UpdateStoreRevision(4)
					UpdatePushQueueSize(2)
					UpdatePushQueueCapacity(100)
					UpdateWorkerCount(4)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording cloud and report metrics", func() {
			Convey("Then recording should not panic", func() {
				So(func() {
					RecordCloudPush()
					RecordCloudPushError()
					RecordReportLatency(120.5)
					RecordReportFallback()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then recording should not panic", func() {
				So(func() {
					RecordHTTPRequest("import", "POST", "200")
					RecordHTTPRequestDuration("import", "POST", "200", 12.3)
					RecordErrorByEndpoint("import", "POST", "client_error")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the metrics package", t, func() {
		Convey("When getting the registry", func() {
			registry := GetRegistry()

			Convey("Then it should not be nil", func() {
				So(registry, ShouldNotBeNil)
			})
		})
	})
}
