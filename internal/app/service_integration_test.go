package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	cloudstore "github.com/seahub/audithub/internal/adapters/cloud"
	service "github.com/seahub/audithub/internal/app"
	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/internal/domain/session"
	"github.com/seahub/audithub/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

// gateReporter parks Coaching until released, signalling entry first, so
// tests can interleave other service calls with a generation in flight.
type gateReporter struct {
	entered chan struct{}
	release chan struct{}
}

func (g *gateReporter) Coaching(ctx context.Context, rec session.Record, r *rubric.Rubric) (string, error) {
	g.entered <- struct{}{}
	select {
	case <-g.release:
		return "gated coaching note", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (g *gateReporter) TeamAnalysis(ctx context.Context, d stats.Dashboard) (string, error) {
	return "team analysis", nil
}

func TestServiceIntegration(t *testing.T) {
	Convey("Given a fully wired in-memory service", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		remote := cloudstore.NewMemoryStore(cloudstore.WithoutLatency())
		svc := newStartedService(t, service.WithCloudStore(remote))

		Convey("When importing a paste and reading the dashboard", func() {
			_, err := svc.ImportText(ctx, paste(
				pasteRow("Alex", "2024-05-01", "1"),
				pasteRow("Sam", "2024-05-02", "0"),
			), false)
			So(err, ShouldBeNil)

			d := svc.Dashboard(ctx)

			Convey("Then the aggregates reflect the ledger", func() {
				So(d.TotalAudits, ShouldEqual, 2)
				So(d.TopPerformer, ShouldEqual, "Alex")
				So(d.CompliancePct, ShouldEqual, 100)
				So(len(d.Pillars), ShouldEqual, 5)
				So(len(d.Trend), ShouldEqual, 2)
			})
		})

		Convey("When pushing sessions to an enabled cloud workspace", func() {
			So(svc.SetCloudSettings(ctx, cloudSettingsEnabled("ws-int")), ShouldBeNil)

			rec, err := svc.SubmitSession(ctx, session.Record{
				StaffName: "Kim",
				Scores:    map[string]float64{"s1-1": 1},
			})
			So(err, ShouldBeNil)

			// Give the push workers time to drain the queue
			time.Sleep(200 * time.Millisecond)

			Convey("Then the record shows up in the remote workspace", func() {
				fetched, err := remote.Fetch(ctx, "ws-int")
				So(err, ShouldBeNil)
				So(len(fetched), ShouldEqual, 1)
				So(fetched[0].ID, ShouldEqual, rec.ID)
			})
		})

		Convey("When fetching a workspace that has remote-only records", func() {
			So(svc.SetCloudSettings(ctx, cloudSettingsEnabled("ws-int")), ShouldBeNil)

			local, err := svc.SubmitSession(ctx, session.Record{
				StaffName: "Kim",
				Scores:    map[string]float64{"s1-1": 1},
			})
			So(err, ShouldBeNil)

			// Remote copy of the local record plus one remote-only record.
			// The local version must win the id collision.
			stale := local
			stale.StaffName = "Stale Copy"
			_, err = remote.Push(ctx, stale, "ws-int")
			So(err, ShouldBeNil)
			_, err = remote.Push(ctx, session.Record{ID: "remote-1", StaffName: "Remote"}, "ws-int")
			So(err, ShouldBeNil)

			added, err := svc.SyncFetch(ctx)

			Convey("Then only the remote-only record is added", func() {
				So(err, ShouldBeNil)
				So(added, ShouldEqual, 1)

				got, err := svc.Session(ctx, local.ID)
				So(err, ShouldBeNil)
				So(got.StaffName, ShouldEqual, "Kim")

				_, err = svc.Session(ctx, "remote-1")
				So(err, ShouldBeNil)
			})

			Convey("And the sync timestamp is recorded", func() {
				So(err, ShouldBeNil)
				So(svc.CloudSettings(ctx).LastSynced, ShouldNotBeNil)
			})
		})

		Convey("When exporting the ledger as CSV", func() {
			_, err := svc.ImportText(ctx, paste(pasteRow("Alex", "2024-05-01", "1")), false)
			So(err, ShouldBeNil)

			out, err := svc.ExportCSV(ctx)

			Convey("Then the CSV has a header and one data row", func() {
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimSpace(string(out)), "\n")
				So(len(lines), ShouldEqual, 2)
				So(lines[0], ShouldStartWith, "id,auditReference,staffName")
				So(lines[0], ShouldContainSubstring, "s1-1")
				So(lines[1], ShouldContainSubstring, "Alex")
			})
		})

		Convey("When requesting coaching feedback without an API key", func() {
			rec, err := svc.SubmitSession(ctx, session.Record{
				StaffName: "Kim",
				Scores:    map[string]float64{"s1-1": 1},
			})
			So(err, ShouldBeNil)

			updated, err := svc.Feedback(ctx, rec.ID)

			Convey("Then the static fallback is stored on the record", func() {
				So(err, ShouldBeNil)
				So(updated.AIFeedback, ShouldContainSubstring, "manual coaching")

				got, err := svc.Session(ctx, rec.ID)
				So(err, ShouldBeNil)
				So(got.AIFeedback, ShouldEqual, updated.AIFeedback)
			})
		})

		Convey("When requesting a team report on an empty ledger", func() {
			text, err := svc.TeamReport(ctx)

			Convey("Then the no-data message is returned", func() {
				So(err, ShouldBeNil)
				So(text, ShouldEqual, "No data available for analysis.")
			})
		})

		Convey("When reading service stats after activity", func() {
			_, err := svc.ImportText(ctx, paste(pasteRow("Alex", "2024-05-01", "1")), false)
			So(err, ShouldBeNil)

			stats := svc.GetStats()

			Convey("Then the counters line up", func() {
				So(stats["started"], ShouldEqual, true)
				So(stats["sessions"], ShouldEqual, 1)
				So(stats["revision"], ShouldEqual, uint64(1))
			})
		})
	})
}

func TestFeedbackDoesNotBlockWrites(t *testing.T) {
	Convey("Given a reporter that waits while a submission lands", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		gate := &gateReporter{
			entered: make(chan struct{}, 1),
			release: make(chan struct{}),
		}
		svc := newStartedService(t, service.WithReporter(gate))

		rec, err := svc.SubmitSession(ctx, session.Record{StaffName: "Kim"})
		So(err, ShouldBeNil)

		Convey("When feedback generation is in flight", func() {
			done := make(chan error, 1)
			go func() {
				_, err := svc.Feedback(ctx, rec.ID)
				done <- err
			}()
			<-gate.entered

			_, err := svc.SubmitSession(ctx, session.Record{StaffName: "Sam"})
			close(gate.release)

			Convey("Then the concurrent write succeeds and the feedback is stored", func() {
				So(err, ShouldBeNil)
				So(<-done, ShouldBeNil)

				got, err := svc.Session(ctx, rec.ID)
				So(err, ShouldBeNil)
				So(got.AIFeedback, ShouldEqual, "gated coaching note")
			})
		})
	})
}
