package session_test

import (
	"context"
	"testing"
	"time"

	session "github.com/seahub/audithub/internal/domain/session"
	. "github.com/smartystreets/goconvey/convey"
)

func record(id string, total float64) session.Record {
	return session.Record{
		ID:               id,
		StaffName:        "Alex",
		Date:             time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Scores:           map[string]float64{"s1-1": total},
		TotalScore:       total,
		MaxPossibleScore: session.MaxBaseScore,
	}
}

func TestSumScores(t *testing.T) {
	Convey("Given a record with several scores", t, func() {
		r := session.Record{Scores: map[string]float64{"s1-1": 1, "s1-2": 0.5, "s2-1": 2}}

		Convey("When summing", func() {
			Convey("Then the total matches the map contents", func() {
				So(r.SumScores(), ShouldEqual, 3.5)
			})
		})
	})
}

func TestCollectionMerge(t *testing.T) {
	Convey("Given a collection with one record", t, func() {
		c := session.NewCollection(record("a", 10))
		ctx := context.Background()

		Convey("When merging a record with a new id", func() {
			added, dups := c.Merge(ctx, []session.Record{record("b", 20)})

			Convey("Then it is appended", func() {
				So(added, ShouldEqual, 1)
				So(dups, ShouldEqual, 0)
				So(c.Len(), ShouldEqual, 2)
			})
		})

		Convey("When merging a record with an existing id", func() {
			incoming := record("a", 99)
			added, dups := c.Merge(ctx, []session.Record{incoming})

			Convey("Then it is dropped, never overwritten", func() {
				So(added, ShouldEqual, 0)
				So(dups, ShouldEqual, 1)
				So(c.Len(), ShouldEqual, 1)
				got, ok := c.Get("a")
				So(ok, ShouldBeTrue)
				So(got.TotalScore, ShouldEqual, 10)
			})
		})

		Convey("When merging an empty batch", func() {
			rev := c.Revision()
			added, dups := c.Merge(ctx, nil)

			Convey("Then nothing changes, including the revision", func() {
				So(added, ShouldEqual, 0)
				So(dups, ShouldEqual, 0)
				So(c.Revision(), ShouldEqual, rev)
			})
		})

		Convey("When a merge adds records", func() {
			rev := c.Revision()
			c.Merge(ctx, []session.Record{record("b", 20)})

			Convey("Then the revision advances", func() {
				So(c.Revision(), ShouldEqual, rev+1)
			})
		})
	})
}

func TestCollectionReplace(t *testing.T) {
	Convey("Given a collection with two records", t, func() {
		c := session.NewCollection(record("a", 10), record("b", 20))

		Convey("When replacing the ledger", func() {
			rev := c.Revision()
			c.Replace([]session.Record{record("a", 5), record("b", 20)})

			Convey("Then content and revision change", func() {
				So(c.Len(), ShouldEqual, 2)
				got, _ := c.Get("a")
				So(got.TotalScore, ShouldEqual, 5)
				So(c.Revision(), ShouldEqual, rev+1)
			})

			Convey("And the dedup index follows the new content", func() {
				added, dups := c.Merge(context.Background(), []session.Record{record("a", 1)})
				So(added, ShouldEqual, 0)
				So(dups, ShouldEqual, 1)
			})
		})
	})
}

func TestCollectionOrder(t *testing.T) {
	Convey("Given records merged over several calls", t, func() {
		c := session.NewCollection()
		ctx := context.Background()
		c.Merge(ctx, []session.Record{record("1", 1), record("2", 2)})
		c.Merge(ctx, []session.Record{record("3", 3)})

		Convey("When reading the ledger", func() {
			records := c.Records()

			Convey("Then insertion order is preserved", func() {
				So(len(records), ShouldEqual, 3)
				So(records[0].ID, ShouldEqual, "1")
				So(records[1].ID, ShouldEqual, "2")
				So(records[2].ID, ShouldEqual, "3")
			})
		})
	})
}
