package rubric_test

import (
	"errors"
	"testing"

	rubric "github.com/seahub/audithub/internal/domain/rubric"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given checklist items", t, func() {
		Convey("When building a rubric from the stock checklist", func() {
			r, err := rubric.New(rubric.DefaultItems())

			Convey("Then it should succeed with 63 items", func() {
				So(err, ShouldBeNil)
				So(r.Len(), ShouldEqual, 63)
			})

			Convey("And lookup should resolve known ids", func() {
				So(err, ShouldBeNil)
				max, ok := r.Lookup("s1-3")
				So(ok, ShouldBeTrue)
				So(max, ShouldEqual, 2)
			})

			Convey("And fractional maxima should survive", func() {
				So(err, ShouldBeNil)
				max, ok := r.Lookup("s5-11")
				So(ok, ShouldBeTrue)
				So(max, ShouldEqual, 0.5)
			})

			Convey("And unknown ids should not resolve", func() {
				So(err, ShouldBeNil)
				_, ok := r.Lookup("s9-1")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When an item has a duplicate id", func() {
			_, err := rubric.New([]rubric.Item{
				{ID: "s1-1", Category: "S1: A", Task: "a", MaxPoints: 1},
				{ID: "s1-1", Category: "S1: A", Task: "b", MaxPoints: 1},
			})

			Convey("Then it should fail with ErrInvalidItem", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, rubric.ErrInvalidItem), ShouldBeTrue)
			})
		})

		Convey("When an item has non-positive max points", func() {
			_, err := rubric.New([]rubric.Item{
				{ID: "s1-1", Category: "S1: A", Task: "a", MaxPoints: 0},
			})

			Convey("Then it should fail with ErrInvalidItem", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, rubric.ErrInvalidItem), ShouldBeTrue)
			})
		})
	})
}

func TestSeriesLabels(t *testing.T) {
	Convey("Given the stock rubric", t, func() {
		r := rubric.Default()

		Convey("When listing series labels", func() {
			labels := r.SeriesLabels()

			Convey("Then the five pillars appear in declared order", func() {
				So(labels, ShouldResemble, []string{"S1", "S2", "S3", "S4", "S5"})
			})
		})
	})
}

func TestLayoutValidate(t *testing.T) {
	Convey("Given the default layout", t, func() {
		layout := rubric.DefaultLayout()

		Convey("When validated against the stock rubric", func() {
			err := layout.Validate(rubric.Default())

			Convey("Then it should pass", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When a series gains an extra item", func() {
			items := append(rubric.DefaultItems(), rubric.Item{
				ID: "s2-13", Category: "S2: Engage | Extra", Task: "extra", MaxPoints: 1,
			})
			r, err := rubric.New(items)
			So(err, ShouldBeNil)

			Convey("Then validation should fail with ErrLayoutMismatch", func() {
				err := layout.Validate(r)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, rubric.ErrLayoutMismatch), ShouldBeTrue)
			})
		})

		Convey("When a mapped item is missing", func() {
			items := rubric.DefaultItems()[:62] // drop s5-16
			r, err := rubric.New(items)
			So(err, ShouldBeNil)

			Convey("Then validation should fail with ErrLayoutMismatch", func() {
				err := layout.Validate(r)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, rubric.ErrLayoutMismatch), ShouldBeTrue)
			})
		})
	})
}

func TestSegmentItemID(t *testing.T) {
	Convey("Given the trailing extension segment", t, func() {
		layout := rubric.DefaultLayout()
		seg := layout.Segments[len(layout.Segments)-1]

		Convey("When deriving item ids", func() {
			Convey("Then ids continue the fifth series from s5-10", func() {
				So(seg.ItemID(0), ShouldEqual, "s5-10")
				So(seg.ItemID(6), ShouldEqual, "s5-16")
			})
		})
	})
}
