package delimited_test

import (
	"strings"
	"testing"

	delimited "github.com/seahub/audithub/internal/domain/delimited"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given pasted delimited text", t, func() {
		Convey("When parsing a plain comma-separated row", func() {
			rows := delimited.Parse("a,b,c")

			Convey("Then fields round-trip", func() {
				So(rows, ShouldResemble, [][]string{{"a", "b", "c"}})
			})
		})

		Convey("When parsing a tab-separated row", func() {
			rows := delimited.Parse("a\tb\tc")

			Convey("Then tabs act as separators", func() {
				So(rows, ShouldResemble, [][]string{{"a", "b", "c"}})
			})
		})

		Convey("When separators are mixed within one row", func() {
			rows := delimited.Parse("a,b\tc")

			Convey("Then both are honored", func() {
				So(rows, ShouldResemble, [][]string{{"a", "b", "c"}})
			})
		})

		Convey("When fields are quoted with embedded separators and escapes", func() {
			rows := delimited.Parse(`a,"b,""c""",d`)

			Convey("Then the quoted content is literal", func() {
				So(rows, ShouldResemble, [][]string{{"a", `b,"c"`, "d"}})
			})
		})

		Convey("When a quoted field spans a newline", func() {
			rows := delimited.Parse("a,\"line1\nline2\",b")

			Convey("Then the newline is content, not a row break", func() {
				So(len(rows), ShouldEqual, 1)
				So(rows[0][1], ShouldEqual, "line1\nline2")
			})
		})

		Convey("When input contains blank and whitespace-only lines", func() {
			rows := delimited.Parse("a,b\n\n   \t \nc,d\n")

			Convey("Then only non-blank rows survive", func() {
				So(rows, ShouldResemble, [][]string{{"a", "b"}, {"c", "d"}})
			})
		})

		Convey("When input uses Windows line endings and a BOM", func() {
			rows := delimited.Parse("\uFEFFa,b\r\nc,d\r\n")

			Convey("Then both artifacts are normalized away", func() {
				So(rows, ShouldResemble, [][]string{{"a", "b"}, {"c", "d"}})
			})
		})

		Convey("When fields carry surrounding whitespace", func() {
			rows := delimited.Parse("  a , b ,c  ")

			Convey("Then fields come back trimmed", func() {
				So(rows, ShouldResemble, [][]string{{"a", "b", "c"}})
			})
		})

		Convey("When a quote is never terminated", func() {
			rows := delimited.Parse("a,\"unterminated\nstill inside,b")

			Convey("Then the tail is absorbed without an error", func() {
				So(len(rows), ShouldEqual, 1)
				So(rows[0][0], ShouldEqual, "a")
				So(rows[0][1], ShouldEqual, "unterminated\nstill inside,b")
			})
		})

		Convey("When the last row has no trailing newline", func() {
			rows := delimited.Parse("a,b\nc,d")

			Convey("Then the final row is still produced", func() {
				So(len(rows), ShouldEqual, 2)
				So(rows[1], ShouldResemble, []string{"c", "d"})
			})
		})

		Convey("When input is empty", func() {
			Convey("Then no rows are produced", func() {
				So(delimited.Parse(""), ShouldBeEmpty)
				So(delimited.Parse("\n\n"), ShouldBeEmpty)
			})
		})
	})
}

func TestParseRoundTrip(t *testing.T) {
	Convey("Given rows with no embedded delimiters or quotes", t, func() {
		fields := []string{"AUD-1", "Alex", "Hub East", "2024-05-01", "9.5"}

		Convey("When serializing and reparsing", func() {
			rows := delimited.Parse(strings.Join(fields, ","))

			Convey("Then the row is recovered exactly", func() {
				So(rows, ShouldResemble, [][]string{fields})
			})
		})
	})
}
