package content

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultPayload(t *testing.T) {
	Convey("The compiled-in payload should be complete and well-formed", t, func() {
		payload := Default()

		So(payload.Profile.Name, ShouldNotBeEmpty)
		So(payload.Profile.Email, ShouldContainSubstring, "@")
		So(payload.Socials, ShouldNotBeEmpty)
		So(payload.Projects, ShouldNotBeEmpty)
		So(payload.Journey, ShouldNotBeEmpty)
		So(payload.Community, ShouldNotBeEmpty)

		Convey("Project identifiers should be unique slugs", func() {
			ids := lo.Map(payload.Projects, func(p Project, _ int) string {
				return p.ID()
			})
			So(lo.Uniq(ids), ShouldHaveLength, len(ids))
			So(ids, ShouldContain, "silent-voice")
		})

		Convey("Community identifiers should be unique slugs", func() {
			ids := lo.Map(payload.Community, func(c CommunityRecord, _ int) string {
				return c.ID()
			})
			So(lo.Uniq(ids), ShouldHaveLength, len(ids))
		})
	})
}

func TestSlug(t *testing.T) {
	Convey("Slugs should be lowercase with collapsed separators", t, func() {
		So(slug("Aqua Watch"), ShouldEqual, "aqua-watch")
		So(slug("GDSC MM(DU) - GenAI"), ShouldEqual, "gdsc-mm-du-genai")
		So(slug("  spaced  out  "), ShouldEqual, "spaced-out")
	})
}
