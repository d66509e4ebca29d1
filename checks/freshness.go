package checks

import (
	"fmt"
	"regexp"

	"github.com/RobertCam/webscore/vo"
)

// visibleDateRe finds "updated/modified" phrases followed by a date-ish
// token run, which the shared date helper then tries to parse.
var visibleDateRe = regexp.MustCompile(
	`(?i)(?:last\s+)?(?:updated|modified|revised)\s*(?:on|:)?\s+` +
		`((?:January|February|March|April|May|June|July|August|September|October|November|December|` +
		`Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec|\d)[\w,/\-. ]{2,30})`)

// visibleDate looks for an updated/modified date in the page text and
// scores it against the freshness window.
func visibleDate(ctx *Context) vo.CheckResult {
	m := visibleDateRe.FindStringSubmatch(ctx.Page.BodyText)
	if m == nil {
		return result("visible-date", vo.CheckStatusFail,
			"no visible updated/modified date in main content")
	}
	t, ok := parseLooseDate(m[1])
	if !ok {
		return result("visible-date", vo.CheckStatusPartial,
			"found date phrase but could not parse it: "+snippet(m[0]))
	}
	if isFresh(t, ctx.Now) {
		return result("visible-date", vo.CheckStatusPass,
			fmt.Sprintf("visible date %q is %d day(s) old", snippet(m[1]), daysOld(t, ctx.Now)))
	}
	return result("visible-date", vo.CheckStatusPartial,
		fmt.Sprintf("visible date %q is stale, %d day(s) old", snippet(m[1]), daysOld(t, ctx.Now)))
}

func sitemapLastMod(ctx *Context) vo.CheckResult {
	info := ctx.Sitemap()
	if !info.Found {
		return result("sitemap-lastmod", vo.CheckStatusFail, info.Detail)
	}
	if info.LastMod.IsZero() {
		return result("sitemap-lastmod", vo.CheckStatusPartial, info.Detail)
	}
	if isFresh(info.LastMod, ctx.Now) {
		return result("sitemap-lastmod", vo.CheckStatusPass,
			fmt.Sprintf("%s, %d day(s) old", info.Detail, daysOld(info.LastMod, ctx.Now)))
	}
	return result("sitemap-lastmod", vo.CheckStatusPartial,
		fmt.Sprintf("%s, stale at %d day(s) old", info.Detail, daysOld(info.LastMod, ctx.Now)))
}
