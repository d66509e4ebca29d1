package checks

import (
	"fmt"
	"strings"

	"github.com/RobertCam/webscore/vo"
)

func singleH1Locality(ctx *Context) vo.CheckResult {
	h1s := ctx.Page.Level1Headings
	switch len(h1s) {
	case 0:
		return result("single-h1-locality", vo.CheckStatusFail, "no <h1> found")
	case 1:
		locality := ctx.Derived.Locality
		if locality != "" && containsFold(h1s[0], locality) {
			return result("single-h1-locality", vo.CheckStatusPass,
				fmt.Sprintf("single H1 %q names the locality %q", h1s[0], locality))
		}
		return result("single-h1-locality", vo.CheckStatusPartial,
			fmt.Sprintf("single H1 %q does not name a locality", h1s[0]))
	default:
		quoted := make([]string, len(h1s))
		for i, h := range h1s {
			quoted[i] = fmt.Sprintf("%q", h)
		}
		return result("single-h1-locality", vo.CheckStatusFail,
			fmt.Sprintf("%d <h1> elements found: %s", len(h1s), strings.Join(quoted, ", ")))
	}
}

func headingOrder(ctx *Context) vo.CheckResult {
	headings := ctx.Page.Headings
	if len(headings) == 0 {
		return result("heading-order", vo.CheckStatusFail, "no headings found")
	}
	jumps := []string{}
	for i := 1; i < len(headings); i++ {
		prev, next := headings[i-1], headings[i]
		if next.Level-prev.Level > 1 {
			jumps = append(jumps, fmt.Sprintf("h%d %q jumps to h%d %q",
				prev.Level, prev.Text, next.Level, next.Text))
		}
	}
	switch {
	case len(jumps) == 0:
		return result("heading-order", vo.CheckStatusPass,
			fmt.Sprintf("%d heading(s) progress without level jumps", len(headings)))
	case len(jumps) == 1:
		return result("heading-order", vo.CheckStatusPartial, jumps[0])
	default:
		return result("heading-order", vo.CheckStatusFail, jumps...)
	}
}

func listsTables(ctx *Context) vo.CheckResult {
	total := ctx.Page.ListCount + ctx.Page.TableCount
	evidence := fmt.Sprintf("%d list(s) and %d table(s) in main content",
		ctx.Page.ListCount, ctx.Page.TableCount)
	switch {
	case total >= 2:
		return result("lists-tables", vo.CheckStatusPass, evidence)
	case total == 1:
		return result("lists-tables", vo.CheckStatusPartial, evidence)
	default:
		return result("lists-tables", vo.CheckStatusFail, evidence)
	}
}

func anchoredHeadings(ctx *Context) vo.CheckResult {
	words := wordCount(ctx.Page.BodyText)
	required := 1
	if words > 800 {
		required = 3
	}
	anchored := 0
	for _, h := range ctx.Page.Headings {
		if h.AnchorID != "" {
			anchored++
		}
	}
	evidence := fmt.Sprintf("%d heading(s) with anchor ids, %d required for %d words",
		anchored, required, words)
	switch {
	case anchored >= required:
		return result("anchored-headings", vo.CheckStatusPass, evidence)
	case anchored >= 1:
		return result("anchored-headings", vo.CheckStatusPartial, evidence)
	default:
		return result("anchored-headings", vo.CheckStatusFail, evidence)
	}
}
