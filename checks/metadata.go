package checks

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/RobertCam/webscore/vo"
)

func titlePresent(ctx *Context) vo.CheckResult {
	if ctx.Page.Title == "" {
		return result("title-present", vo.CheckStatusFail, "no <title> tag found")
	}
	return result("title-present", vo.CheckStatusPass, "title: "+snippet(ctx.Page.Title))
}

func descriptionPresent(ctx *Context) vo.CheckResult {
	if ctx.Page.Description == "" {
		return result("description-present", vo.CheckStatusFail, "no meta description found")
	}
	return result("description-present", vo.CheckStatusPass,
		"description: "+snippet(ctx.Page.Description))
}

func titleBrandLocality(ctx *Context) vo.CheckResult {
	return brandLocalityIn("title-brand-locality", "title", ctx.Page.Title, ctx)
}

func descriptionBrandLocality(ctx *Context) vo.CheckResult {
	return brandLocalityIn("description-brand-locality", "description", ctx.Page.Description, ctx)
}

// brandLocalityIn implements the shared co-occurrence rule: both brand and
// locality present is a pass, exactly one is partial.
func brandLocalityIn(id, field, text string, ctx *Context) vo.CheckResult {
	brand := ctx.Derived.Brand
	locality := ctx.Derived.Locality
	if text == "" {
		return result(id, vo.CheckStatusFail, "no "+field+" to inspect")
	}

	hasBrand := containsFold(text, brand)
	hasLocality := containsFold(text, locality)
	evidence := []string{
		field + ": " + snippet(text),
		fmt.Sprintf("brand %q found: %v, locality %q found: %v", brand, hasBrand, locality, hasLocality),
	}
	switch {
	case hasBrand && hasLocality:
		return result(id, vo.CheckStatusPass, evidence...)
	case hasBrand || hasLocality:
		return result(id, vo.CheckStatusPartial, evidence...)
	default:
		return result(id, vo.CheckStatusFail, evidence...)
	}
}

func ogTags(ctx *Context) vo.CheckResult {
	tags := []struct {
		name  string
		value string
	}{
		{"og:title", ctx.Page.OGTitle},
		{"og:description", ctx.Page.OGDescription},
		{"og:url", ctx.Page.OGURL},
		{"og:image", ctx.Page.OGImage},
	}
	present := 0
	missing := []string{}
	for _, tag := range tags {
		if tag.value != "" {
			present++
		} else {
			missing = append(missing, tag.name)
		}
	}
	evidence := fmt.Sprintf("%d/4 Open Graph tags present", present)
	if len(missing) > 0 {
		evidence += ", missing " + strings.Join(missing, ", ")
	}
	switch {
	case present == 4:
		return result("og-tags", vo.CheckStatusPass, evidence)
	case present >= 2:
		return result("og-tags", vo.CheckStatusPartial, evidence)
	default:
		return result("og-tags", vo.CheckStatusFail, evidence)
	}
}

func canonicalHost(ctx *Context) vo.CheckResult {
	canonical := ctx.Page.CanonicalURL
	if canonical == "" {
		return result("canonical-host", vo.CheckStatusFail, "no canonical link found")
	}
	finalU, errFinal := url.Parse(ctx.Raw.FinalURL)
	if errFinal != nil {
		return result("canonical-host", vo.CheckStatusFail,
			"final URL does not parse: "+snippet(ctx.Raw.FinalURL))
	}
	ref, errRef := url.Parse(canonical)
	if errRef != nil {
		return result("canonical-host", vo.CheckStatusFail,
			"canonical does not parse: "+snippet(canonical))
	}
	resolved := finalU.ResolveReference(ref)
	if strings.EqualFold(resolved.Host, finalU.Host) {
		return result("canonical-host", vo.CheckStatusPass,
			"canonical host "+resolved.Host+" matches final URL host")
	}
	return result("canonical-host", vo.CheckStatusFail,
		fmt.Sprintf("canonical host %s does not match final URL host %s", resolved.Host, finalU.Host))
}
