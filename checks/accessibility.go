package checks

import (
	"fmt"
	"strings"

	"github.com/RobertCam/webscore/vo"
)

// vague link texts that do not tell a crawler where the link goes
var vagueLinkTexts = map[string]bool{
	"click here": true,
	"here":       true,
	"read more":  true,
	"more":       true,
	"learn more": true,
	"link":       true,
	"this":       true,
}

func imgAltText(ctx *Context) vo.CheckResult {
	if ctx.RenderedPage == nil {
		return renderUnavailable("img-alt-text", ctx)
	}
	images := ctx.RenderedPage.Images
	withAlt := 0
	for _, img := range images {
		if img.Alt != "" {
			withAlt++
		}
	}
	return result("img-alt-text", fractionStatus(withAlt, len(images)),
		fractionEvidence("rendered images with alt text", withAlt, len(images)))
}

func formLabels(ctx *Context) vo.CheckResult {
	if ctx.RenderedPage == nil {
		return renderUnavailable("form-labels", ctx)
	}
	inputs := ctx.RenderedPage.InputCount
	labels := ctx.RenderedPage.LabelCount
	if labels > inputs {
		labels = inputs
	}
	return result("form-labels", fractionStatus(labels, inputs),
		fractionEvidence("form inputs with labels", labels, inputs))
}

func contentDepth(ctx *Context) vo.CheckResult {
	words := wordCount(ctx.Page.BodyText)
	evidence := fmt.Sprintf("%d word(s) of main content", words)
	switch {
	case words > 100:
		return result("content-depth", vo.CheckStatusPass, evidence)
	case words > 50:
		return result("content-depth", vo.CheckStatusPartial, evidence)
	default:
		return result("content-depth", vo.CheckStatusFail, evidence)
	}
}

func navLinks(ctx *Context) vo.CheckResult {
	if ctx.RenderedPage == nil {
		return renderUnavailable("nav-links", ctx)
	}
	page := ctx.RenderedPage
	hasNav := page.NavCount > 0 || page.ListCount > 0

	descriptive := 0
	for _, link := range page.Links {
		if isDescriptiveLink(link.Text) {
			descriptive++
		}
	}
	descriptiveEnough := len(page.Links) == 0 ||
		percent(descriptive, len(page.Links)) > 50

	evidence := []string{
		fmt.Sprintf("%d nav element(s), %d structured list(s)", page.NavCount, page.ListCount),
		fractionEvidence("links with descriptive anchor text", descriptive, len(page.Links)),
	}
	switch {
	case hasNav && descriptiveEnough:
		return result("nav-links", vo.CheckStatusPass, evidence...)
	case hasNav || descriptiveEnough:
		return result("nav-links", vo.CheckStatusPartial, evidence...)
	default:
		return result("nav-links", vo.CheckStatusFail, evidence...)
	}
}

func isDescriptiveLink(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) < 4 {
		return false
	}
	return !vagueLinkTexts[text]
}

func videoCaptions(ctx *Context) vo.CheckResult {
	if ctx.RenderedPage == nil {
		return renderUnavailable("video-captions", ctx)
	}
	page := ctx.RenderedPage
	return result("video-captions", fractionStatus(page.CaptionedVideos, page.VideoCount),
		fractionEvidence("videos with captions or a nearby transcript",
			page.CaptionedVideos, page.VideoCount))
}
