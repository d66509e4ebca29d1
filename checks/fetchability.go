package checks

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/RobertCam/webscore/vo"
)

func httpStatus(ctx *Context) vo.CheckResult {
	code := ctx.Raw.StatusCode
	evidence := fmt.Sprintf("HTTP status %d for %s", code, ctx.Raw.FinalURL)
	switch {
	case code >= 200 && code <= 299:
		return result("http-status", vo.CheckStatusPass, evidence)
	case code >= 300 && code <= 399:
		return result("http-status", vo.CheckStatusPartial, evidence)
	default:
		return result("http-status", vo.CheckStatusFail, evidence)
	}
}

func noindex(ctx *Context) vo.CheckResult {
	if ctx.Page.Noindex {
		return result("noindex", vo.CheckStatusFail,
			"robots meta tag contains noindex, AI crawlers are told to skip this page")
	}
	return result("noindex", vo.CheckStatusPass, "no noindex directive found")
}

func robotsAllowed(ctx *Context) vo.CheckResult {
	policy := ctx.Robots()
	if !policy.Found {
		return result("robots-allowed", vo.CheckStatusPass,
			"defaulting to allow: "+policy.Detail)
	}
	if policy.Blocked {
		return result("robots-allowed", vo.CheckStatusFail, policy.Detail)
	}
	return result("robots-allowed", vo.CheckStatusPass, policy.Detail)
}

func gptBotAllowed(ctx *Context) vo.CheckResult {
	policy := ctx.Robots()
	if !policy.Found {
		return result("gptbot-allowed", vo.CheckStatusPass,
			"defaulting to allow: "+policy.Detail)
	}
	if policy.GPTBotBlocked {
		return result("gptbot-allowed", vo.CheckStatusFail,
			"robots.txt carries a User-agent: GPTBot stanza with a Disallow line")
	}
	return result("gptbot-allowed", vo.CheckStatusPass,
		"robots.txt does not single out GPTBot")
}

func canonicalAbsolute(ctx *Context) vo.CheckResult {
	canonical := ctx.Page.CanonicalURL
	if canonical == "" {
		return result("canonical-absolute", vo.CheckStatusFail, "no canonical link found")
	}
	u, errParse := url.Parse(canonical)
	if errParse != nil {
		return result("canonical-absolute", vo.CheckStatusFail,
			"canonical does not parse as a URL: "+snippet(canonical))
	}
	if u.Scheme == "" || u.Host == "" {
		return result("canonical-absolute", vo.CheckStatusPartial,
			"canonical is relative, should be absolute: "+snippet(canonical))
	}
	return result("canonical-absolute", vo.CheckStatusPass,
		"canonical is an absolute URL: "+snippet(canonical))
}

func renderParity(ctx *Context) vo.CheckResult {
	if ctx.RenderedPage == nil {
		return renderUnavailable("render-parity", ctx)
	}
	raw := ctx.Page
	rendered := *ctx.RenderedPage

	headingMatch := raw.PrimaryHeading != "" &&
		strings.EqualFold(raw.PrimaryHeading, rendered.PrimaryHeading)
	similarity := jaccard(raw.BodyText, rendered.BodyText)
	imagesDiverge := countsDiverge(len(raw.Images), len(rendered.Images))
	linksDiverge := countsDiverge(len(raw.Links), len(rendered.Links))

	evidence := []string{
		fmt.Sprintf("main text similarity %.2f", similarity),
		fmt.Sprintf("raw H1 %q vs rendered H1 %q", raw.PrimaryHeading, rendered.PrimaryHeading),
		fmt.Sprintf("images raw %d vs rendered %d, links raw %d vs rendered %d",
			len(raw.Images), len(rendered.Images), len(raw.Links), len(rendered.Links)),
	}

	switch {
	case headingMatch && similarity > 0.8 && !imagesDiverge && !linksDiverge:
		return result("render-parity", vo.CheckStatusPass, evidence...)
	case headingMatch || similarity > 0.6:
		return result("render-parity", vo.CheckStatusPartial, evidence...)
	default:
		return result("render-parity", vo.CheckStatusFail, evidence...)
	}
}

// jaccard is a bag-of-words similarity over lowercased tokens.
func jaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 1
	}
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]bool {
	set := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = true
	}
	return set
}

// countsDiverge flags a large raw-vs-rendered count gap. Small absolute
// differences are expected noise from lazily injected widgets.
func countsDiverge(a, b int) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return hi-lo > 10 && hi > 2*lo
}
